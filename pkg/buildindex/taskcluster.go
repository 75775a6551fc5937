// Package buildindex talks to the TaskCluster index and queue services to
// find the latest artifact published under a build namespace.
package buildindex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/auth"
	"github.com/glorpus-work/foxfetch/pkg/errors"
)

// DefaultRootURL is the TaskCluster deployment that indexes Firefox builds.
const DefaultRootURL = "https://firefox-ci-tc.services.mozilla.com"

// TaskCluster is an Index backed by the TaskCluster REST API.
type TaskCluster struct {
	rootURL   *url.URL
	client    *http.Client
	userAgent string
	auth      auth.Authenticator
}

type indexedTask struct {
	Namespace string `json:"namespace"`
	TaskID    string `json:"taskId"`
	Rank      int64  `json:"rank"`
	Expires   string `json:"expires"`
}

type artifactList struct {
	Artifacts []struct {
		Name        string `json:"name"`
		StorageType string `json:"storageType"`
		ContentType string `json:"contentType"`
		Expires     string `json:"expires"`
	} `json:"artifacts"`
	ContinuationToken string `json:"continuationToken"`
}

// NewTaskCluster creates an index client for the deployment at rootURL.
// An empty rootURL selects DefaultRootURL.
func NewTaskCluster(rootURL string, timeout time.Duration, userAgent string) (*TaskCluster, error) {
	if rootURL == "" {
		rootURL = DefaultRootURL
	}
	parsed, err := url.Parse(rootURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Wrapf(errors.ErrInvalidIndexURL, "%q", rootURL)
	}
	if userAgent == "" {
		userAgent = "foxfetch/1.0"
	}
	return &TaskCluster{
		rootURL:   parsed,
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}, nil
}

// SetAuthenticator makes every index request carry the credentials of a.
func (tc *TaskCluster) SetAuthenticator(a auth.Authenticator) {
	tc.auth = a
}

// Resolve looks up the task indexed under namespace and picks the first of
// its artifacts whose name ends with fileEnding.
func (tc *TaskCluster) Resolve(ctx context.Context, namespace, fileEnding string) (*Artifact, error) {
	var task indexedTask
	status, err := tc.getJSON(ctx, tc.endpoint("api", "index", "v1", "task", namespace), &task)
	if status == http.StatusNotFound {
		return nil, errors.Wrapf(errors.ErrNamespaceNotIndexed, "namespace %s", namespace)
	}
	if err != nil {
		return nil, err
	}
	if task.TaskID == "" {
		return nil, errors.Wrapf(errors.ErrIndexUnavailable, "namespace %s has no task id", namespace)
	}
	logger.Debug("resolved namespace", logger.Fields{"namespace": namespace, "task": task.TaskID})

	name, err := tc.findArtifact(ctx, task.TaskID, fileEnding)
	if err != nil {
		return nil, err
	}

	// artifact names keep their slashes in the URL path
	artifactURL := tc.endpoint("api", "queue", "v1", "task", task.TaskID, "artifacts")
	artifactURL.Path = strings.TrimSuffix(artifactURL.Path, "/") + "/" + name

	return &Artifact{
		TaskID:   task.TaskID,
		Name:     name,
		URL:      artifactURL,
		Filename: path.Base(name),
	}, nil
}

func (tc *TaskCluster) findArtifact(ctx context.Context, taskID, fileEnding string) (string, error) {
	token := ""
	for {
		endpoint := tc.endpoint("api", "queue", "v1", "task", taskID, "artifacts")
		if token != "" {
			endpoint.RawQuery = url.Values{"continuationToken": {token}}.Encode()
		}

		var list artifactList
		if _, err := tc.getJSON(ctx, endpoint, &list); err != nil {
			return "", err
		}
		for _, a := range list.Artifacts {
			if strings.HasSuffix(a.Name, fileEnding) {
				return a.Name, nil
			}
		}
		if list.ContinuationToken == "" {
			return "", errors.Wrapf(errors.ErrArtifactNotFound, "task %s, ending %s", taskID, fileEnding)
		}
		token = list.ContinuationToken
	}
}

func (tc *TaskCluster) endpoint(segments ...string) *url.URL {
	u := *tc.rootURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Join(segments, "/")
	u.RawPath = ""
	return &u
}

// getJSON decodes the response body into out and returns the HTTP status.
func (tc *TaskCluster) getJSON(ctx context.Context, endpoint *url.URL, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", tc.userAgent)
	req.Header.Set("Accept", "application/json")
	if err := auth.Apply(tc.auth, req); err != nil {
		return 0, errors.Wrap(err, "failed to apply authentication")
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to query build index")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("%w: GET %s: unexpected status code: %d", errors.ErrIndexUnavailable, endpoint.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, errors.Wrap(err, "failed to decode build index response")
	}
	return resp.StatusCode, nil
}
