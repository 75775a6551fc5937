// Package testutil provides a fake TaskCluster deployment and build
// fixtures for tests.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/archive"
)

// TaskClusterServer serves the subset of the index and queue APIs used
// when resolving and downloading nightly builds.
type TaskClusterServer struct {
	*httptest.Server

	// PageSize splits artifact listings into pages when positive.
	PageSize int

	mu        sync.Mutex
	tasks     map[string]string
	artifacts map[string][]artifactFile
	requests  atomic.Int64
}

type artifactFile struct {
	name    string
	content []byte
}

// NewTaskClusterServer starts a server that is closed with the test.
func NewTaskClusterServer(t *testing.T) *TaskClusterServer {
	t.Helper()
	s := &TaskClusterServer{
		tasks:     make(map[string]string),
		artifacts: make(map[string][]artifactFile),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/index/v1/task/{namespace}", s.handleIndex)
	mux.HandleFunc("GET /api/queue/v1/task/{task}/artifacts", s.handleList)
	mux.HandleFunc("GET /api/queue/v1/task/{task}/artifacts/{name...}", s.handleArtifact)

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		logger.Debugf("fake taskcluster: %s %s", r.Method, r.URL.Path)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// AddArtifact indexes taskID under namespace and publishes an artifact.
func (s *TaskClusterServer) AddArtifact(namespace, taskID, name string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[namespace] = taskID
	s.artifacts[taskID] = append(s.artifacts[taskID], artifactFile{name: name, content: content})
}

// Requests returns how many requests the server has received.
func (s *TaskClusterServer) Requests() int64 {
	return s.requests.Load()
}

func (s *TaskClusterServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	taskID, ok := s.tasks[r.PathValue("namespace")]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"code":"ResourceNotFound"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]interface{}{
		"namespace": r.PathValue("namespace"),
		"taskId":    taskID,
		"rank":      1,
		"expires":   "2099-01-01T00:00:00.000Z",
	})
}

func (s *TaskClusterServer) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	files := s.artifacts[r.PathValue("task")]
	s.mu.Unlock()

	start := 0
	if token := r.URL.Query().Get("continuationToken"); token != "" {
		start, _ = strconv.Atoi(token)
	}
	end := len(files)
	if s.PageSize > 0 && start+s.PageSize < end {
		end = start + s.PageSize
	}

	list := make([]map[string]string, 0, end-start)
	for _, f := range files[start:end] {
		list = append(list, map[string]string{
			"name":        f.name,
			"storageType": "s3",
			"contentType": "application/octet-stream",
		})
	}
	body := map[string]interface{}{"artifacts": list}
	if end < len(files) {
		body["continuationToken"] = strconv.Itoa(end)
	}
	writeJSON(w, body)
}

func (s *TaskClusterServer) handleArtifact(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	files := s.artifacts[r.PathValue("task")]
	s.mu.Unlock()

	for _, f := range files {
		if f.name == r.PathValue("name") {
			w.Header().Set("Content-Length", strconv.Itoa(len(f.content)))
			_, _ = w.Write(f.content)
			return
		}
	}
	http.NotFound(w, r)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// BuildArchive packs files (relative path to content) into an archive whose
// format follows the extension of name, and returns its bytes.
func BuildArchive(t *testing.T, name string, files map[string]string) []byte {
	t.Helper()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	for path, content := range files {
		full := filepath.Join(src, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o755); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}

	out := filepath.Join(dir, name)
	if err := archive.NewManager().Create(context.Background(), src, out); err != nil {
		t.Fatalf("Failed to create archive %s: %v", name, err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read archive %s: %v", name, err)
	}
	return data
}

// FirefoxTree returns the files of a minimal extracted build for an
// executable name ("firefox" or "firefox.exe").
func FirefoxTree(executable, version string) map[string]string {
	return map[string]string{
		"firefox/" + executable: "#!/bin/sh\nexit 0\n",
		"firefox/application.ini": "[App]\nVendor=Mozilla\nName=Firefox\nVersion=" + version +
			"\nBuildID=20240601093000\nSourceRepository=https://hg.mozilla.org/mozilla-central\n",
	}
}
