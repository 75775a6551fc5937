package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/glorpus-work/foxfetch/internal/logger"
	"github.com/glorpus-work/foxfetch/pkg/auth"
	pkgerrors "github.com/glorpus-work/foxfetch/pkg/errors"
	"github.com/glorpus-work/foxfetch/pkg/fsutil"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "foxfetch/1.0"

// ManagerImpl is an HTTP Streamer. It makes one attempt per call: no
// retries, no resume, no checksum verification.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
	auth      auth.Authenticator
}

// NewManager creates a new download manager with the given timeout and
// user agent. A zero timeout means no timeout.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// SetAuthenticator makes every download request carry the credentials of a.
func (m *ManagerImpl) SetAuthenticator(a auth.Authenticator) {
	m.auth = a
}

// Stream downloads src into destPath. The body is written to a sibling
// ".part" file first and renamed once complete, so destPath never holds a
// truncated archive.
func (m *ManagerImpl) Stream(ctx context.Context, src *url.URL, destPath string, progress ProgressFunc) (int64, error) {
	if src == nil {
		return 0, fmt.Errorf("nil URL: %w", pkgerrors.ErrDownloadFailed)
	}

	resp, err := m.doRequest(ctx, src)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}
	logger.Debug("streaming download", logger.Fields{"url": src.String(), "size": total, "dest": destPath})

	tmpPath := destPath + ".part"
	written, err := writeBody(resp.Body, tmpPath, total, progress)
	if err != nil {
		_ = os.Remove(tmpPath)
		return written, err
	}
	if err := fsutil.Move(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return written, pkgerrors.Wrap(err, "could not finalize file")
	}
	return written, nil
}

func (m *ManagerImpl) doRequest(ctx context.Context, src *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	if err := auth.Apply(m.auth, req); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to apply authentication")
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "download failed")
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrDownloadFailed)
	}
	return resp, nil
}

func writeBody(body io.Reader, path string, total int64, progress ProgressFunc) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), fsutil.DirModeDefault); err != nil {
		return 0, pkgerrors.Wrap(err, "could not create download dir")
	}
	f, err := fsutil.CreateFilePerm(path, fsutil.FileModeDefault)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "could not create file")
	}

	var dst io.Writer = f
	if progress != nil {
		dst = io.MultiWriter(f, &progressWriter{total: total, fn: progress})
	}

	written, err := io.Copy(dst, body)
	if err != nil {
		_ = f.Close()
		return written, pkgerrors.Wrap(err, "could not write file")
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return written, pkgerrors.Wrap(err, "could not sync file")
	}
	if err := f.Close(); err != nil {
		return written, pkgerrors.Wrap(err, "could not close file")
	}
	return written, nil
}

// progressWriter reports every chunk it sees. MultiWriter hands it the same
// slices the file receives, one per read from the response body.
type progressWriter struct {
	total int64
	fn    ProgressFunc
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.fn(len(b), p.total)
	return len(b), nil
}
