//go:generate mockgen -destination=./mocks/download.go . Streamer

package download

import (
	"context"
	"net/url"
)

// ProgressFunc receives the size of every chunk written to disk together
// with the total size announced by the server (0 when unknown).
type ProgressFunc func(chunk int, total int64)

// Streamer downloads a single remote file to disk.
type Streamer interface {
	// Stream writes the body served at src to destPath and returns the
	// number of bytes written. progress may be nil.
	Stream(ctx context.Context, src *url.URL, destPath string, progress ProgressFunc) (int64, error)
}
