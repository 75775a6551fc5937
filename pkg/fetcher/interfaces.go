//go:generate mockgen -destination=./mocks/fetcher.go . Extractor

package fetcher

import "context"

// Extractor unpacks a downloaded archive.
type Extractor interface {
	ExtractAll(ctx context.Context, archivePath, destDir string) error
}
