//go:generate mockgen -destination=./mocks/buildindex.go . Index

package buildindex

import (
	"context"
	"net/url"
)

// Index resolves a build namespace to a downloadable artifact.
type Index interface {
	// Resolve returns the artifact of the task indexed under namespace
	// whose name ends with fileEnding.
	Resolve(ctx context.Context, namespace, fileEnding string) (*Artifact, error)
}

// Artifact is a downloadable file published by an indexed task.
type Artifact struct {
	TaskID   string
	Name     string   // full artifact name, e.g. public/build/target.tar.bz2
	URL      *url.URL // where the artifact can be downloaded
	Filename string   // base name to store the artifact under
}
