package fetcher

import (
	"time"

	"github.com/glorpus-work/foxfetch/pkg/auth"
	"github.com/glorpus-work/foxfetch/pkg/buildindex"
	"github.com/glorpus-work/foxfetch/pkg/diskimage"
	"github.com/glorpus-work/foxfetch/pkg/download"
	"github.com/glorpus-work/foxfetch/pkg/hooks"
	"github.com/glorpus-work/foxfetch/pkg/platform"
)

// State is the step a Fetcher is currently in.
type State int

// Fetcher states, in the order a download moves through them.
const (
	StateNotStarted State = iota
	StateDownloading
	StateExtracting
	StateMounting
	StateCopying
	StateUnmounting
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateDownloading:
		return "downloading"
	case StateExtracting:
		return "extracting"
	case StateMounting:
		return "mounting"
	case StateCopying:
		return "copying"
	case StateUnmounting:
		return "unmounting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // one of the State names
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options configure a Fetcher. Zero values select the host's platform and
// architecture and the production collaborators.
type Options struct {
	// Platform is a target name such as "linux" or "windows". Empty means the host OS.
	Platform string
	// Arch is "64-bit", "other" or a machine name such as "x86_64". Empty means the host arch.
	Arch string
	// Host overrides the detected host.
	Host platform.Host

	// IndexURL, HTTPTimeout and UserAgent configure the default index and downloader.
	IndexURL    string
	HTTPTimeout time.Duration
	UserAgent   string
	// Auth is applied to requests made by the default index and downloader.
	Auth auth.Authenticator

	Index      buildindex.Index
	Downloader download.Streamer
	Extractor  Extractor
	DiskImage  diskimage.Tool
	Runner     hooks.Runner

	Hooks Hooks
}
