package hooks

// HookType represents the type of hooks.
type HookType string

// Supported hooks types.
const (
	PostDownload   HookType = "post-download"
	DownloadFailed HookType = "download-failed"
)

// ValidHookTypes returns every supported hook type.
func ValidHookTypes() []HookType {
	return []HookType{PostDownload, DownloadFailed}
}

// Hook represents a hooks script with its type and content.
type Hook struct {
	Type    HookType
	Content string
	Path    string // file the script was loaded from, empty for inline scripts
}

// HookContext contains information passed to hooks.
type HookContext struct {
	Executable  string
	Destination string
	Platform    string
	Arch        string
	Namespace   string
	Version     string
	Error       string // set for download-failed hooks
	Vars        map[string]interface{}
}
