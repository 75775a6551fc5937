package cli

import "time"

// Default values for CLI output.
const (
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
	// ProgressBarWidth is the width of the download progress bar.
	ProgressBarWidth = 30
	// ProgressThrottle limits how often the progress bar redraws.
	ProgressThrottle = 80 * time.Millisecond
)
