package cli

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressRenderer draws download progress. The bar is created on the
// first chunk, once the total size is known.
type progressRenderer struct {
	out         io.Writer
	description string
	bar         *progressbar.ProgressBar
}

func newProgressRenderer(out io.Writer, description string) *progressRenderer {
	return &progressRenderer{out: out, description: description}
}

// Update matches download.ProgressFunc.
func (p *progressRenderer) Update(chunk int, total int64) {
	if p.bar == nil {
		size := total
		if size <= 0 {
			size = -1 // unknown size renders a spinner
		}
		p.bar = progressbar.NewOptions64(size,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetWidth(ProgressBarWidth),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetDescription(p.description),
			progressbar.OptionThrottle(ProgressThrottle),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(p.out)
			}),
		)
	}
	_ = p.bar.Add(chunk)
}

// Finish completes the bar if one was drawn.
func (p *progressRenderer) Finish() {
	if p.bar != nil && !p.bar.IsFinished() {
		_ = p.bar.Finish()
	}
}
