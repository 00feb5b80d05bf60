package cli

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// progress drives a terminal progress bar from analyzer callbacks. The bar
// is created lazily on the first update, once the file total is known.
type progress struct {
	quiet bool
	w     io.Writer
	bar   *progressbar.ProgressBar
}

func newProgress(quiet bool, w io.Writer) *progress {
	return &progress{quiet: quiet, w: w}
}

func (p *progress) update(done, total int, path string) {
	if p.quiet {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionShowCount(),
		)
	}
	_ = p.bar.Set(done)
}

func (p *progress) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	fmt.Fprintln(p.w)
}
