package presentation

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"batchrename/internal/domain"
)

// ProgressObserver shows a single progress bar instead of per-file lines.
type ProgressObserver struct {
	Writer io.Writer
	bar    *progressbar.ProgressBar
}

func NewProgressObserver(w io.Writer) *ProgressObserver {
	return &ProgressObserver{Writer: w}
}

func (o *ProgressObserver) OnDiscovered(root string, total int) {
	o.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(o.Writer),
		progressbar.OptionSetDescription("Renaming"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
	)
}

func (o *ProgressObserver) OnNonVideo(string)                     {}
func (o *ProgressObserver) OnProbed(string, domain.ProbeResult)   {}
func (o *ProgressObserver) OnSkipped(domain.SkipRecord)           {}
func (o *ProgressObserver) OnRenamed(domain.RenameRecord, string) {}

func (o *ProgressObserver) OnProgress(done, total int) {
	if o.bar == nil {
		return
	}
	_ = o.bar.Set(done)
}

// Finish completes the bar and moves the cursor to a fresh line.
func (o *ProgressObserver) Finish() {
	if o.bar == nil {
		return
	}
	_ = o.bar.Finish()
	io.WriteString(o.Writer, "\n")
}
