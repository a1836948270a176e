package presentation

import (
	"fmt"
	"io"
	"strings"

	"batchrename/internal/domain"
)

const defaultWidth = 80

// Printer reports pipeline events as coloured lines.
type Printer struct {
	Writer io.Writer
	Debug  bool
	// Width of the separator drawn after every rename.
	Width int
}

func (p Printer) OnDiscovered(root string, total int) {
	fmt.Fprintf(p.Writer, "The input directory is: %s\n", inputStyle.Render(root))
	if p.Debug {
		fmt.Fprintf(p.Writer, "%s%d\n", noticeStyle.Render("Files found: "), total)
	}
}

func (p Printer) OnNonVideo(path string) {
	fmt.Fprintf(p.Writer, "%s%s\n", noticeStyle.Render("Non-video file: "), path)
}

func (p Printer) OnProbed(path string, result domain.ProbeResult) {
	fmt.Fprintf(p.Writer, "%s%s\n", renameLabelStyle.Render("File to rename: "), path)
	if !p.Debug {
		return
	}
	fmt.Fprintln(p.Writer, headingStyle.Render("Debug mode enabled. Printing metadata:"))
	if !result.HasMetadata() {
		fmt.Fprintln(p.Writer, "Failed to extract metadata.")
		if result.Reason != nil {
			fmt.Fprintf(p.Writer, "%s%v\n", noticeStyle.Render("Reason: "), result.Reason)
		}
		return
	}
	for _, field := range result.Metadata.Fields() {
		fmt.Fprintf(p.Writer, "%s%s\n", noticeStyle.Render(field[0]+": "), field[1])
	}
}

func (p Printer) OnSkipped(skip domain.SkipRecord) {
	fmt.Fprintf(p.Writer, "%s%s (%s)\n", noticeStyle.Render("Skipped: "), skip.Path, skip.Reason)
}

func (p Printer) OnRenamed(record domain.RenameRecord, subPath string) {
	if p.Debug && subPath != "" {
		fmt.Fprintf(p.Writer, "%s%s\n", noticeStyle.Render("Sub path: "), subPath)
	}
	fmt.Fprintf(p.Writer, "%s%s\n", newNameStyle.Render("New file name: "), record.NewFilename)
	fmt.Fprintln(p.Writer, separatorStyle.Render(strings.Repeat("-", p.width())))
}

func (p Printer) OnProgress(done, total int) {}

// PrintSummary writes the closing line of a run.
func (p Printer) PrintSummary(summary domain.RunSummary) {
	if summary.DryRun {
		fmt.Fprintln(p.Writer, headingStyle.Render("Dry run - no files were renamed"))
		fmt.Fprintln(p.Writer, summaryStyle.Render(fmt.Sprintf("Number of files that would be renamed: %d", summary.Renamed)))
		return
	}
	fmt.Fprintln(p.Writer, summaryStyle.Render(fmt.Sprintf("Number of files renamed: %d", summary.Renamed)))
	if summary.Skipped > 0 && p.Debug {
		fmt.Fprintf(p.Writer, "Video files without metadata: %d\n", summary.Skipped)
	}
}

func (p Printer) width() int {
	if p.Width <= 0 {
		return defaultWidth
	}
	return p.Width
}
