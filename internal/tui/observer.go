package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"batchrename/internal/domain"
)

// ProgramObserver forwards pipeline events to a running bubbletea program.
// With Debug set, every probed file also adds its metadata to the activity
// list.
type ProgramObserver struct {
	Send  func(tea.Msg)
	Debug bool
}

func (o ProgramObserver) OnDiscovered(root string, total int) {
	o.Send(DiscoveredMsg{Total: total})
}

func (o ProgramObserver) OnNonVideo(path string) {
	o.Send(EntryMsg{Entry: Entry{Kind: EntryNonVideo, Path: path}})
}

func (o ProgramObserver) OnProbed(path string, result domain.ProbeResult) {
	o.Send(CurrentFileMsg{Path: path})
	if o.Debug {
		o.Send(EntryMsg{Entry: Entry{Kind: EntryMetadata, Path: path, Detail: metadataDetail(result)}})
	}
}

func metadataDetail(result domain.ProbeResult) string {
	if !result.HasMetadata() {
		if result.Reason != nil {
			return "Failed to extract metadata: " + result.Reason.Error()
		}
		return "Failed to extract metadata."
	}
	fields := result.Metadata.Fields()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field[0]+": "+field[1])
	}
	return strings.Join(parts, " · ")
}

func (o ProgramObserver) OnSkipped(skip domain.SkipRecord) {
	o.Send(EntryMsg{Entry: Entry{Kind: EntrySkipped, Path: skip.Path, Detail: skip.Reason}})
}

func (o ProgramObserver) OnRenamed(record domain.RenameRecord, subPath string) {
	o.Send(EntryMsg{Entry: Entry{Kind: EntryRenamed, Path: record.OriginalPath, Detail: record.NewFilename}})
}

func (o ProgramObserver) OnProgress(done, total int) {
	o.Send(ProgressMsg{Done: done, Total: total})
}
