package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReportFileName is written into the input directory when logging is on.
const ReportFileName = "renamed_files_report.txt"

type RenameRecord struct {
	OriginalPath string
	NewFilename  string
}

type SkipRecord struct {
	Path   string
	Reason string
}

type RunSummary struct {
	Discovered int
	NonVideo   int
	Skipped    int
	Renamed    int
	DryRun     bool
	Records    []RenameRecord
	Skips      []SkipRecord
}

// RenderReport produces the full content of the rename report. It is
// rewritten from scratch on every rename, so it only ever lists the current
// run.
func RenderReport(script string, now time.Time, records []RenameRecord, skips []SkipRecord) string {
	var b strings.Builder
	b.WriteString("Renamed Files Report\n")
	b.WriteString(strings.Repeat("=", 20) + "\n\n")
	fmt.Fprintf(&b, "Script: %s\n", script)
	fmt.Fprintf(&b, "Date: %s\n\n", now.Format("2006-01-02 15:04:05"))

	names := make([]string, 0, len(records))
	for _, record := range records {
		names = append(names, record.NewFilename)
	}
	b.WriteString(strings.Join(names, "\n"))

	if len(skips) > 0 {
		b.WriteString("\n\nSkipped Files\n")
		b.WriteString(strings.Repeat("-", 13) + "\n")
		lines := make([]string, 0, len(skips))
		for _, skip := range skips {
			lines = append(lines, fmt.Sprintf("%s: %s", skip.Path, skip.Reason))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return b.String()
}

// SequenceScope decides which files share a sequence counter.
type SequenceScope string

const (
	// ScopeRun numbers every renamed file of the invocation in one sequence.
	ScopeRun SequenceScope = "run"
	// ScopeDirectory restarts the sequence in every containing directory.
	ScopeDirectory SequenceScope = "directory"
)

func ParseSequenceScope(value string) (SequenceScope, bool) {
	switch SequenceScope(value) {
	case ScopeRun, "":
		return ScopeRun, true
	case ScopeDirectory:
		return ScopeDirectory, true
	default:
		return "", false
	}
}
