package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NameParts holds everything that goes into a generated filename.
type NameParts struct {
	Date      string
	Project   string
	SubPath   string
	Shot      ShotClass
	TimeOfDay TimeOfDay
	Sequence  int
	Ext       string
}

// ComposeFilename renders {date}_{project}_{subPath}{shot}_{tod}_{seq}{ext}.
// SubPath is either empty or already ends in an underscore.
func ComposeFilename(p NameParts) string {
	return fmt.Sprintf("%s_%s_%s%s_%s_%03d%s", p.Date, p.Project, p.SubPath, p.Shot, p.TimeOfDay, p.Sequence, p.Ext)
}

// DatePart returns the calendar date prefix of a raw creation timestamp.
func DatePart(creationTime string) string {
	if strings.TrimSpace(creationTime) == "" {
		return NotAvailable
	}
	if len(creationTime) <= 10 {
		return creationTime
	}
	return creationTime[:10]
}

// SubPath joins the directories between root and path with underscores and
// appends a trailing underscore. Files directly in root yield "".
func SubPath(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil || rel == "." {
		return ""
	}
	return strings.Join(strings.Split(rel, string(filepath.Separator)), "_") + "_"
}
