package app

import (
	"context"
	"io/fs"

	"batchrename/internal/domain"
)

type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (fs.FileInfo, error)
	Rename(oldPath, newPath string) error
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// Prober extracts metadata for one file. Tool failures are reported through
// the result, never as a panic or error.
type Prober interface {
	Probe(ctx context.Context, path string) domain.ProbeResult
}

// Observer receives pipeline events in order from the goroutine running the
// pipeline.
type Observer interface {
	OnDiscovered(root string, total int)
	OnNonVideo(path string)
	OnProbed(path string, result domain.ProbeResult)
	OnSkipped(skip domain.SkipRecord)
	OnRenamed(record domain.RenameRecord, subPath string)
	OnProgress(done, total int)
}

type NopObserver struct{}

func (NopObserver) OnDiscovered(string, int)              {}
func (NopObserver) OnNonVideo(string)                     {}
func (NopObserver) OnProbed(string, domain.ProbeResult)   {}
func (NopObserver) OnSkipped(domain.SkipRecord)           {}
func (NopObserver) OnRenamed(domain.RenameRecord, string) {}
func (NopObserver) OnProgress(int, int)                   {}
