package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"batchrename/internal/domain"
	appErrors "batchrename/internal/errors"
	"batchrename/internal/logging"
)

const DefaultScriptName = "batchrename"

type Options struct {
	InputDir    string
	Project     string
	Recursive   bool
	SubNaming   bool
	Log         bool
	DryRun      bool
	ReportSkips bool
	Scope       domain.SequenceScope
}

// Renamer walks a directory, probes every video file and renames it after
// its metadata.
type Renamer struct {
	FS       FileSystem
	Prober   Prober
	Logger   logging.Logger
	Observer Observer
	Now      func() time.Time
	Script   string
}

// Run processes opts.InputDir once. Per-file probe problems only skip the
// file; walk, rename and report errors abort the run and leave files renamed
// so far as they are.
func (r *Renamer) Run(ctx context.Context, opts Options) (domain.RunSummary, error) {
	if r.FS == nil || r.Prober == nil {
		return domain.RunSummary{}, errors.New("renamer requires FS and Prober")
	}
	observer := r.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	info, err := r.FS.Stat(opts.InputDir)
	if err != nil {
		return domain.RunSummary{}, appErrors.Wrap(appErrors.NotFound, "stat", opts.InputDir, err)
	}
	if !info.IsDir() {
		return domain.RunSummary{}, appErrors.Wrap(appErrors.NotFound, "stat", opts.InputDir, errors.New("not a directory"))
	}

	stop := r.Logger.Measure("Renaming")
	defer stop()

	paths, err := r.discover(opts.InputDir, opts.Recursive)
	if err != nil {
		return domain.RunSummary{}, appErrors.Wrap(appErrors.IOFailure, "walk", opts.InputDir, err)
	}
	observer.OnDiscovered(opts.InputDir, len(paths))
	r.Logger.Verbosef("Found %d files in %s (recursive=%t)", len(paths), opts.InputDir, opts.Recursive)

	session := NewSession(opts.Scope)
	summary := domain.RunSummary{Discovered: len(paths), DryRun: opts.DryRun}
	finish := func(err error) (domain.RunSummary, error) {
		summary.Records = session.Records()
		summary.Skips = session.Skips()
		return summary, err
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return finish(appErrors.Wrap(appErrors.Cancelled, "run", opts.InputDir, err))
		}

		changed, err := r.processFile(ctx, opts, session, &summary, observer, path)
		if err != nil {
			return finish(err)
		}
		if changed && opts.Log && !opts.DryRun {
			if err := r.writeReport(opts.InputDir, session); err != nil {
				return finish(err)
			}
		}
		observer.OnProgress(i+1, len(paths))
	}

	r.Logger.Verbosef("Renamed %d of %d files (%d non-video, %d skipped)", summary.Renamed, summary.Discovered, summary.NonVideo, summary.Skipped)
	return finish(nil)
}

// processFile reports whether the session records changed.
func (r *Renamer) processFile(ctx context.Context, opts Options, session *Session, summary *domain.RunSummary, observer Observer, path string) (bool, error) {
	ext := filepath.Ext(path)
	if !domain.IsVideoExtension(ext) {
		summary.NonVideo++
		observer.OnNonVideo(path)
		return false, nil
	}

	result := r.Prober.Probe(ctx, path)
	observer.OnProbed(path, result)
	if !result.HasMetadata() {
		if err := ctx.Err(); err != nil {
			return false, appErrors.Wrap(appErrors.Cancelled, "run", opts.InputDir, err)
		}
		summary.Skipped++
		r.Logger.Verbosef("No metadata for %s: %v", path, result.Reason)
		if !opts.ReportSkips {
			return false, nil
		}
		skip := domain.SkipRecord{Path: path, Reason: skipReason(result)}
		session.Skip(skip)
		observer.OnSkipped(skip)
		return true, nil
	}

	meta := result.Metadata
	dir := filepath.Dir(path)
	subPath := ""
	if opts.SubNaming {
		subPath = domain.SubPath(opts.InputDir, path)
	}

	name := domain.ComposeFilename(domain.NameParts{
		Date:      domain.DatePart(meta.CreationTime),
		Project:   opts.Project,
		SubPath:   subPath,
		Shot:      domain.ClassifyShot(meta.FocalLength),
		TimeOfDay: domain.ClassifyTimeOfDay(meta.CreationTime),
		Sequence:  session.Next(dir),
		Ext:       ext,
	})

	if !opts.DryRun {
		if err := r.FS.Rename(path, filepath.Join(dir, name)); err != nil {
			return false, appErrors.Wrap(appErrors.IOFailure, "rename", path, err)
		}
	}
	r.Logger.Verbosef("Renamed %s -> %s", path, name)

	record := domain.RenameRecord{OriginalPath: path, NewFilename: name}
	session.Record(record)
	summary.Renamed++
	observer.OnRenamed(record, subPath)
	return true, nil
}

// discover collects regular files in walk order before anything is renamed,
// so renamed files are never visited twice. Symlinks count when their target
// is a regular file; the link itself is what gets renamed.
func (r *Renamer) discover(root string, recursive bool) ([]string, error) {
	log := r.Logger.With("scan")
	stop := log.Measure("Scanning input directory")
	defer stop()

	root = filepath.Clean(root)
	var paths []string
	err := r.FS.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !recursive && filepath.Clean(path) != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := r.FS.Stat(path)
			if err != nil {
				log.Warnf("skipping broken link %s: %v", path, err)
				return nil
			}
			if !info.Mode().IsRegular() {
				log.Verbosef("skipping link %s: target is not a regular file", path)
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}

func (r *Renamer) writeReport(inputDir string, session *Session) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	script := r.Script
	if script == "" {
		script = DefaultScriptName
	}

	reportPath := filepath.Join(inputDir, domain.ReportFileName)
	content := domain.RenderReport(script, now(), session.Records(), session.Skips())
	if err := r.FS.WriteFile(reportPath, []byte(content), 0o644); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "write report", reportPath, err)
	}
	return nil
}

func skipReason(result domain.ProbeResult) string {
	if result.Reason == nil {
		return fmt.Sprintf("probe %s", result.Status)
	}
	return fmt.Sprintf("probe %s: %v", result.Status, result.Reason)
}
