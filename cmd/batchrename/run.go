package main

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"batchrename/internal/app"
	"batchrename/internal/config"
	appErrors "batchrename/internal/errors"
	"batchrename/internal/infra/ffprobe"
	"batchrename/internal/infra/fs"
	"batchrename/internal/logging"
	"batchrename/internal/presentation"
	"batchrename/internal/tui"
)

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg.ApplyEnv()
	if err := resolveConfig(&cfg, stdin, stdout); err != nil {
		return err
	}

	renamer := &app.Renamer{
		FS:     fs.OSFS{},
		Prober: ffprobe.Prober{Binary: cfg.FFprobe},
		Logger: logging.New(stderr, cfg.Debug),
	}
	opts := app.Options{
		InputDir:    cfg.InputDir,
		Project:     cfg.Project,
		Recursive:   cfg.Recursive,
		SubNaming:   cfg.SubNaming,
		Log:         cfg.Log,
		DryRun:      cfg.DryRun,
		ReportSkips: cfg.ReportSkips,
		Scope:       cfg.Scope(),
	}

	switch {
	case cfg.TUI:
		return runTUI(ctx, renamer, opts, cfg)
	case cfg.Quiet:
		progress := presentation.NewProgressObserver(stderr)
		renamer.Observer = progress
		summary, err := renamer.Run(ctx, opts)
		progress.Finish()
		if err != nil {
			return err
		}
		presentation.Printer{Writer: stdout}.PrintSummary(summary)
		return nil
	default:
		printer := presentation.Printer{Writer: stdout, Debug: cfg.Debug, Width: terminalWidth(stdout)}
		renamer.Observer = printer
		summary, err := renamer.Run(ctx, opts)
		if err != nil {
			return err
		}
		printer.PrintSummary(summary)
		return nil
	}
}

func runTUI(ctx context.Context, renamer *app.Renamer, opts app.Options, cfg config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(tui.NewModel(tui.Config{
		InputDir: cfg.InputDir,
		Project:  cfg.Project,
		DryRun:   cfg.DryRun,
		Debug:    cfg.Debug,
		Cancel:   cancel,
	}))
	renamer.Observer = tui.ProgramObserver{Send: program.Send, Debug: cfg.Debug}
	renamer.Logger = logging.Logger{}

	go func() {
		summary, err := renamer.Run(ctx, opts)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		program.Send(tui.DoneMsg{Summary: summary})
	}()

	final, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	model, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	if model.Aborted {
		return appErrors.Wrap(appErrors.Cancelled, "tui", cfg.InputDir, context.Canceled)
	}
	return model.Err
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return width
}
