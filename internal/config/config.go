package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"batchrename/internal/domain"
)

type Config struct {
	InputDir      string
	Project       string
	Recursive     bool
	SubNaming     bool
	Debug         bool
	Log           bool
	DryRun        bool
	ReportSkips   bool
	SequenceScope string
	TUI           bool
	Quiet         bool
	FFprobe       string
}

// Validate returns ErrMissingInput or ErrMissingProject for an unset value;
// the CLI prompts for the value on either and validates again.
var (
	ErrMissingInput   = errors.New("input directory is required")
	ErrMissingProject = errors.New("project name is required")
)

func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.InputDir, "input", "i", "", "Input directory to process")
	fs.StringVarP(&cfg.Project, "project", "p", "", "Project name embedded in every filename")
	fs.BoolVarP(&cfg.Recursive, "recursive", "r", false, "Walk sub directories")
	fs.BoolVarP(&cfg.SubNaming, "sub", "s", false, "Embed the sub folder path in the filename")
	fs.BoolVarP(&cfg.Debug, "debug", "d", false, "Print the extracted metadata per file")
	fs.BoolVarP(&cfg.Log, "log", "l", false, "Write "+domain.ReportFileName+" into the input directory")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Show the new names without renaming")
	fs.BoolVar(&cfg.ReportSkips, "report-skips", false, "Report video files skipped because probing failed")
	fs.StringVar(&cfg.SequenceScope, "sequence-scope", string(domain.ScopeRun), "Sequence numbering scope: run or directory")
	fs.BoolVar(&cfg.TUI, "tui", false, "Show an interactive progress view")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only show a progress bar")
	fs.StringVar(&cfg.FFprobe, "ffprobe", "", "Path to the ffprobe binary")
}

// ApplyEnv fills unset values from BATCHRENAME_* variables.
func (c *Config) ApplyEnv() {
	if c.InputDir == "" {
		c.InputDir = envOrEmpty("BATCHRENAME_INPUT_DIR")
	}
	if c.Project == "" {
		c.Project = envOrEmpty("BATCHRENAME_PROJECT")
	}
	if c.FFprobe == "" {
		c.FFprobe = envOrEmpty("BATCHRENAME_FFPROBE")
	}
	if !c.Debug {
		c.Debug = envTruthy("BATCHRENAME_DEBUG")
	}
}

// Validate reports the first problem with c. Missing input or project are
// returned as ErrMissingInput and ErrMissingProject.
func (c Config) Validate() error {
	if strings.TrimSpace(c.InputDir) == "" {
		return ErrMissingInput
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return fmt.Errorf("input directory %q: %w", c.InputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input %q is not a directory", c.InputDir)
	}
	if strings.TrimSpace(c.Project) == "" {
		return ErrMissingProject
	}
	if err := ValidateProject(c.Project); err != nil {
		return err
	}
	if _, ok := domain.ParseSequenceScope(c.SequenceScope); !ok {
		return fmt.Errorf("invalid sequence scope %q, use run or directory", c.SequenceScope)
	}
	if c.TUI && c.Quiet {
		return errors.New("--tui and --quiet cannot be combined")
	}
	return nil
}

func ValidateProject(project string) error {
	if strings.ContainsAny(project, `/\`) {
		return fmt.Errorf("project name %q must not contain path separators", project)
	}
	return nil
}

func (c Config) Scope() domain.SequenceScope {
	scope, _ := domain.ParseSequenceScope(c.SequenceScope)
	return scope
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
