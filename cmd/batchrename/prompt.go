package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"batchrename/internal/config"
	appErrors "batchrename/internal/errors"
	"batchrename/internal/tui"
)

// resolveConfig validates cfg and asks for the input directory or project
// name each time validation reports one of them missing. Any other
// validation error is returned classified for the user.
func resolveConfig(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	var p *prompter
	for {
		err := cfg.Validate()
		var (
			label, placeholder string
			validate           func(string) error
			target             *string
		)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, config.ErrMissingInput):
			label, placeholder, validate, target = "Enter the input directory", ".", validateDir, &cfg.InputDir
		case errors.Is(err, config.ErrMissingProject):
			label, placeholder, validate, target = "Please pick a name for this project", "OTW23", config.ValidateProject, &cfg.Project
		case errors.Is(err, os.ErrNotExist):
			return appErrors.Wrap(appErrors.NotFound, "stat", cfg.InputDir, err)
		default:
			return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
		}

		if p == nil {
			p = &prompter{interactive: isTerminal(stdin), reader: bufio.NewReader(stdin), out: stdout}
		}
		value, err := p.ask(label, placeholder, validate)
		if err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "prompt", "", err)
		}
		*target = value
	}
}

// prompter uses the bubbletea prompt on a terminal and plain line reads
// otherwise. One reader serves every question so buffered input is not lost.
type prompter struct {
	interactive bool
	reader      *bufio.Reader
	out         io.Writer
}

func (p prompter) ask(label, placeholder string, validate func(string) error) (string, error) {
	if p.interactive {
		return tui.Prompt(label, placeholder, validate)
	}
	fmt.Fprintf(p.out, "%s: ", label)
	answer, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && answer != "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("%s: no value given", strings.ToLower(label))
	}
	if err := validate(answer); err != nil {
		return "", err
	}
	return answer, nil
}

func validateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
