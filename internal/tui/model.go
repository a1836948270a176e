package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"batchrename/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseRenaming
	PhaseDone
	PhaseError
)

type EntryKind int

const (
	EntryRenamed EntryKind = iota
	EntryNonVideo
	EntrySkipped
	EntryMetadata
)

// Entry is one line of the activity list.
type Entry struct {
	Kind   EntryKind
	Path   string
	Detail string
}

// Messages for the TUI
type (
	DiscoveredMsg struct {
		Total int
	}
	CurrentFileMsg struct {
		Path string
	}
	EntryMsg struct {
		Entry Entry
	}
	ProgressMsg struct {
		Done  int
		Total int
	}
	DoneMsg struct {
		Summary domain.RunSummary
	}
	ErrorMsg struct {
		Err error
	}
)

const maxEntries = 8

type Config struct {
	InputDir string
	Project  string
	DryRun   bool
	Debug    bool
	// Cancel stops the running pipeline when the user quits early.
	Cancel func()
}

type Model struct {
	config      Config
	Phase       Phase
	spinner     spinner.Model
	progress    progress.Model
	total       int
	done        int
	renamed     int
	nonVideo    int
	skipped     int
	currentFile string
	entries     []Entry
	Summary     domain.RunSummary
	Err         error
	Quitting    bool
	// Aborted is set when the user quits before the run finished.
	Aborted     bool
	width       int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.Phase == PhaseScanning || m.Phase == PhaseRenaming {
				if m.config.Cancel != nil {
					m.config.Cancel()
				}
				m.Aborted = true
			}
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case DiscoveredMsg:
		m.total = msg.Total
		m.Phase = PhaseRenaming
		return m, nil

	case CurrentFileMsg:
		m.currentFile = msg.Path
		return m, nil

	case EntryMsg:
		switch msg.Entry.Kind {
		case EntryRenamed:
			m.renamed++
		case EntryNonVideo:
			m.nonVideo++
		case EntrySkipped:
			m.skipped++
		}
		m.entries = append(m.entries, msg.Entry)
		if len(m.entries) > maxEntries {
			m.entries = m.entries[len(m.entries)-maxEntries:]
		}
		return m, nil

	case ProgressMsg:
		m.done = msg.Done
		m.total = msg.Total
		if m.total > 0 {
			return m, m.progress.SetPercent(float64(m.done) / float64(m.total))
		}
		return m, nil

	case DoneMsg:
		m.Phase = PhaseDone
		m.Summary = msg.Summary
		m.currentFile = ""
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseRenaming {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Scanning for video files...", m.spinner.View()))
	case PhaseRenaming:
		b.WriteString(m.renderProgress())
		b.WriteString("\n")
		b.WriteString(m.renderEntries())
	case PhaseDone:
		b.WriteString(m.renderEntries())
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(m.renderEntries())
		b.WriteString("\n")
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(iconFilm + " Batch Renamer")
	subtitle := subtitleStyle.Render("Video files named after their metadata")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Input:   %s", iconFolder, shortenPath(m.config.InputDir))),
		dimStyle.Render(fmt.Sprintf("%s Project: %s", iconFilm, m.config.Project)),
	)
}

func (m Model) renderProgress() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Renaming Files"))
	b.WriteString("\n\n")

	percent := 0.0
	if m.total > 0 {
		percent = float64(m.done) / float64(m.total)
	}
	b.WriteString(fmt.Sprintf("  %s Processing...\n\n", m.spinner.View()))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))
	b.WriteString(fmt.Sprintf("  %s %s\n",
		countStyle.Render(fmt.Sprintf("%d/%d files", m.done, m.total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))

	if m.currentFile != "" {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", iconArrow, fileNameStyle.Render(filepath.Base(m.currentFile))))
	}
	return b.String()
}

func (m Model) renderEntries() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Activity"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  Nothing processed yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, entry := range m.entries {
		b.WriteString("  ")
		b.WriteString(formatEntry(entry))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	heading := "Rename Complete"
	if m.config.DryRun {
		heading = "Dry Run Complete"
	}
	b.WriteString(sectionStyle.Render(heading))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Files renamed:"), successStyle.Render(fmt.Sprintf("%s %d", iconRenamed, m.Summary.Renamed))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Non-video files:"), dimStyle.Render(fmt.Sprintf("%s %d", iconOther, m.Summary.NonVideo))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Without metadata:"), warningStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Summary.Skipped))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Files scanned:"), statValueStyle.Render(fmt.Sprintf("%d", m.Summary.Discovered))))

	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were renamed"))
	}
	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning, PhaseRenaming:
		help = "Press q to stop"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func formatEntry(entry Entry) string {
	name := filepath.Base(entry.Path)
	switch entry.Kind {
	case EntryRenamed:
		return fmt.Sprintf("%s %s %s %s", successStyle.Render(iconRenamed), fileNameStyle.Render(name), iconArrow, newNameStyle.Render(entry.Detail))
	case EntrySkipped:
		return fmt.Sprintf("%s %s  %s", warningStyle.Render(iconSkipped), fileNameStyle.Render(name), pathStyle.Render(entry.Detail))
	case EntryMetadata:
		return fmt.Sprintf("%s %s  %s", dimStyle.Render(iconInfo), fileNameStyle.Render(name), pathStyle.Render(entry.Detail))
	default:
		return fmt.Sprintf("%s %s  %s", dimStyle.Render(iconOther), fileNameStyle.Render(name), pathStyle.Render("not a video"))
	}
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
