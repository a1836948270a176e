package presentation

import "github.com/charmbracelet/lipgloss"

var (
	renameLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E85D75"))
	newNameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#85DCB0"))
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F6AE2D"))
	headingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F6AE2D")).Bold(true)
	separatorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#85DCB0")).Bold(true)
	inputStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#85DCB0"))
	summaryStyle     = lipgloss.NewStyle().Bold(true)
)
