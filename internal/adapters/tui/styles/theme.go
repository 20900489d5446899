package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Origin colors
	OriginBundled = lipgloss.Color("#60A5FA") // Blue
	OriginDisk    = lipgloss.Color("#10B981") // Green

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree node styles
	NodeDir = lipgloss.NewStyle().
		Bold(true)

	NodeBundled = lipgloss.NewStyle().
			Foreground(OriginBundled)

	NodeDisk = lipgloss.NewStyle().
			Foreground(OriginDisk)

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	TreeBranch = lipgloss.NewStyle().
			Foreground(Muted)

	// Messages
	Success = lipgloss.NewStyle().
		Foreground(Secondary)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Labels
	InputLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	// Help line
	HelpKey = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString("  ·  ")
)

// Tree indicators
const (
	TreeExpanded  = "▾ "
	TreeCollapsed = "▸ "
	TreeLeaf      = "  "
)
