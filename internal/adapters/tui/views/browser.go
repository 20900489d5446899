package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pinacoteca/internal/adapters/tui/styles"
	"pinacoteca/internal/application"
	"pinacoteca/internal/application/commands"
	"pinacoteca/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Copy    key.Binding
	Rebuild key.Binding
	Filter  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy URL"),
	),
	Rebuild: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rebuild disk index"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the picture tree browser view
type BrowserModel struct {
	ViewState

	resolver *application.Resolver
	root     *TreeEntry
	flat     []*TreeEntry
	cursor   int

	filter    textinput.Model
	filtering bool
	matches   []commands.SearchResult
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(resolver *application.Resolver) *BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "filter pictures..."
	filter.CharLimit = 64
	return &BrowserModel{resolver: resolver, filter: filter}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	root, err := commands.NewBuildTreeCommand(m.resolver).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return treeLoadedMsg{NewTreeEntry(root)}
}

type treeLoadedMsg struct {
	root *TreeEntry
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

type rebuiltMsg struct {
	idx *domain.Index
}

// ExternalChangeMsg signals that the pictures root changed on disk and the
// tree should be reloaded. Sent by the filesystem watcher.
type ExternalChangeMsg struct{}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.root = msg.root
		m.refreshFlat()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case rebuiltMsg:
		m.SetMessage(fmt.Sprintf("Indexed %d picture(s)", msg.idx.Count), false)
		return m, m.Reload()

	case ExternalChangeMsg:
		return m, m.Reload()

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flat)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if entry := m.selected(); entry != nil {
				if entry.IsDir() && entry.Expanded {
					entry.Expanded = false
					m.refreshFlat()
				} else if entry.Parent != nil {
					for i, e := range m.flat {
						if e == entry.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Enter):
			if entry := m.selected(); entry != nil && entry.IsDir() {
				if !entry.Expanded {
					entry.Expanded = true
				} else if key.Matches(msg, BrowserKeys.Enter) {
					entry.Expanded = false
				}
				m.refreshFlat()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if entry := m.selected(); entry != nil && !entry.IsDir() {
				return m, m.copyURL(entry.Record)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Rebuild):
			return m, m.rebuild

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			m.filter.SetValue("")
			m.matches = nil
			return m, m.filter.Focus()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.matches = nil
		return m, nil
	case "enter":
		// Copy the top match and leave filter mode.
		m.filtering = false
		m.filter.Blur()
		if len(m.matches) > 0 {
			rec := m.matches[0].FileRecord
			m.matches = nil
			return m, m.copyURL(&rec)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.matches = nil
	if query := m.filter.Value(); len(query) >= 2 {
		records := application.MergedRecords(m.resolver.Bundled(), m.resolver.Disk())
		m.matches = commands.FuzzySort(records, query)
	}
	return m, cmd
}

func (m *BrowserModel) copyURL(rec *domain.FileRecord) tea.Cmd {
	return func() tea.Msg {
		url := m.resolver.Resolve(rec.Reference)
		if url == "" {
			return errMsg{fmt.Errorf("no URL for %s", rec.Reference)}
		}
		if err := clipboard.WriteAll(url); err != nil {
			return errMsg{err}
		}
		return successMsg{fmt.Sprintf("Copied %s", url)}
	}
}

func (m *BrowserModel) rebuild() tea.Msg {
	idx, err := commands.NewRebuildCommand(m.resolver.Cache()).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return rebuiltMsg{idx}
}

func (m *BrowserModel) selected() *TreeEntry {
	if m.cursor >= 0 && m.cursor < len(m.flat) {
		return m.flat[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlat() {
	if m.root == nil {
		return
	}
	m.flat = m.root.Flatten()
	// Skip root entry in display
	if len(m.flat) > 0 {
		m.flat = m.flat[1:]
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Pinacoteca"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Picture Reference Browser"))
	b.WriteString("\n\n")

	if m.filtering || len(m.matches) > 0 {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		for i, match := range m.matches {
			if i >= 10 {
				break
			}
			line := fmt.Sprintf("%s  %s", match.Reference, match.URL)
			if i == 0 {
				line = styles.NodeSelected.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		for i, entry := range m.flat {
			b.WriteString(m.renderEntry(entry, i == m.cursor))
			b.WriteString("\n")
		}
		if len(m.flat) == 0 {
			b.WriteString(styles.MutedText.Render("No pictures indexed."))
			b.WriteString("\n")
		}
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderEntry(entry *TreeEntry, selected bool) string {
	// Root is hidden, so displayed depth starts at zero.
	indent := strings.Repeat("  ", entry.Depth()-1)

	var prefix string
	switch {
	case !entry.IsDir():
		prefix = styles.TreeLeaf
	case entry.Expanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := entry.Name
	var style lipgloss.Style
	if entry.IsDir() {
		text += "/"
		style = styles.NodeDir
	} else if entry.Record.Origin == domain.OriginDisk {
		style = styles.NodeDisk
	} else {
		style = styles.NodeBundled
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"c", "copy URL"},
		{"R", "rebuild"},
		{"/", "filter"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload rebuilds the tree from the current indexes
func (m *BrowserModel) Reload() tea.Cmd {
	m.root = nil
	m.flat = nil
	m.cursor = 0
	return m.loadTree
}

// Messages for view switching
type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
