package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/ziadkadry99/cheatsheet/internal/content"
	"github.com/ziadkadry99/cheatsheet/internal/locale"
	"github.com/ziadkadry99/cheatsheet/internal/page"
	"github.com/ziadkadry99/cheatsheet/internal/theme"
)

type keyMap struct {
	Toggle key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle mode"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Lines taken by the header and the help line.
const chromeHeight = 4

// docStyle is the outer frame around the preview.
var docStyle = lipgloss.NewStyle().Padding(0, 1)

// Model is the root Bubble Tea model of the preview.
type Model struct {
	ctx      context.Context
	ctrl     *theme.Controller
	root     *Root
	data     content.Model
	strings  locale.Strings
	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// New creates a preview of m. ctrl must have been created with root as its Root.
func New(ctx context.Context, m content.Model, s locale.Strings, ctrl *theme.Controller, root *Root) Model {
	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		root:    root,
		data:    m,
		strings: s,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := max(m.width-docStyle.GetHorizontalFrameSize(), 0)
		contentHeight := max(m.height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(contentWidth, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.body())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Toggle):
			m.ctrl.Toggle(m.ctx)
			if m.ready {
				m.viewport.SetContent(m.body())
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return ""
	}

	pal := m.root.palette()
	p := m.page()

	title := lipgloss.NewStyle().Bold(true).Foreground(pal.Accent).Render(p.Header.Eyebrow)
	toggle := lipgloss.NewStyle().
		Foreground(pal.Text).
		Background(pal.HeaderBg).
		Padding(0, 1).
		Render(p.Header.Toggle.Icon + " " + p.Header.Toggle.Text)
	header := title + "  " + toggle
	if m.viewport.Width > 0 {
		header = ansi.Truncate(header, m.viewport.Width, "…")
	}

	help := lipgloss.NewStyle().Foreground(pal.Muted).Render(m.strings.PreviewHelp)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(help)

	s := docStyle.Foreground(pal.Text).Background(pal.Background)
	if m.width > 0 {
		s = s.Width(m.width)
	}
	return s.Render(b.String())
}

func (m Model) page() page.Page {
	return page.Build(m.data, m.ctrl.Presentation(m.strings.Wording), m.strings)
}

// body renders every section as a titled table.
func (m Model) body() string {
	pal := m.root.palette()
	p := m.page()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.Accent).MarginTop(1)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.Text).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(pal.Text).Padding(0, 1)
	mutedStyle := cellStyle.Foreground(pal.Muted)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(pal.Text).Render(p.Header.Title))
	b.WriteString("\n")

	for _, sec := range p.Sections {
		b.WriteString(titleStyle.Render(sec.Title))
		b.WriteString("\n")

		headers := make([]string, len(sec.Columns))
		for i, c := range sec.Columns {
			headers[i] = c.Label
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(pal.Border)).
			Headers(headers...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case col == 1:
					return mutedStyle
				default:
					return cellStyle
				}
			})
		for _, r := range sec.Rows {
			t.Row(r.Cells[:]...)
		}
		if m.viewport.Width > 0 {
			t.Width(m.viewport.Width)
		}

		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	return b.String()
}
