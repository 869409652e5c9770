package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/chronogrog/internal/duration"
	"github.com/felixgeelhaar/chronogrog/internal/pla"
	"github.com/felixgeelhaar/chronogrog/internal/plan"
)

type viewMode int

const (
	modeList viewMode = iota
	modeDetail
)

type reviewKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

var reviewKeys = reviewKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "right", "l"),
		key.WithHelp("enter", "phases"),
	),
	Back: key.NewBinding(
		key.WithKeys("left", "h", "esc"),
		key.WithHelp("h/esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Bold(true).
				PaddingLeft(2)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	detailKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginLeft(2).
			MarginTop(1)
)

// reviewModel browses a built plan: recipes first, then one recipe's phases
type reviewModel struct {
	plan     *plan.Plan
	byPhase  map[int][]string
	cursor   int
	selected int
	mode     viewMode
	keys     reviewKeyMap
	width    int
	height   int
	quitting bool
}

func newReviewModel(p *plan.Plan, report *plan.Report) reviewModel {
	return reviewModel{
		plan:    p,
		byPhase: indexReport(report),
		mode:    modeList,
		keys:    reviewKeys,
	}
}

// indexReport groups allocation outcomes by phase id as display lines
func indexReport(report *plan.Report) map[int][]string {
	out := make(map[int][]string)
	if report == nil {
		return out
	}
	for _, a := range report.Assignments {
		out[a.PhaseID] = append(out[a.PhaseID],
			fmt.Sprintf("%s → %s (#%d)", a.ResourceType, a.Resource.Name, a.Resource.ID))
	}
	for _, c := range report.Conflicts {
		line := fmt.Sprintf("%s → unavailable", c.ResourceType)
		if c.NextAvailable != nil {
			line += ", next free " + pla.FormatStart(*c.NextAvailable)
		}
		out[c.PhaseID] = append(out[c.PhaseID], conflictStyle.Render(line))
	}
	return out
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.mode == modeList && m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.mode == modeList && m.cursor < len(m.plan.Recipes)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Open):
			if m.mode == modeList && len(m.plan.Recipes) > 0 {
				m.selected = m.cursor
				m.mode = modeDetail
			}

		case key.Matches(msg, m.keys.Back):
			if m.mode == modeDetail {
				m.mode = modeList
			}
		}
	}

	return m, nil
}

func (m reviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Schedule Review"))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Recipes: %d | Phases: %d",
		len(m.plan.Recipes), m.plan.PhaseCount())))
	b.WriteString("\n\n")

	if m.mode == modeList {
		m.viewList(&b)
		b.WriteString(helpStyle.Render(helpLine(m.keys.Up, m.keys.Down, m.keys.Open, m.keys.Quit)))
	} else {
		m.viewDetail(&b)
		b.WriteString(helpStyle.Render(helpLine(m.keys.Back, m.keys.Quit)))
	}

	return b.String()
}

func (m reviewModel) viewList(b *strings.Builder) {
	for i, r := range m.plan.Recipes {
		style := itemStyle
		cursor := "  "
		if i == m.cursor {
			style = selectedItemStyle
			cursor = "→ "
		}
		line := fmt.Sprintf("%s[%d] %s | %s → %s | %d phases",
			cursor,
			r.ID,
			r.Name,
			pla.FormatStart(r.StartDate),
			pla.FormatStart(r.EndDate()),
			len(r.Phases),
		)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m reviewModel) viewDetail(b *strings.Builder) {
	r := m.plan.Recipes[m.selected]
	b.WriteString(headerStyle.Render(fmt.Sprintf("Recipe %d of %d: %s", m.selected+1, len(m.plan.Recipes), r.Name)))
	b.WriteString("\n\n")

	for _, p := range r.Phases {
		b.WriteString(itemStyle.Render(fmt.Sprintf("[%d] %s", p.ID, p.Description)))
		b.WriteString("\n")

		details := []struct {
			key   string
			value string
		}{
			{"Template", p.Template},
			{"Start", pla.FormatStart(p.StartDate)},
			{"Duration", fmt.Sprintf("%dh", duration.Hours(p.Duration))},
			{"Depends On", joinIDs(p.Dependencies)},
		}
		for _, d := range details {
			b.WriteString("      ")
			b.WriteString(detailKeyStyle.Render(fmt.Sprintf("%-11s:", d.key)))
			b.WriteString(" ")
			b.WriteString(detailValueStyle.Render(d.value))
			b.WriteString("\n")
		}

		for _, line := range m.byPhase[p.ID] {
			b.WriteString("      • ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " | ")
}

// RunScheduleReview launches an interactive browser over a built plan.
// report may be nil; when set, each phase lists the resources it was given
// or could not get. Empty plans return immediately.
func RunScheduleReview(p *plan.Plan, report *plan.Report, opts ...tea.ProgramOption) error {
	if p == nil || len(p.Recipes) == 0 {
		return nil
	}

	program := tea.NewProgram(newReviewModel(p, report), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running schedule review UI: %w", err)
	}
	return nil
}
