/*
	tui package implements the terminal playback surface for a completed
	search run. The trace it receives is a fully materialized immutable
	sequence, so the playback model only ever moves an index over it:
	forward on a timer while playing, by single steps, or by jumping
	straight to either end. No call back into the search core happens
	during playback.
*/

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mycok/skySearch/itinerary"
	"github.com/mycok/skySearch/searcher"
)

const (
	defaultInterval = 800 * time.Millisecond
	minInterval     = 100 * time.Millisecond
	maxInterval     = 6400 * time.Millisecond
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	exploringStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	frontierStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	visitedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("72"))
	describeStyle  = lipgloss.NewStyle().Italic(true)
	summaryStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("72")).
			Padding(0, 1)
	failureStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// tickMsg signals that the playback interval elapsed.
type tickMsg time.Time

// Model drives playback of a search result trace. It implements
// tea.Model and is meant for single-threaded use inside the bubbletea
// event loop.
type Model struct {
	result  *searcher.Result
	summary *itinerary.Itinerary // nil when the destination was unreachable

	index    int
	playing  bool
	interval time.Duration
	bar      progress.Model
}

// New creates a playback model for the provided search result. The
// summary may be nil for runs that never reached their destination.
func New(result *searcher.Result, summary *itinerary.Itinerary) Model {
	return Model{
		result:   result,
		summary:  summary,
		interval: defaultInterval,
		bar:      progress.New(progress.WithDefaultGradient()),
	}
}

// Index returns the trace position currently displayed.
func (m Model) Index() int {
	return m.index
}

// Playing reports whether timed playback is active.
func (m Model) Playing() bool {
	return m.playing
}

// Init starts the model paused on the first snapshot.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update reacts to playback ticks, key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 8
		if width < 10 {
			width = 10
		}
		m.bar.Width = width

	case tickMsg:
		if !m.playing {
			return m, nil
		}

		if m.index < m.lastIndex() {
			m.index++

			return m, m.tick()
		}

		// Playback parks on the terminal snapshot.
		m.playing = false

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		m.playing = !m.playing
		if m.playing {
			return m, m.tick()
		}

	case "right", "n":
		m.playing = false
		if m.index < m.lastIndex() {
			m.index++
		}

	case "left", "p":
		m.playing = false
		if m.index > 0 {
			m.index--
		}

	case "home", "g":
		m.playing = false
		m.index = 0

	case "end", "G":
		m.playing = false
		m.index = m.lastIndex()

	case "+", "=":
		if m.interval > minInterval {
			m.interval /= 2
		}

	case "-":
		if m.interval < maxInterval {
			m.interval *= 2
		}
	}

	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) lastIndex() int {
	return len(m.result.Steps) - 1
}

// View renders the snapshot at the current trace position.
func (m Model) View() string {
	step := m.result.Steps[m.index]

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("skySearch playback — %s", m.result.Mode)))
	sb.WriteString(fmt.Sprintf("  step %d/%d\n\n", m.index+1, len(m.result.Steps)))

	sb.WriteString(m.bar.ViewAs(m.progress()))
	sb.WriteString("\n\n")

	sb.WriteString(describeStyle.Render(step.Description))
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render("exploring: "))
	if len(step.Exploring) == 0 {
		sb.WriteString("—")
	} else {
		sb.WriteString(exploringStyle.Render(strings.Join(step.Exploring, ", ")))
	}
	if step.Cost != nil {
		sb.WriteString(fmt.Sprintf("  (total %s %g)", m.result.Weight, *step.Cost))
	}
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("frontier:  "))
	sb.WriteString(frontierStyle.Render(m.renderFrontier(step)))
	sb.WriteString("\n")

	sb.WriteString(labelStyle.Render("visited:   "))
	if len(step.Visited) == 0 {
		sb.WriteString("—")
	} else {
		sb.WriteString(visitedStyle.Render(strings.Join(step.Visited, ", ")))
	}
	sb.WriteString("\n")

	if m.index == m.lastIndex() {
		sb.WriteString("\n")
		sb.WriteString(m.renderOutcome())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space play/pause · ←/→ step · g/G jump · +/- speed · q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) progress() float64 {
	if m.lastIndex() == 0 {
		return 1
	}

	return float64(m.index) / float64(m.lastIndex())
}

func (m Model) renderFrontier(step searcher.Snapshot) string {
	if len(step.Frontier) == 0 {
		return "—"
	}

	entries := make([]string, len(step.Frontier))
	for i, wp := range step.Frontier {
		entries[i] = fmt.Sprintf("%s (%g)", wp.Vertex().Name, wp.Cost())
	}

	return strings.Join(entries, ", ")
}

func (m Model) renderOutcome() string {
	if m.summary == nil {
		return failureStyle.Render("destination unreachable")
	}

	return summaryStyle.Render(fmt.Sprintf(
		"%s\ntime: %g  price: %g  stops: %d",
		m.summary.PathString,
		m.summary.ElapsedTime,
		m.summary.Price,
		m.summary.Stops,
	))
}
