// Command tracestep-tui replays a recorded trace archive interactively:
// step forward and backward through the algorithm's steps, watching the
// distance table evolve.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tracestep/tracestep/pkg/trace"
	"github.com/tracestep/tracestep/pkg/tracefile"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	stepBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 2).
			MarginLeft(2).
			MarginTop(1)

	kindStyle = map[trace.StepKind]lipgloss.Style{
		trace.StepInit:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		trace.StepVisit:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00")),
		trace.StepUpdate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")),
		trace.StepFinish: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF")),
	}

	currentVertexStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#FF00FF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", " ", "n"),
		key.WithHelp("→/space", "next step"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "p"),
		key.WithHelp("←/p", "prev step"),
	),
	First: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first step"),
	),
	Last: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last step"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.First, k.Last},
		{k.Quit},
	}
}

type model struct {
	archive   *tracefile.Archive
	index     int
	distTable table.Model
	help      help.Model
	keys      keyMap
	width     int
	vertexIDs []string
}

func initialModel(archive *tracefile.Archive) model {
	columns := []table.Column{
		{Title: "Vertex", Width: 12},
		{Title: "Distance", Width: 12},
		{Title: "Predecessor", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)

	ids := make([]string, len(archive.Nodes))
	for i, n := range archive.Nodes {
		ids[i] = n.ID
	}

	m := model{
		archive:   archive,
		distTable: t,
		help:      help.New(),
		keys:      keys,
		vertexIDs: ids,
	}
	m.refreshTable()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			if m.index < len(m.archive.Result.Steps)-1 {
				m.index++
				m.refreshTable()
			}

		case key.Matches(msg, m.keys.Prev):
			if m.index > 0 {
				m.index--
				m.refreshTable()
			}

		case key.Matches(msg, m.keys.First):
			m.index = 0
			m.refreshTable()

		case key.Matches(msg, m.keys.Last):
			m.index = len(m.archive.Result.Steps) - 1
			m.refreshTable()
		}
	}

	var cmd tea.Cmd
	m.distTable, cmd = m.distTable.Update(msg)
	return m, cmd
}

func (m *model) step() trace.Step {
	return m.archive.Result.Steps[m.index]
}

func (m *model) refreshTable() {
	step := m.step()

	if step.Matrix != nil {
		return
	}

	ids := m.vertexIDs
	if len(ids) == 0 {
		ids = make([]string, 0, len(step.Distances))
		for id := range step.Distances {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}

	rows := make([]table.Row, 0, len(ids))
	for _, id := range ids {
		dist, ok := step.Distances[id]
		if !ok {
			continue
		}
		label := id
		if step.Visited[id] {
			label = id + " ✓"
		}
		rows = append(rows, table.Row{label, dist.String(), step.Predecessors[id]})
	}
	m.distTable.SetRows(rows)
}

func (m model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Trace Replay · %s", m.archive.Algorithm)
	if m.archive.Source != "" {
		title += " from " + m.archive.Source
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	step := m.step()
	header := fmt.Sprintf("Step %d/%d  %s",
		m.index+1, len(m.archive.Result.Steps),
		kindStyle[step.Kind].Render(strings.ToUpper(string(step.Kind))))
	if step.Current != "" {
		header += "  at " + currentVertexStyle.Render(" "+step.Current+" ")
	}
	b.WriteString(stepBoxStyle.Render(header + "\n" + step.Message))
	b.WriteString("\n")

	if step.Matrix != nil {
		b.WriteString(stepBoxStyle.Render(m.renderMatrix(step)))
	} else {
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).MarginTop(1).Render(m.distTable.View()))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// renderMatrix draws the distance matrix of an all-pairs step, marking the
// cell the step refined.
func (m model) renderMatrix(step trace.Step) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%8s", ""))
	for _, id := range m.vertexIDs {
		b.WriteString(fmt.Sprintf("%10s", id))
	}
	b.WriteString("\n")

	for i, row := range step.Matrix {
		label := ""
		if i < len(m.vertexIDs) {
			label = m.vertexIDs[i]
		}
		b.WriteString(fmt.Sprintf("%8s", label))
		for j, d := range row {
			cell := fmt.Sprintf("%10s", d.String())
			if step.Triple != nil && step.Triple.I == i && step.Triple.J == j {
				cell = currentVertexStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	if step.Triple != nil {
		b.WriteString(fmt.Sprintf("\nvia %s: %s -> %s",
			m.vertexIDs[step.Triple.K], m.vertexIDs[step.Triple.I], m.vertexIDs[step.Triple.J]))
	}
	return b.String()
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tracestep-tui <archive.trace>")
		os.Exit(2)
	}

	archive, err := tracefile.LoadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load archive: %v", err)
	}
	if len(archive.Result.Steps) == 0 {
		log.Fatal("archive holds an empty trace, nothing to replay")
	}

	p := tea.NewProgram(initialModel(archive), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
