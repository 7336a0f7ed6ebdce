package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Width(32)
	passedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	exhaustedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	counterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	argStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// propertyRow tracks the live state of one property being checked.
type propertyRow struct {
	name      string
	succeeded int
	discarded int
	status    string
	args      []string
	bar       progress.Model
}

// runModel is the Bubble Tea model for a live check run.
type runModel struct {
	order   []string
	rows    map[string]*propertyRow
	target  int
	threads int
	seed    int64
	summary *summaryMsg
}

func newRunModel() runModel {
	return runModel{rows: map[string]*propertyRow{}}
}

func (m runModel) Init() tea.Cmd {
	return nil
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planMsg:
		return m.handlePlan(msg), nil
	case progressMsg:
		return m.handleProgress(msg), nil
	case outcomeMsg:
		return m.handleOutcome(msg), nil
	case summaryMsg:
		m.summary = &msg

		return m, nil
	case quitMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m runModel) handlePlan(msg planMsg) runModel {
	m.order = msg.names
	m.target = msg.target
	m.threads = msg.threads
	m.seed = msg.seed

	for _, name := range msg.names {
		bar := progress.New(progress.WithDefaultGradient())
		bar.Width = 30

		m.rows[name] = &propertyRow{name: name, status: "running", bar: bar}
	}

	return m
}

func (m runModel) handleProgress(msg progressMsg) runModel {
	row, ok := m.rows[msg.name]
	if !ok {
		return m
	}

	row.succeeded = msg.succeeded
	row.discarded = msg.discarded

	return m
}

func (m runModel) handleOutcome(msg outcomeMsg) runModel {
	row, ok := m.rows[msg.name]
	if !ok {
		return m
	}

	row.succeeded = msg.succeeded
	row.discarded = msg.discarded
	row.status = msg.status
	row.args = msg.args

	return m
}

func (m runModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf(
		"Checking %d properties (%d worker(s), seed %d)", len(m.order), m.threads, m.seed)))
	b.WriteString("\n\n")

	for _, name := range m.order {
		row, ok := m.rows[name]
		if !ok {
			continue
		}

		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}

	if m.summary != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf(
			"Done: %d properties, %d failed", m.summary.total, m.summary.failed)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m runModel) renderRow(row *propertyRow) string {
	percent := 0.0
	if m.target > 0 {
		percent = float64(row.succeeded) / float64(m.target)
	}

	if percent > 1 {
		percent = 1
	}

	line := nameStyle.Render(row.name) + " " + row.bar.ViewAs(percent) + " " +
		counterStyle.Render(fmt.Sprintf("%d passed, %d discarded", row.succeeded, row.discarded)) +
		" " + m.renderStatus(row.status)

	if len(row.args) > 0 {
		line += "\n" + argStyle.Render("    counterexample: "+strings.Join(row.args, ", "))
	}

	return line
}

func (m runModel) renderStatus(status string) string {
	switch status {
	case "passed":
		return passedStyle.Render("PASSED")
	case "failed":
		return failedStyle.Render("FAILED")
	case "exhausted":
		return exhaustedStyle.Render("EXHAUSTED")
	default:
		return counterStyle.Render("running")
	}
}
