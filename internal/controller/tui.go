package controller

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mouse-blink/propcheck/pkg/check"
)

// progressEvery throttles per-iteration updates posted to the TUI so
// long runs do not flood the render loop.
const progressEvery = 10

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start() error {
	return t.startWithModel(newRunModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})
	t.started = true

	go func() {
		_, err := t.program.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		close(t.done)
	}()

	return nil
}

// Close asks the program to quit.
func (t *TUI) Close() {
	t.send(quitMsg{})
}

// Wait blocks until the program has finished rendering. Wait without
// a prior Start is a no-op.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// send posts a message to the running program; it is a no-op before
// Start. Program.Send is safe for concurrent use.
func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program, started := t.program, t.started
	t.mu.Unlock()

	if !started || program == nil {
		return
	}

	program.Send(msg)
}

// DisplayPlan announces the properties about to be checked. The
// success target drives the per-property progress bars.
func (t *TUI) DisplayPlan(names []string, threads int, seed int64, target int) {
	t.send(planMsg{names: names, threads: threads, seed: seed, target: target})
}

// DisplayProgress posts throttled per-iteration progress.
func (t *TUI) DisplayProgress(name string, succeeded, discarded int) {
	if (succeeded+discarded)%progressEvery != 0 {
		return
	}

	t.send(progressMsg{name: name, succeeded: succeeded, discarded: discarded})
}

// DisplayOutcome posts the final verdict of one property.
func (t *TUI) DisplayOutcome(name string, stats check.Stats) {
	msg := outcomeMsg{
		name:      name,
		status:    stats.Status.String(),
		succeeded: stats.Succeeded,
		discarded: stats.Discarded,
	}

	if stats.Status == check.Failed && stats.Failure != nil {
		msg.args = stats.Failure.Args
	}

	t.send(msg)
}

// DisplaySummary posts the run totals.
func (t *TUI) DisplaySummary(summaries []Summary) error {
	failed := 0

	for _, summary := range summaries {
		if summary.Stats.Status == check.Failed {
			failed++
		}
	}

	t.send(summaryMsg{failed: failed, total: len(summaries)})

	return nil
}

// DisplayCatalog renders the catalog without entering the interactive
// loop; listing is always short-lived.
func (t *TUI) DisplayCatalog(entries []CatalogEntry) error {
	model := newCatalogModel(entries)

	_, err := io.WriteString(t.output, model.View())

	return err
}
