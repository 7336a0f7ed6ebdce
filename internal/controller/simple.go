package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/mouse-blink/propcheck/pkg/check"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start() error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; plain output has nothing to wait for.
func (s *SimpleUI) Wait() {

}

// DisplayPlan prints the run configuration.
func (s *SimpleUI) DisplayPlan(names []string, threads int, seed int64, target int) {
	s.printf("Checking %d properties to %d tests each with %d worker(s), seed %d\n",
		len(names), target, threads, seed)
}

// DisplayProgress is a no-op; per-iteration progress is a TUI concern.
func (s *SimpleUI) DisplayProgress(_ string, _ int, _ int) {

}

// DisplayOutcome prints one line per finished property.
func (s *SimpleUI) DisplayOutcome(name string, stats check.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch stats.Status {
	case check.Failed:
		s.printf("! %s: falsified after %d passed tests: %s\n",
			name, stats.Succeeded, strings.Join(stats.Failure.Args, ", "))
	case check.Exhausted:
		s.printf("! %s: gave up after %d discarded and %d passed tests\n",
			name, stats.Discarded, stats.Succeeded)
	case check.Passed:
		s.printf("+ %s: OK, passed %d tests\n", name, stats.Succeeded)
	}
}

// DisplaySummary renders the final table over all checked properties.
func (s *SimpleUI) DisplaySummary(summaries []Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Property", "Status", "Passed", "Discarded", "Counterexample"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	failed := 0

	for _, summary := range summaries {
		counterexample := ""
		if summary.Stats.Status == check.Failed {
			failed++

			counterexample = strings.Join(summary.Stats.Failure.Args, ", ")
		}

		table.Append([]string{
			summary.Name,
			summary.Stats.Status.String(),
			fmt.Sprintf("%d", summary.Stats.Succeeded),
			fmt.Sprintf("%d", summary.Stats.Discarded),
			counterexample,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(summaries)),
		fmt.Sprintf("%d failed", failed),
		"", "", "",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCatalog prints the registered properties as a table.
func (s *SimpleUI) DisplayCatalog(entries []CatalogEntry) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Property", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, entry := range entries {
		table.Append([]string{entry.Name, entry.Desc})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(entries)), ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
