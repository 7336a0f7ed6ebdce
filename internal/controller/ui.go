// Package controller provides output adapters for displaying property
// check runs.
package controller

import (
	"github.com/mouse-blink/propcheck/pkg/check"
)

// Summary holds the finished run of one named property together with
// the seed that reproduces it.
type Summary struct {
	Name  string
	Seed  int64
	Stats check.Stats
}

// CatalogEntry describes one registered property for listing.
type CatalogEntry struct {
	Name string
	Desc string
}

// UI defines the interface for displaying check runs.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start() error
	Close()
	Wait() // Wait for UI to finish rendering
	DisplayPlan(names []string, threads int, seed int64, target int)
	DisplayProgress(name string, succeeded, discarded int)
	DisplayOutcome(name string, stats check.Stats)
	DisplaySummary(summaries []Summary) error
	DisplayCatalog(entries []CatalogEntry) error
}
