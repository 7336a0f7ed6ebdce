package suite

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/propcheck/internal/controller"
	"github.com/mouse-blink/propcheck/pkg/check"
	"github.com/mouse-blink/propcheck/pkg/gen"
	"github.com/mouse-blink/propcheck/pkg/prop"
)

// RunArgs configures a suite run.
type RunArgs struct {
	Names   []string
	Params  check.Params
	Seed    int64
	Threads int
}

// Runner executes registered properties and reports through a UI.
type Runner interface {
	Run(args RunArgs) ([]controller.Summary, error)
	List() error
}

type runner struct {
	ui controller.UI
}

// NewRunner creates a suite Runner reporting through ui.
func NewRunner(ui controller.UI) Runner {
	return &runner{ui: ui}
}

// Run checks the selected properties, fanning out across workers.
// Every property gets its own derived seed and its own random source,
// so each individual run stays sequential and reproducible.
func (r *runner) Run(args RunArgs) ([]controller.Summary, error) {
	entries, err := Find(args.Names)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	seed := args.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := r.ui.Start(); err != nil {
		return nil, fmt.Errorf("failed to start UI: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	r.ui.DisplayPlan(names, threads, seed, args.Params.MinSuccessfulTests)

	summaries := make([]controller.Summary, len(entries))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, entry := range entries {
		i, entry := i, entry

		g.Go(func() error {
			entrySeed := seed + int64(i)

			checker, err := check.NewRunner(args.Params, gen.NewSource(entrySeed))
			if err != nil {
				return fmt.Errorf("property %s: %w", entry.Name, err)
			}

			stats := checker.CheckWith(entry.Prop, func(_ *prop.Result, succeeded, discarded int) {
				r.ui.DisplayProgress(entry.Name, succeeded, discarded)
			})

			r.ui.DisplayOutcome(entry.Name, stats)

			summaries[i] = controller.Summary{Name: entry.Name, Seed: entrySeed, Stats: stats}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.ui.Close()
		r.ui.Wait()

		return nil, err
	}

	if err := r.ui.DisplaySummary(summaries); err != nil {
		return nil, err
	}

	r.ui.Close()
	r.ui.Wait()

	return summaries, nil
}

// List displays the registered properties.
func (r *runner) List() error {
	entries := All()

	catalog := make([]controller.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		catalog = append(catalog, controller.CatalogEntry{Name: entry.Name, Desc: entry.Desc})
	}

	return r.ui.DisplayCatalog(catalog)
}
