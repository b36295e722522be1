package app

import (
	"context"
	"errors"
	"fmt"

	"nexusfile/internal/fsops"
	"nexusfile/internal/logging"
	"nexusfile/internal/plan"
	"nexusfile/internal/ui"
)

// Run resolves the request into a plan and executes it. Mutating
// operations are rendered and confirmed before anything changes on disk;
// a rejection leaves the filesystem untouched. Resolution and execution
// problems terminate the run with an error, never a partial mutation
// beyond what was already confirmed.
func (a *App) Run(ctx context.Context, request string) error {
	p, err := a.resolve(ctx, request)
	if err != nil {
		return err
	}

	if len(p.Ops) == 0 {
		if p.Commentary != "" {
			fmt.Fprintln(a.out, p.Commentary)
		} else {
			fmt.Fprintln(a.out, "Nothing to do.")
		}
		return nil
	}

	return a.execute(ctx, p)
}

// resolve makes the single backend call, keeping a spinner on screen
// while it is in flight. The spinner always stops, error or not.
func (a *App) resolve(ctx context.Context, request string) (*plan.Plan, error) {
	spinner := ui.NewSpinner(a.out, "thinking...")
	spinner.Start()
	defer spinner.Stop()

	p, err := a.resolver.Resolve(ctx, request)
	spinner.Stop()
	if err != nil {
		return nil, fmt.Errorf("could not resolve request: %w", err)
	}
	return p, nil
}

// execute walks the plan in order. Files found by a search feed the next
// move that names no sources of its own.
func (a *App) execute(ctx context.Context, p *plan.Plan) error {
	var found []string

	for _, op := range p.Ops {
		if err := ctx.Err(); err != nil {
			logging.Info("run interrupted", "plan_id", p.ID)
			return err
		}

		switch op.Kind {
		case plan.OpSearch:
			files, err := a.runSearch(op.Search)
			if err != nil {
				return err
			}
			found = files

		case plan.OpMove:
			if err := a.runMove(ctx, p, op.Move, found); err != nil {
				return err
			}

		default:
			return &plan.UnknownOperationError{Name: op.Kind}
		}
	}

	return nil
}

func (a *App) runSearch(op *plan.SearchOp) ([]string, error) {
	fmt.Fprintf(a.out, "Searching: %s\n", plan.DescribeSearch(op))

	files, err := fsops.Search(fsops.SearchSpec{
		Pattern:       op.Pattern,
		Root:          op.Root,
		Recursive:     op.Recursive,
		Keyword:       op.Keyword,
		CaseSensitive: a.cfg.Search.CaseSensitive,
		MaxResults:    a.cfg.Search.MaxResults,
	})
	if err != nil {
		var notFound *fsops.PathNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("search root does not exist: %s", notFound.Path)
		}
		return nil, fmt.Errorf("search failed: %w", err)
	}

	fmt.Fprintf(a.out, "Found %d file(s)\n", len(files))
	for _, f := range files {
		fmt.Fprintf(a.out, "  %s\n", f)
	}
	return files, nil
}

// runMove renders the proposed batch, gates it on confirmation, and
// reports what actually happened. A move with no explicit sources takes
// the preceding search's results; when those are empty too there is
// nothing to confirm and nothing runs.
func (a *App) runMove(ctx context.Context, p *plan.Plan, op *plan.MoveOp, found []string) error {
	sources := op.Sources
	if len(sources) == 0 {
		sources = found
	}
	if len(sources) == 0 {
		fmt.Fprintln(a.out, "No files to move.")
		return nil
	}

	rendered := plan.RenderMove(sources, op.Destination)
	approved, err := a.perms.Check(ctx, plan.OpMove, rendered)
	if err != nil {
		return err
	}
	if !approved {
		fmt.Fprintln(a.out, "Operation cancelled.")
		logging.Info("move rejected", "plan_id", p.ID, "files", len(sources))
		return nil
	}

	result, err := fsops.Move(sources, op.Destination, fsops.MoveOptions{
		OnCollision: a.cfg.Move.OnCollision,
	})
	if err != nil {
		var unavailable *fsops.DestinationUnavailableError
		if errors.As(err, &unavailable) {
			return fmt.Errorf("destination unavailable: %w", err)
		}
		return err
	}

	report := &ExecutionReport{
		PlanID:    p.ID,
		Attempted: len(sources),
		Moved:     result.Moved,
		Outcomes:  result.Outcomes,
	}
	fmt.Fprintln(a.out, report.Summary())
	logging.Info("move executed",
		"plan_id", p.ID,
		"attempted", report.Attempted,
		"moved", report.Moved,
		"failures", len(report.Failures()))

	return nil
}
