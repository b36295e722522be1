package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"nexusfile/internal/config"
	"nexusfile/internal/permission"
	"nexusfile/internal/plan"
	"nexusfile/internal/ui"
)

// planResolver is the resolver surface the orchestrator needs. Kept small
// so tests can substitute a canned implementation.
type planResolver interface {
	Resolve(ctx context.Context, request string) (*plan.Plan, error)
}

// App wires config, resolver, permissions and console IO into the
// request pipeline.
type App struct {
	cfg      *config.Config
	resolver planResolver
	perms    *permission.Manager
	in       io.Reader
	out      io.Writer
}

// New creates an app reading confirmations from stdin.
func New(cfg *config.Config, resolver planResolver) *App {
	a := &App{
		cfg:      cfg,
		resolver: resolver,
		perms:    permission.NewManager(),
		in:       os.Stdin,
		out:      os.Stdout,
	}
	a.installPromptHandler()
	return a
}

// SetIO redirects console input and output, mainly for tests.
func (a *App) SetIO(in io.Reader, out io.Writer) {
	a.in = in
	a.out = out
	a.installPromptHandler()
}

func (a *App) installPromptHandler() {
	confirmer := ui.NewConfirmer(a.in, a.out)
	a.perms.SetPromptHandler(func(ctx context.Context, description string) (bool, error) {
		fmt.Fprintln(a.out, description)
		return confirmer.Confirm(ctx, "Proceed?"), nil
	})
}
