package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexusfile/internal/config"
	"nexusfile/internal/fsops"
	"nexusfile/internal/plan"
)

type fakeResolver struct {
	plan *plan.Plan
	err  error
}

func (f *fakeResolver) Resolve(ctx context.Context, request string) (*plan.Plan, error) {
	return f.plan, f.err
}

func newTestApp(t *testing.T, p *plan.Plan, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a := New(config.DefaultConfig(), &fakeResolver{plan: p})
	a.SetIO(strings.NewReader(input), &out)
	return a, &out
}

func writeFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		paths = append(paths, p)
	}
	return paths
}

func TestRunSearchThenMoveApproved(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.jpg", "b.jpg", "notes.txt")
	dest := filepath.Join(dir, "archive")

	p := &plan.Plan{
		ID:      "test-plan",
		Request: "archive the photos",
		Ops: []plan.Operation{
			{Kind: plan.OpSearch, Search: &plan.SearchOp{Pattern: "*.jpg", Root: dir, Recursive: true}},
			{Kind: plan.OpMove, Move: &plan.MoveOp{Destination: dest}},
		},
	}
	a, out := newTestApp(t, p, "y\n")

	require.NoError(t, a.Run(context.Background(), p.Request))

	assert.FileExists(t, filepath.Join(dest, "a.jpg"))
	assert.FileExists(t, filepath.Join(dest, "b.jpg"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.Contains(t, out.String(), "Found 2 file(s)")
	assert.Contains(t, out.String(), "Moved 2 of 2 file(s)")
}

func TestRunMoveRejectedLeavesFilesAlone(t *testing.T) {
	dir := t.TempDir()
	sources := writeFiles(t, dir, "a.txt", "b.txt")
	dest := filepath.Join(dir, "moved")

	p := &plan.Plan{
		ID: "test-plan",
		Ops: []plan.Operation{
			{Kind: plan.OpMove, Move: &plan.MoveOp{Sources: sources, Destination: dest}},
		},
	}
	a, out := newTestApp(t, p, "n\n")

	require.NoError(t, a.Run(context.Background(), "move my files"))

	for _, src := range sources {
		assert.FileExists(t, src)
	}
	assert.NoDirExists(t, dest)
	assert.Contains(t, out.String(), "Operation cancelled")
}

func TestRunNonYAnswerRejects(t *testing.T) {
	dir := t.TempDir()
	sources := writeFiles(t, dir, "a.txt")
	dest := filepath.Join(dir, "moved")

	p := &plan.Plan{
		Ops: []plan.Operation{
			{Kind: plan.OpMove, Move: &plan.MoveOp{Sources: sources, Destination: dest}},
		},
	}
	a, _ := newTestApp(t, p, "yes\n")

	require.NoError(t, a.Run(context.Background(), "move it"))

	assert.FileExists(t, sources[0])
	assert.NoDirExists(t, dest)
}

func TestRunCommentaryOnlyPlan(t *testing.T) {
	p := &plan.Plan{Commentary: "I can only search and move files."}
	a, out := newTestApp(t, p, "")

	require.NoError(t, a.Run(context.Background(), "delete everything"))

	assert.Contains(t, out.String(), "I can only search and move files.")
}

func TestRunEmptySearchSkipsMove(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "archive")

	p := &plan.Plan{
		Ops: []plan.Operation{
			{Kind: plan.OpSearch, Search: &plan.SearchOp{Pattern: "*.jpg", Root: dir, Recursive: true}},
			{Kind: plan.OpMove, Move: &plan.MoveOp{Destination: dest}},
		},
	}
	// No input: a consulted prompt would read EOF and reject, but the
	// short-circuit means it is never consulted at all.
	a, out := newTestApp(t, p, "")

	require.NoError(t, a.Run(context.Background(), "archive the photos"))

	assert.Contains(t, out.String(), "No files to move")
	assert.NotContains(t, out.String(), "[y/N]")
	assert.NoDirExists(t, dest)
}

func TestRunMissingSearchRootFailsRun(t *testing.T) {
	p := &plan.Plan{
		Ops: []plan.Operation{
			{Kind: plan.OpSearch, Search: &plan.SearchOp{Pattern: "*", Root: "/nonexistent/dir"}},
		},
	}
	a, _ := newTestApp(t, p, "")

	err := a.Run(context.Background(), "find files")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRunConservationWithMissingSource(t *testing.T) {
	dir := t.TempDir()
	present := writeFiles(t, dir, "a.txt", "c.txt")
	missing := filepath.Join(dir, "b.txt")
	sources := []string{present[0], missing, present[1]}
	dest := filepath.Join(dir, "moved")

	p := &plan.Plan{
		Ops: []plan.Operation{
			{Kind: plan.OpMove, Move: &plan.MoveOp{Sources: sources, Destination: dest}},
		},
	}
	a, out := newTestApp(t, p, "y\n")

	require.NoError(t, a.Run(context.Background(), "move them"))

	assert.FileExists(t, filepath.Join(dest, "a.txt"))
	assert.FileExists(t, filepath.Join(dest, "c.txt"))
	assert.Contains(t, out.String(), "Moved 2 of 3 file(s)")
	assert.Contains(t, out.String(), "source no longer exists")
}

func TestRunCancelledContextMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	sources := writeFiles(t, dir, "a.txt")
	dest := filepath.Join(dir, "moved")

	p := &plan.Plan{
		Ops: []plan.Operation{
			{Kind: plan.OpMove, Move: &plan.MoveOp{Sources: sources, Destination: dest}},
		},
	}
	a, _ := newTestApp(t, p, "y\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx, "move it")

	require.Error(t, err)
	assert.FileExists(t, sources[0])
	assert.NoDirExists(t, dest)
}

func TestRunResolverErrorPropagates(t *testing.T) {
	var out bytes.Buffer
	a := New(config.DefaultConfig(), &fakeResolver{err: assert.AnError})
	a.SetIO(strings.NewReader(""), &out)

	err := a.Run(context.Background(), "anything")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not resolve request")
}

func TestReportSummaryConservation(t *testing.T) {
	report := &ExecutionReport{
		PlanID:    "p1",
		Attempted: 3,
		Moved:     1,
		Outcomes: []fsops.Outcome{
			{Source: "/a", Status: fsops.OutcomeMoved},
			{Source: "/b", Status: fsops.OutcomeSourceMissing, Reason: "source no longer exists"},
			{Source: "/c", Status: fsops.OutcomeMoveDenied, Reason: "permission denied"},
		},
	}

	assert.Equal(t, report.Attempted, report.Moved+len(report.Failures()))
	summary := report.Summary()
	assert.Contains(t, summary, "Moved 1 of 3")
	assert.Contains(t, summary, "/b: source no longer exists")
	assert.Contains(t, summary, "/c: permission denied")
}
