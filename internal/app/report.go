package app

import (
	"fmt"
	"strings"

	"nexusfile/internal/fsops"
)

// ExecutionReport summarizes what an approved plan actually did.
type ExecutionReport struct {
	PlanID    string
	Attempted int
	Moved     int
	Outcomes  []fsops.Outcome
}

// Failures returns the outcomes that did not succeed, in attempt order.
func (r *ExecutionReport) Failures() []fsops.Outcome {
	var failures []fsops.Outcome
	for _, o := range r.Outcomes {
		if o.Status != fsops.OutcomeMoved {
			failures = append(failures, o)
		}
	}
	return failures
}

// Summary renders the success count and every per-item failure with its
// reason.
func (r *ExecutionReport) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Moved %d of %d file(s)", r.Moved, r.Attempted)
	failures := r.Failures()
	if len(failures) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\n%d file(s) could not be moved:", len(failures))
	for _, f := range failures {
		fmt.Fprintf(&b, "\n  %s: %s (%s)", f.Source, f.Reason, f.Status)
	}
	return b.String()
}
