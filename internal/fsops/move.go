package fsops

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"nexusfile/internal/config"
	"nexusfile/internal/logging"
)

// Outcome records the result of one move attempt, in request order.
type Outcome struct {
	Source string
	Target string
	Status OutcomeStatus
	Reason string
}

// MoveResult summarizes a batch move. Moved plus the number of non-moved
// outcomes always equals the number of requested sources.
type MoveResult struct {
	Moved    int
	Outcomes []Outcome
}

// Failures returns the outcomes that did not succeed.
func (r *MoveResult) Failures() []Outcome {
	var failures []Outcome
	for _, o := range r.Outcomes {
		if o.Status != OutcomeMoved {
			failures = append(failures, o)
		}
	}
	return failures
}

// MoveOptions control batch move behavior.
type MoveOptions struct {
	OnCollision config.CollisionPolicy
}

// Move relocates sources into destination, creating it (and ancestors)
// first. Destination creation is attempted once; its failure aborts the
// whole request before any source is touched. Per-item failures are
// recorded and never stop the remaining batch.
func Move(sources []string, destination string, opts MoveOptions) (*MoveResult, error) {
	dest := ExpandHome(destination)

	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, &DestinationUnavailableError{Path: dest, Err: err}
	}

	result := &MoveResult{}
	for _, source := range sources {
		src := ExpandHome(source)
		outcome := moveOne(src, dest, opts)
		if outcome.Status == OutcomeMoved {
			result.Moved++
		} else {
			logging.Warn("move item failed",
				"source", src,
				"status", string(outcome.Status),
				"reason", outcome.Reason)
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

// moveOne attempts a single move and classifies the result.
func moveOne(source, destDir string, opts MoveOptions) Outcome {
	target := filepath.Join(destDir, filepath.Base(source))
	outcome := Outcome{Source: source, Target: target}

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			outcome.Status = OutcomeSourceMissing
			outcome.Reason = "source no longer exists"
			return outcome
		}
		outcome.Status = OutcomeMoveFailed
		outcome.Reason = err.Error()
		return outcome
	}

	if opts.OnCollision == config.CollisionSkip {
		if _, err := os.Stat(target); err == nil {
			outcome.Status = OutcomeMoveDenied
			outcome.Reason = "destination already exists"
			return outcome
		}
	}

	if err := os.Rename(source, target); err != nil {
		if isCrossDevice(err) {
			if err := copyAndRemove(source, target); err != nil {
				outcome.Status = OutcomeMoveFailed
				outcome.Reason = err.Error()
				return outcome
			}
			outcome.Status = OutcomeMoved
			return outcome
		}
		if os.IsPermission(err) {
			outcome.Status = OutcomeMoveDenied
			outcome.Reason = err.Error()
			return outcome
		}
		outcome.Status = OutcomeMoveFailed
		outcome.Reason = err.Error()
		return outcome
	}

	outcome.Status = OutcomeMoved
	return outcome
}

// isCrossDevice reports whether a rename failed because source and target
// are on different filesystems.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// copyAndRemove falls back to copy-then-delete when rename cannot cross
// filesystem boundaries.
func copyAndRemove(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(target)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return err
	}

	return os.Remove(source)
}
