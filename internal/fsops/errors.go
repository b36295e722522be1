package fsops

import "fmt"

// PathNotFoundError reports a search root that does not exist.
// Search returns it alongside an empty result instead of panicking
// or leaking the underlying stat error past the package boundary.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %s", e.Path)
}

// DestinationUnavailableError reports that the destination directory for a
// move request could not be created. It is fatal for the whole request and
// is raised before any source is touched.
type DestinationUnavailableError struct {
	Path string
	Err  error
}

func (e *DestinationUnavailableError) Error() string {
	return fmt.Sprintf("destination unavailable: %s: %v", e.Path, e.Err)
}

func (e *DestinationUnavailableError) Unwrap() error {
	return e.Err
}

// OutcomeStatus classifies the result of a single move attempt.
type OutcomeStatus string

const (
	// OutcomeMoved means the file was relocated successfully.
	OutcomeMoved OutcomeStatus = "moved"
	// OutcomeSourceMissing means the source no longer existed at move time.
	OutcomeSourceMissing OutcomeStatus = "source_missing"
	// OutcomeMoveDenied means the move was refused (permission or collision policy).
	OutcomeMoveDenied OutcomeStatus = "move_denied"
	// OutcomeMoveFailed means the move was attempted and failed for another reason.
	OutcomeMoveFailed OutcomeStatus = "move_failed"
)
