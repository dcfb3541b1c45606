package workflow

import (
	"errors"
	"fmt"
)

// ErrUnknownScenario is returned when a requested scenario id is not in
// the fixed set. No phases run.
var ErrUnknownScenario = errors.New("unknown scenario")

// PhaseError reports a failed completion call. The run is aborted at
// the failing phase; prior outputs are kept, later phases never execute.
type PhaseError struct {
	Scenario string
	Index    int
	Phase    string
	Err      error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("scenario %s: phase %d (%s) failed: %v", e.Scenario, e.Index, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
