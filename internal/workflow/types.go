// Package workflow implements the sequential phase-chaining engine.
// A Scenario is a fixed ordered list of persona phases; each phase's
// prompt carries the accumulated outputs of every prior phase, and the
// model's reply is stored under a normalized key for later phases and
// the final transcript.
package workflow

import (
	"strings"
	"time"
)

// Phase is one step of a scenario: a persona and its instruction prompt.
// Phases are defined at startup and never mutated.
type Phase struct {
	Name   string
	Agent  string
	Prompt string
}

// Key returns the storage key for this phase's output.
func (p Phase) Key() string {
	return PhaseKey(p.Name)
}

// Scenario is a named, fixed sequence of phases representing one
// end-to-end planning task.
type Scenario struct {
	ID     string
	Name   string
	Phases []Phase
}

// PhaseKey normalizes a phase name to its storage key: lowercase with
// spaces replaced by underscores. Deterministic and idempotent; used as
// both the write and read key.
func PhaseKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// PhaseRef identifies a completed phase in the run summary.
type PhaseRef struct {
	Index int
	Name  string
	Agent string
}

// Result holds everything one run produced. Owned by a single run;
// callers hand it to the transcript writer and discard it.
type Result struct {
	ScenarioID   string
	ScenarioName string
	Model        string
	Topic        string
	StartedAt    time.Time
	FinishedAt   time.Time

	// Outputs maps PhaseKey(name) -> response text. One entry per
	// phase, populated in scenario order.
	Outputs map[string]string

	// Summary lists the completed phases in execution order.
	Summary []PhaseRef
}

// Output returns the stored text for a phase by display name.
func (r *Result) Output(phaseName string) string {
	return r.Outputs[PhaseKey(phaseName)]
}
