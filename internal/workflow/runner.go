package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"planweave/internal/llm"
	"planweave/internal/logging"
)

// PhaseObserver receives phase lifecycle notifications. Observational
// only: the runner never alters control flow based on the observer.
type PhaseObserver interface {
	PhaseStarted(index int, phase Phase)
	PhaseCompleted(index int, phase Phase, output string)
}

// Runner executes a scenario's phases in order, threading every prior
// output into each phase's prompt. One Runner may serve many runs; each
// run owns its own Result and shares no mutable state with others.
type Runner struct {
	client   llm.Client
	observer PhaseObserver
}

// NewRunner creates a Runner backed by the given completion client.
func NewRunner(client llm.Client) *Runner {
	return &Runner{client: client}
}

// SetObserver installs a phase observer. Pass nil to remove it.
func (r *Runner) SetObserver(obs PhaseObserver) {
	r.observer = obs
}

// Run executes every phase of the scenario in order. It aborts on the
// first failed completion with a *PhaseError; the returned Result is nil
// in that case, but outputs already emitted through the observer stand.
func (r *Runner) Run(ctx context.Context, scenario Scenario, topic string) (*Result, error) {
	result := &Result{
		ScenarioID:   scenario.ID,
		ScenarioName: scenario.Name,
		Model:        r.client.GetModel(),
		Topic:        topic,
		StartedAt:    time.Now(),
		Outputs:      make(map[string]string, len(scenario.Phases)),
	}

	logging.Workflow("run start: scenario=%s phases=%d model=%s topic=%q",
		scenario.ID, len(scenario.Phases), result.Model, topic)

	for i, phase := range scenario.Phases {
		idx := i + 1 // phases are 1-based everywhere they are reported

		if r.observer != nil {
			r.observer.PhaseStarted(idx, phase)
		}

		output, err := r.executePhase(ctx, idx, phase, scenario, topic, result.Outputs)
		if err != nil {
			logging.WorkflowError("run aborted: scenario=%s phase=%d (%s): %v", scenario.ID, idx, phase.Name, err)
			return nil, &PhaseError{Scenario: scenario.ID, Index: idx, Phase: phase.Name, Err: err}
		}

		// Stored atomically after the full response arrives; a
		// cancelled run never leaves a half-written phase.
		result.Outputs[phase.Key()] = output
		result.Summary = append(result.Summary, PhaseRef{Index: idx, Name: phase.Name, Agent: phase.Agent})

		if r.observer != nil {
			r.observer.PhaseCompleted(idx, phase, output)
		}
	}

	result.FinishedAt = time.Now()
	logging.Workflow("run complete: scenario=%s phases=%d duration=%v",
		scenario.ID, len(result.Summary), result.FinishedAt.Sub(result.StartedAt))

	return result, nil
}

// executePhase sends one phase's completion request and returns the
// response text. Phase i+1 never starts before this returns.
func (r *Runner) executePhase(ctx context.Context, index int, phase Phase, scenario Scenario, topic string, prior map[string]string) (string, error) {
	userMessage := buildUserMessage(index, phase, scenario, topic, prior)
	systemPrompt := fmt.Sprintf("You are %s. %s", phase.Agent, phase.Prompt)

	logging.WorkflowDebug("phase %d (%s): agent=%s message_len=%d", index, phase.Name, phase.Agent, len(userMessage))

	output, err := r.client.CompleteWithSystem(ctx, systemPrompt, userMessage)
	if err != nil {
		return "", err
	}

	logging.WorkflowDebug("phase %d (%s): output_len=%d", index, phase.Name, len(output))
	return output, nil
}

// buildUserMessage assembles the outbound message for one phase: the
// phase prompt, preceded by every prior phase's output in scenario order
// when index > 1, preceded by the topic line when a topic is set.
func buildUserMessage(index int, phase Phase, scenario Scenario, topic string, prior map[string]string) string {
	userMessage := phase.Prompt

	if index > 1 {
		var sb strings.Builder
		sb.WriteString("\n\nPrevious Phase Results:\n")
		for _, prev := range scenario.Phases[:index-1] {
			if text, ok := prior[prev.Key()]; ok {
				sb.WriteString(fmt.Sprintf("\n%s:\n%s\n", prev.Name, text))
			}
		}
		userMessage = sb.String() + "\n" + userMessage
	}

	if topic != "" {
		userMessage = fmt.Sprintf("Topic/Product: %s\n\n", topic) + userMessage
	}

	return userMessage
}
