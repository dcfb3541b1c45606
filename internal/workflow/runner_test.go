package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunner_RunProducesOneOutputPerPhase(t *testing.T) {
	for _, id := range ScenarioIDs() {
		t.Run(id, func(t *testing.T) {
			scenario, err := LookupScenario(id)
			require.NoError(t, err)

			client := NewMockClient()
			runner := NewRunner(client)

			result, err := runner.Run(context.Background(), scenario, "")
			require.NoError(t, err)

			assert.Len(t, result.Outputs, len(scenario.Phases))
			assert.Len(t, result.Summary, len(scenario.Phases))
			for i, phase := range scenario.Phases {
				assert.NotEmpty(t, result.Outputs[phase.Key()])
				assert.Equal(t, i+1, result.Summary[i].Index)
				assert.Equal(t, phase.Name, result.Summary[i].Name)
				assert.Equal(t, phase.Agent, result.Summary[i].Agent)
			}
		})
	}
}

func TestRunner_ContextAccumulation(t *testing.T) {
	scenario, err := LookupScenario("conference")
	require.NoError(t, err)

	client := NewMockClient()
	client.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return fmt.Sprintf("result for call %d", client.CallCount()), nil
	}
	runner := NewRunner(client)

	_, err = runner.Run(context.Background(), scenario, "")
	require.NoError(t, err)
	require.Len(t, client.Calls, len(scenario.Phases))

	// Phase 1 gets no prior context.
	assert.Equal(t, scenario.Phases[0].Prompt, client.Calls[0].User)
	assert.NotContains(t, client.Calls[0].User, "Previous Phase Results")

	// Every later phase carries all prior outputs, each preceded by its
	// display name, in original order.
	for i := 1; i < len(scenario.Phases); i++ {
		msg := client.Calls[i].User
		assert.Contains(t, msg, "Previous Phase Results:")

		lastPos := -1
		for j := 0; j < i; j++ {
			name := scenario.Phases[j].Name
			pos := strings.Index(msg, name+":")
			assert.Greaterf(t, pos, lastPos, "phase %d context out of order at %q", i+1, name)
			lastPos = pos

			assert.Contains(t, msg, fmt.Sprintf("result for call %d", j+1))
		}

		// The phase's own prompt comes after the context block.
		assert.True(t, strings.HasSuffix(msg, scenario.Phases[i].Prompt))
	}
}

func TestRunner_TopicPrefix(t *testing.T) {
	scenario, err := LookupScenario("research")
	require.NoError(t, err)

	t.Run("with topic", func(t *testing.T) {
		client := NewMockClient()
		runner := NewRunner(client)

		_, err := runner.Run(context.Background(), scenario, "Climate Change Impact")
		require.NoError(t, err)

		for _, call := range client.Calls {
			assert.True(t, strings.HasPrefix(call.User, "Topic/Product: Climate Change Impact\n\n"))
		}
	})

	t.Run("without topic", func(t *testing.T) {
		client := NewMockClient()
		runner := NewRunner(client)

		_, err := runner.Run(context.Background(), scenario, "")
		require.NoError(t, err)

		for _, call := range client.Calls {
			assert.NotContains(t, call.User, "Topic/Product:")
		}
	})
}

func TestRunner_SystemPromptCombinesAgentAndPrompt(t *testing.T) {
	scenario, err := LookupScenario("architecture")
	require.NoError(t, err)

	client := NewMockClient()
	runner := NewRunner(client)

	_, err = runner.Run(context.Background(), scenario, "")
	require.NoError(t, err)

	for i, phase := range scenario.Phases {
		want := fmt.Sprintf("You are %s. %s", phase.Agent, phase.Prompt)
		assert.Equal(t, want, client.Calls[i].System)
	}
}

func TestRunner_FailureAbortsChain(t *testing.T) {
	scenario, err := LookupScenario("marketing")
	require.NoError(t, err)

	boom := errors.New("boom")
	client := NewMockClient()
	client.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		if client.CallCount() == 3 {
			return "", boom
		}
		return "ok", nil
	}

	runner := NewRunner(client)
	obs := &recordingObserver{}
	runner.SetObserver(obs)

	result, err := runner.Run(context.Background(), scenario, "")
	require.Error(t, err)
	assert.Nil(t, result)

	// Phase 4 never executes.
	assert.Equal(t, 3, client.CallCount())
	assert.Len(t, obs.completed, 2)

	// The error attributes the failing phase.
	var phaseErr *PhaseError
	require.ErrorAs(t, err, &phaseErr)
	assert.Equal(t, "marketing", phaseErr.Scenario)
	assert.Equal(t, 3, phaseErr.Index)
	assert.Equal(t, "Tactical Planning", phaseErr.Phase)
	assert.ErrorIs(t, err, boom)
}

func TestRunner_MarketingEndToEnd(t *testing.T) {
	scenario, err := LookupScenario("marketing")
	require.NoError(t, err)

	outputs := map[int]string{
		1: "segment analysis text",
		2: "strategy text",
		3: "tactics text",
		4: "metrics text",
	}

	client := NewMockClient()
	client.CompleteFunc = func(ctx context.Context, system, user string) (string, error) {
		return outputs[client.CallCount()], nil
	}
	runner := NewRunner(client)

	result, err := runner.Run(context.Background(), scenario, "Smart Home Assistant")
	require.NoError(t, err)

	// Phase 1: topic prefix plus the phase prompt, no prior context.
	wantFirst := "Topic/Product: Smart Home Assistant\n\n" + scenario.Phases[0].Prompt
	assert.Equal(t, wantFirst, client.Calls[0].User)

	// Phase 2: topic prefix, then a block titled with phase 1's display
	// name holding its stored text, then its own prompt.
	second := client.Calls[1].User
	assert.True(t, strings.HasPrefix(second, "Topic/Product: Smart Home Assistant\n\n"))
	assert.Contains(t, second, "Market Analysis:\nsegment analysis text")
	assert.True(t, strings.HasSuffix(second, scenario.Phases[1].Prompt))

	require.Len(t, result.Outputs, 4)
	for _, key := range []string{"market_analysis", "strategy_development", "tactical_planning", "success_metrics"} {
		assert.NotEmpty(t, result.Outputs[key], "missing output for %s", key)
	}
}

func TestRunner_ObserverSeesEveryPhase(t *testing.T) {
	scenario, err := LookupScenario("conference")
	require.NoError(t, err)

	client := NewMockClient()
	runner := NewRunner(client)
	obs := &recordingObserver{}
	runner.SetObserver(obs)

	_, err = runner.Run(context.Background(), scenario, "")
	require.NoError(t, err)

	var names []string
	for _, p := range scenario.Phases {
		names = append(names, p.Name)
	}
	assert.Equal(t, names, obs.started)
	assert.Equal(t, names, obs.completed)
}

func TestLookupScenario_UnknownIsFatalBeforeAnyCall(t *testing.T) {
	client := NewMockClient()

	_, err := LookupScenario("banquet")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScenario)

	// No completion call was ever issued.
	assert.Equal(t, 0, client.CallCount())
}

func TestPhaseKey(t *testing.T) {
	assert.Equal(t, "market_analysis", PhaseKey("Market Analysis"))
	assert.Equal(t, "research_&_requirements", PhaseKey("Research & Requirements"))

	// Deterministic and idempotent.
	assert.Equal(t, PhaseKey("Final Review"), PhaseKey("Final Review"))
	assert.Equal(t, PhaseKey("final_review"), PhaseKey(PhaseKey("Final Review")))
}

func TestPhaseKey_NoCollisionsWithinScenarios(t *testing.T) {
	for _, id := range ScenarioIDs() {
		scenario, err := LookupScenario(id)
		require.NoError(t, err)

		seen := make(map[string]string)
		for _, phase := range scenario.Phases {
			key := phase.Key()
			if prev, ok := seen[key]; ok {
				t.Errorf("scenario %s: phases %q and %q collide on key %q", id, prev, phase.Name, key)
			}
			seen[key] = phase.Name
		}
	}
}
