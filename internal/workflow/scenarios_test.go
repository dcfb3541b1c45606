package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioTable(t *testing.T) {
	ids := ScenarioIDs()
	assert.Equal(t, []string{"architecture", "conference", "marketing", "research"}, ids)

	for _, id := range ids {
		scenario, err := LookupScenario(id)
		require.NoError(t, err)

		assert.Equal(t, id, scenario.ID)
		assert.NotEmpty(t, scenario.Name)
		require.Len(t, scenario.Phases, 4, "scenario %s", id)

		for _, phase := range scenario.Phases {
			assert.NotEmpty(t, phase.Name)
			assert.NotEmpty(t, phase.Agent)
			assert.NotEmpty(t, phase.Prompt)
		}
	}
}

func TestLookupScenario_CaseInsensitive(t *testing.T) {
	for _, id := range []string{"Conference", "MARKETING", "  research  ", "Architecture"} {
		_, err := LookupScenario(id)
		assert.NoError(t, err, "lookup %q", id)
	}
}

func TestLookupScenario_Unknown(t *testing.T) {
	_, err := LookupScenario("banquet")
	assert.ErrorIs(t, err, ErrUnknownScenario)

	_, err = LookupScenario("")
	assert.ErrorIs(t, err, ErrUnknownScenario)
}

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()
	assert.Equal(t, "conference", s.ID)
	assert.Len(t, s.Phases, 4)
}

func TestTopicHint(t *testing.T) {
	assert.Equal(t, "Smart Home Assistant", TopicHint("marketing"))
	assert.Equal(t, "Smart Home Assistant", TopicHint("Marketing"))
	assert.Empty(t, TopicHint("banquet"))
}
