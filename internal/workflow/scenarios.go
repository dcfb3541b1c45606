package workflow

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultScenarioID is used when interactive selection falls through.
const DefaultScenarioID = "conference"

// scenarios is the static workflow table. Pure data: no reordering or
// renaming is permitted within a run.
var scenarios = map[string]Scenario{
	"conference": {
		ID:   "conference",
		Name: "3-Day Conference Agenda Planning",
		Phases: []Phase{
			{
				Name:   "Research & Requirements",
				Agent:  "Conference Researcher",
				Prompt: "You are a conference planning expert. Research and identify key requirements for a 3-day conference including: target audience, main themes, session types, networking opportunities, and logistical needs. Provide a comprehensive overview in 150 words.",
			},
			{
				Name:   "Agenda Structure",
				Agent:  "Agenda Designer",
				Prompt: "You are an agenda design specialist. Based on the research, create a structured 3-day conference agenda structure including: daily themes, session timing, breaks, keynote slots, and parallel tracks. Provide a day-by-day framework in 150 words.",
			},
			{
				Name:   "Content Planning",
				Agent:  "Content Strategist",
				Prompt: "You are a content strategist. Based on the agenda structure, plan specific session topics, speaker recommendations, workshop ideas, and interactive activities for each day. Make it engaging and valuable in 150 words.",
			},
			{
				Name:   "Final Review",
				Agent:  "Conference Reviewer",
				Prompt: "You are a conference quality reviewer. Review the complete conference plan and provide 3 key recommendations for success, potential improvements, and critical success factors. Be concise in 150 words.",
			},
		},
	},
	"marketing": {
		ID:   "marketing",
		Name: "Marketing Strategy Design",
		Phases: []Phase{
			{
				Name:   "Market Analysis",
				Agent:  "Market Analyst",
				Prompt: "You are a market analyst. Analyze the target market for the product including: customer segments, competitive landscape, market trends, and opportunities. Provide insights in 150 words.",
			},
			{
				Name:   "Strategy Development",
				Agent:  "Marketing Strategist",
				Prompt: "You are a marketing strategist. Based on the market analysis, develop a comprehensive marketing strategy including: positioning, key messages, target channels, and campaign approach. Be strategic in 150 words.",
			},
			{
				Name:   "Tactical Planning",
				Agent:  "Marketing Tactician",
				Prompt: "You are a marketing tactician. Based on the strategy, create specific tactical plans including: content types, social media approach, advertising channels, and promotional activities. Be actionable in 150 words.",
			},
			{
				Name:   "Success Metrics",
				Agent:  "Marketing Analyst",
				Prompt: "You are a marketing analyst. Define success metrics and KPIs for the marketing strategy including: measurement methods, target goals, and evaluation criteria. Be specific in 150 words.",
			},
		},
	},
	"research": {
		ID:   "research",
		Name: "Research Paper Outline",
		Phases: []Phase{
			{
				Name:   "Topic Research",
				Agent:  "Research Specialist",
				Prompt: "You are a research specialist. Research and identify the research topic scope, key questions, existing literature gaps, and significance of the research area. Provide a comprehensive overview in 150 words.",
			},
			{
				Name:   "Outline Structure",
				Agent:  "Academic Writer",
				Prompt: "You are an academic writer. Based on the research, create a structured research paper outline including: abstract, introduction, literature review, methodology, results, discussion, and conclusion sections. Provide a detailed framework in 150 words.",
			},
			{
				Name:   "Content Planning",
				Agent:  "Content Planner",
				Prompt: "You are a content planner. Based on the outline, plan specific content for each section including: key points, data requirements, analysis methods, and expected contributions. Be detailed in 150 words.",
			},
			{
				Name:   "Review & Refinement",
				Agent:  "Academic Reviewer",
				Prompt: "You are an academic reviewer. Review the research paper outline and provide 3 key recommendations for improvement, potential gaps, and academic rigor enhancements. Be constructive in 150 words.",
			},
		},
	},
	"architecture": {
		ID:   "architecture",
		Name: "Software Architecture Planning",
		Phases: []Phase{
			{
				Name:   "Requirements Analysis",
				Agent:  "Systems Analyst",
				Prompt: "You are a systems analyst. Analyze the software requirements including: functional requirements, non-functional requirements, scalability needs, and technical constraints. Provide a comprehensive analysis in 150 words.",
			},
			{
				Name:   "Architecture Design",
				Agent:  "Software Architect",
				Prompt: "You are a software architect. Based on the requirements, design the software architecture including: system components, technology stack, architectural patterns, and system interactions. Provide a high-level design in 150 words.",
			},
			{
				Name:   "Technical Planning",
				Agent:  "Technical Lead",
				Prompt: "You are a technical lead. Based on the architecture, plan technical implementation details including: database design, API structure, security measures, and deployment strategy. Be technical in 150 words.",
			},
			{
				Name:   "Architecture Review",
				Agent:  "Architecture Reviewer",
				Prompt: "You are an architecture reviewer. Review the software architecture plan and provide 3 key recommendations for improvement, potential risks, and best practices. Be critical in 150 words.",
			},
		},
	},
}

// topicHints gives the interactive prompt an example topic per scenario.
var topicHints = map[string]string{
	"conference":   "AI & Machine Learning",
	"marketing":    "Smart Home Assistant",
	"research":     "Climate Change Impact",
	"architecture": "E-commerce Platform",
}

// LookupScenario resolves a scenario by id, case-insensitively.
func LookupScenario(id string) (Scenario, error) {
	s, ok := scenarios[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownScenario, id, strings.Join(ScenarioIDs(), ", "))
	}
	return s, nil
}

// DefaultScenario returns the fallback scenario for invalid interactive
// selections.
func DefaultScenario() Scenario {
	return scenarios[DefaultScenarioID]
}

// ScenarioIDs returns all scenario ids in sorted order.
func ScenarioIDs() []string {
	ids := make([]string, 0, len(scenarios))
	for id := range scenarios {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TopicHint returns an example topic for a scenario id, if one exists.
func TopicHint(id string) string {
	return topicHints[strings.ToLower(id)]
}
