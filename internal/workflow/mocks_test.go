package workflow

import (
	"context"
	"fmt"
	"sync"
)

// --- MockClient ---

// MockClient implements llm.Client for runner tests. It records every
// outbound message so tests can inspect the constructed prompts.
type MockClient struct {
	mu    sync.Mutex
	model string

	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Calls records (system, user) pairs in request order.
	Calls []MockCall
}

type MockCall struct {
	System string
	User   string
}

func NewMockClient() *MockClient {
	return &MockClient{model: "mock-model"}
}

func (m *MockClient) Complete(ctx context.Context, prompt string) (string, error) {
	return m.CompleteWithSystem(ctx, "", prompt)
}

func (m *MockClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{System: systemPrompt, User: userPrompt})
	n := len(m.Calls)
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userPrompt)
	}
	return fmt.Sprintf("output %d", n), nil
}

func (m *MockClient) GetModel() string {
	return m.model
}

func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// --- recordingObserver ---

type recordingObserver struct {
	started   []string
	completed []string
}

func (o *recordingObserver) PhaseStarted(index int, phase Phase) {
	o.started = append(o.started, phase.Name)
}

func (o *recordingObserver) PhaseCompleted(index int, phase Phase, output string) {
	o.completed = append(o.completed, phase.Name)
}
