package mock

import "context"

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, Generate returns FixedReply.
	GenerateFunc func(ctx context.Context, prompt string, temperature float64) (string, error)

	// FixedReply is returned by the default Generate behavior.
	FixedReply string

	callCount   int
	lastPrompt  string
	lastTemp    float64
	seenPrompts []string
}

// NewMockGenerator creates a mock generator that replies with an empty
// string until a FixedReply or GenerateFunc is injected.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate records the call and returns the injected behavior's reply.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.callCount++
	m.lastPrompt = prompt
	m.lastTemp = temperature
	m.seenPrompts = append(m.seenPrompts, prompt)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, temperature)
	}
	return m.FixedReply, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// LastPrompt returns the prompt of the most recent Generate call.
func (m *MockGenerator) LastPrompt() string {
	return m.lastPrompt
}

// LastTemperature returns the temperature of the most recent Generate call.
func (m *MockGenerator) LastTemperature() float64 {
	return m.lastTemp
}

// Prompts returns every prompt seen, in call order.
func (m *MockGenerator) Prompts() []string {
	return m.seenPrompts
}

// Reset clears recorded calls and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
	m.lastTemp = 0
	m.seenPrompts = nil
	m.GenerateFunc = nil
	m.FixedReply = ""
}
