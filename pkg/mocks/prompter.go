package mocks

import "github.com/user/rasterpaint/pkg/ports"

// Prompter is a mock implementation of ports.Prompter.
// Without a func it cancels every request.
type Prompter struct {
	PromptTextFunc   func(title, label string) (string, bool)
	PromptFactorFunc func(title, label string, def, min, max float64) (float64, bool)

	TextCalls   int
	FactorCalls int
}

func (m *Prompter) PromptText(title, label string) (string, bool) {
	m.TextCalls++
	if m.PromptTextFunc != nil {
		return m.PromptTextFunc(title, label)
	}
	return "", false
}

func (m *Prompter) PromptFactor(title, label string, def, min, max float64) (float64, bool) {
	m.FactorCalls++
	if m.PromptFactorFunc != nil {
		return m.PromptFactorFunc(title, label, def, min, max)
	}
	return def, false
}

var _ ports.Prompter = (*Prompter)(nil)
