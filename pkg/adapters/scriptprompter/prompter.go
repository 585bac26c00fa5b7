// Package scriptprompter answers modal prompts from queued values, for
// sessions replayed without a user.
package scriptprompter

import (
	"sync"

	"github.com/user/rasterpaint/pkg/ports"
)

// Prompter implements ports.Prompter with FIFO queues of answers. An empty
// queue answers as if the user pressed Cancel.
type Prompter struct {
	mu      sync.Mutex
	texts   []string
	factors []float64
}

// New creates an empty Prompter.
func New() *Prompter {
	return &Prompter{}
}

// QueueText adds an answer for the next text prompt.
func (p *Prompter) QueueText(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.texts = append(p.texts, s)
}

// QueueFactor adds an answer for the next factor prompt.
func (p *Prompter) QueueFactor(f float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factors = append(p.factors, f)
}

// Pending returns how many text and factor answers are still queued.
func (p *Prompter) Pending() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.texts), len(p.factors)
}

// PromptText pops the next queued text.
func (p *Prompter) PromptText(title, label string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.texts) == 0 {
		return "", false
	}
	s := p.texts[0]
	p.texts = p.texts[1:]
	return s, true
}

// PromptFactor pops the next queued factor. Values outside [min, max] are
// clamped the way a spin box would.
func (p *Prompter) PromptFactor(title, label string, def, min, max float64) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.factors) == 0 {
		return def, false
	}
	f := p.factors[0]
	p.factors = p.factors[1:]
	if f < min {
		f = min
	}
	if f > max {
		f = max
	}
	return f, true
}

// Ensure Prompter implements ports.Prompter
var _ ports.Prompter = (*Prompter)(nil)
