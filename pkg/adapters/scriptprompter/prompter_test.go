package scriptprompter

import "testing"

func TestPrompter_EmptyCancels(t *testing.T) {
	p := New()

	if _, ok := p.PromptText("Text Tool", "Enter text:"); ok {
		t.Error("empty text queue must cancel")
	}
	if f, ok := p.PromptFactor("Brightness", "", 1, 0, 2); ok || f != 1 {
		t.Errorf("empty factor queue must cancel with the default, got %v %v", f, ok)
	}
}

func TestPrompter_FIFO(t *testing.T) {
	p := New()
	p.QueueText("first")
	p.QueueText("second")
	p.QueueFactor(0.5)

	if texts, factors := p.Pending(); texts != 2 || factors != 1 {
		t.Errorf("unexpected pending %d %d", texts, factors)
	}
	if s, _ := p.PromptText("", ""); s != "first" {
		t.Errorf("expected first, got %q", s)
	}
	if s, _ := p.PromptText("", ""); s != "second" {
		t.Errorf("expected second, got %q", s)
	}
	if f, ok := p.PromptFactor("", "", 1, 0, 2); !ok || f != 0.5 {
		t.Errorf("expected 0.5, got %v %v", f, ok)
	}
}

func TestPrompter_ClampsFactor(t *testing.T) {
	p := New()
	p.QueueFactor(5)
	p.QueueFactor(-1)

	if f, _ := p.PromptFactor("", "", 1, 0, 2); f != 2 {
		t.Errorf("expected clamp to 2, got %v", f)
	}
	if f, _ := p.PromptFactor("", "", 1, 0, 2); f != 0 {
		t.Errorf("expected clamp to 0, got %v", f)
	}
}
