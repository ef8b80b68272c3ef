package views

import (
	"testing"

	"github.com/revie-dev/revie/internal/domain"
)

func TestAppendToLastGrowsAssistantTail(t *testing.T) {
	p := NewChatPanel()
	p.SetSize(100, 40)

	p.AppendMessage(domain.Message{Role: domain.RoleUser, Content: "hi"})
	p.AppendMessage(domain.Message{Role: domain.RoleAssistant, Content: ""})

	p.AppendToLast("Hel")
	p.AppendToLast("lo")

	messages := p.Messages()
	if got := messages[1].Content; got != "Hello" {
		t.Errorf("assistant content = %q, want %q", got, "Hello")
	}
	if got := messages[0].Content; got != "hi" {
		t.Errorf("user content mutated: %q", got)
	}
}

func TestAppendToLastIgnoresUserTail(t *testing.T) {
	p := NewChatPanel()
	p.SetSize(100, 40)

	p.AppendMessage(domain.Message{Role: domain.RoleUser, Content: "hi"})
	p.AppendToLast("rogue chunk")

	if got := p.Messages()[0].Content; got != "hi" {
		t.Errorf("chunk applied to user message: %q", got)
	}
}

func TestAppendToLastOnEmptyListIsNoop(t *testing.T) {
	p := NewChatPanel()
	p.SetSize(100, 40)

	p.AppendToLast("chunk")
	if len(p.Messages()) != 0 {
		t.Error("chunk created a message out of nothing")
	}
}

func TestStreamingDisablesInput(t *testing.T) {
	p := NewChatPanel()
	p.SetSize(100, 40)
	p.Activate()

	p.SetInput("draft")
	p.SetStreaming(true)
	if !p.IsStreaming() {
		t.Fatal("streaming flag not set")
	}

	// Input survives but stays inert while streaming.
	if p.Input() != "draft" {
		t.Errorf("input lost while streaming: %q", p.Input())
	}

	p.SetStreaming(false)
	if p.IsStreaming() {
		t.Error("streaming flag stuck")
	}
}
