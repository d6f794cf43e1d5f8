package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespond(t *testing.T) {
	responder := NewResponder("Aviation Tech Summit 2025")

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "Hi there!", "Welcome to the Aviation Tech Summit 2025 assistant!"},
		{"greeting phrase", "good morning", "Welcome to the"},
		{"schedule guidance", "tell me about the agenda", "I can help with the conference schedule."},
		{"networking guidance", "industry stuff", "I can help with business networking."},
		{"default", "what's the weather like", "I'm the Aviation Tech Summit 2025 assistant."},
		{"empty", "", "I'm the Aviation Tech Summit 2025 assistant."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, responder.Respond(tt.message), tt.want)
		})
	}
}

// Greeting wins when a message matches several categories.
func TestRespondCategoryOrder(t *testing.T) {
	responder := NewResponder("Aviation Tech Summit 2025")

	out := responder.Respond("hello, tell me about the schedule and businesses")
	assert.Contains(t, out, "Welcome to the")
}
