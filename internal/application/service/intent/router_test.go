package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inboundaero/conference-agent/internal/types"
)

func TestRoute(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"schedule question", "What sessions are happening tomorrow?", types.AgentSchedule},
		{"speaker question", "Who are the speakers?", types.AgentSchedule},
		{"track question", "show me the tracks", types.AgentSchedule},
		{"networking question", "List fintech companies", types.AgentNetworking},
		{"industry question", "What is the industry breakdown?", types.AgentNetworking},
		{"greeting", "hi there", types.AgentTriage},
		{"unrelated", "what's the weather like", types.AgentTriage},
		{"empty", "", types.AgentTriage},
		{"case insensitive", "SHOW ME ALL SESSIONS", types.AgentSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, router.Route(tt.message))
		})
	}
}

// A message matching both domains routes to schedule: schedule rules are
// evaluated first.
func TestRoutePrecedence(t *testing.T) {
	router := NewRouter()

	assert.Equal(t, types.AgentSchedule, router.Route("which sessions do fintech companies present?"))
	assert.Equal(t, types.AgentSchedule, router.Route("business networking session"))
}

func TestRouteIsTotal(t *testing.T) {
	router := NewRouter()

	for _, message := range []string{"", "    ", "!@#$%", "zzzzzz"} {
		agent := router.Route(message)
		assert.Contains(t, []string{types.AgentTriage, types.AgentSchedule, types.AgentNetworking}, agent)
	}
}
