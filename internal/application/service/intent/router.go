// Package intent classifies an inbound message into an agent by keyword
// matching. Routing is an ordered rule list evaluated first-match-wins, so
// the function is total and deterministic: every message maps to exactly one
// agent.
package intent

import (
	"strings"

	"github.com/inboundaero/conference-agent/internal/types"
)

// Rule binds a trigger-keyword set to an agent. A message matches when any
// keyword occurs as a case-insensitive substring.
type Rule struct {
	Agent    string
	Keywords []string
}

// Router evaluates rules in order and falls back to a default agent.
type Router struct {
	rules    []Rule
	fallback string
}

// scheduleKeywords trigger the schedule agent.
var scheduleKeywords = []string{
	"session", "sessions", "speaker", "speakers", "schedule", "agenda",
	"track", "tracks", "room", "rooms", "conference", "talk", "talks",
	"presentation", "presentations", "topic", "topics", "time", "when",
	"how many sessions", "how many speakers", "session count", "speaker count",
}

// networkingKeywords trigger the networking agent.
var networkingKeywords = []string{
	"business", "businesses", "company", "companies", "networking",
	"industry", "sector", "user", "users", "profile", "profiles",
	"connect", "connection", "directory", "how many users", "how many businesses",
	"business count", "user count", "industry breakdown",
}

// NewRouter creates the default router: schedule rules take precedence over
// networking rules; everything else goes to triage.
func NewRouter() *Router {
	return &Router{
		rules: []Rule{
			{Agent: types.AgentSchedule, Keywords: scheduleKeywords},
			{Agent: types.AgentNetworking, Keywords: networkingKeywords},
		},
		fallback: types.AgentTriage,
	}
}

// Route returns the agent name for a message.
func (r *Router) Route(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Agent
			}
		}
	}
	return r.fallback
}
