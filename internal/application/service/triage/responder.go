// Package triage produces deterministic guidance text for messages that
// match neither specialist domain. It is the local fallback for the triage
// agent when the delegated runner is unavailable.
package triage

import (
	"fmt"
	"strings"
)

var (
	greetingTerms   = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening"}
	scheduleTerms   = []string{"schedule", "session", "speaker", "agenda", "talk"}
	networkingTerms = []string{"business", "networking", "company", "industry", "connect"}
)

// Responder renders canned triage guidance.
type Responder struct {
	conferenceName string
}

// NewResponder creates a triage responder for the given conference.
func NewResponder(conferenceName string) *Responder {
	return &Responder{conferenceName: conferenceName}
}

func containsAny(message string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(message, term) {
			return true
		}
	}
	return false
}

// Respond returns guidance text for a message. Categories are checked in
// fixed order: greeting, schedule guidance, networking guidance, default.
func (r *Responder) Respond(message string) string {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, greetingTerms):
		return fmt.Sprintf(
			"Welcome to the %s assistant! I can help you explore the conference schedule "+
				"(sessions, speakers, tracks, rooms) and the business networking directory "+
				"(companies, industries, attendees). What would you like to know?",
			r.conferenceName)
	case containsAny(lower, scheduleTerms):
		return "I can help with the conference schedule. Try asking about:\n" +
			"- Conference sessions and schedules\n" +
			"- Speaker information and speaker searches\n" +
			"- Track details and listings\n" +
			"- Room information and locations\n" +
			"- Session topics and content"
	case containsAny(lower, networkingTerms):
		return "I can help with business networking. Try asking about:\n" +
			"- Business networking and connections\n" +
			"- Company and business information\n" +
			"- Industry sector questions\n" +
			"- User profiles and business profiles"
	default:
		return fmt.Sprintf(
			"I'm the %s assistant. Ask me about the conference schedule (sessions, "+
				"speakers, tracks, rooms) or the networking directory (businesses, "+
				"industries, attendees), and I'll route your question to the right specialist.",
			r.conferenceName)
	}
}
