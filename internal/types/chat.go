package types

// Agent names are fixed; routing and the response envelope refer to them by
// these values.
const (
	AgentTriage     = "Triage Agent"
	AgentSchedule   = "Schedule Agent"
	AgentNetworking = "Networking Agent"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id,omitempty"`
	RegistrationID string `json:"registration_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
}

// AgentMessage is one message entry in the response envelope.
type AgentMessage struct {
	Content string `json:"content"`
	Agent   string `json:"agent"`
}

// AgentDescriptor is a static description of a routing target. Descriptors
// are echoed back in every response and never mutated at runtime.
type AgentDescriptor struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Handoffs        []string `json:"handoffs"`
	Tools           []string `json:"tools"`
	InputGuardrails []string `json:"input_guardrails"`
}

// Customer is the identity block inside CustomerInfo.
type Customer struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	RegistrationID       string `json:"registration_id"`
	IsConferenceAttendee bool   `json:"is_conference_attendee"`
	ConferenceName       string `json:"conference_name"`
}

// CustomerInfo is the optional customer summary block of the envelope.
type CustomerInfo struct {
	Customer Customer `json:"customer"`
	Bookings []any    `json:"bookings"`
}

// ChatResponse is the response envelope returned for every chat request.
type ChatResponse struct {
	ConversationID string            `json:"conversation_id"`
	CurrentAgent   string            `json:"current_agent"`
	Messages       []AgentMessage    `json:"messages"`
	Events         []any             `json:"events"`
	Context        map[string]any    `json:"context"`
	Agents         []AgentDescriptor `json:"agents"`
	Guardrails     []any             `json:"guardrails"`
	CustomerInfo   *CustomerInfo     `json:"customer_info,omitempty"`
}

// AgentDescriptors returns the static topology echoed in every envelope.
func AgentDescriptors() []AgentDescriptor {
	return []AgentDescriptor{
		{
			Name:            AgentTriage,
			Description:     "Routes queries to appropriate specialists",
			Handoffs:        []string{AgentSchedule, AgentNetworking},
			Tools:           []string{},
			InputGuardrails: []string{},
		},
		{
			Name:            AgentSchedule,
			Description:     "Conference schedule and speaker information",
			Handoffs:        []string{AgentTriage},
			Tools:           []string{"get_conference_sessions", "get_all_speakers", "get_all_tracks"},
			InputGuardrails: []string{},
		},
		{
			Name:            AgentNetworking,
			Description:     "Business networking and connections",
			Handoffs:        []string{AgentTriage},
			Tools:           []string{"search_businesses", "get_user_businesses", "get_business_count"},
			InputGuardrails: []string{},
		},
	}
}
