package types

// BusinessDetails is the structured business profile attached to a session
// context when the requester owns a registered business.
type BusinessDetails struct {
	CompanyName    string `json:"companyName"`
	IndustrySector string `json:"industrySector"`
	Location       string `json:"location"`
	PositionTitle  string `json:"positionTitle"`
	UserName       string `json:"user_name"`
	Email          string `json:"email"`
}

// SessionContext carries the requester's identity and conference membership
// for the duration of one request. It is constructed empty, populated from at
// most one lookup, and discarded with the request; it is never persisted.
type SessionContext struct {
	UserID               string           `json:"user_id,omitempty"`
	RegistrationID       string           `json:"registration_id,omitempty"`
	UserName             string           `json:"user_name,omitempty"`
	Email                string           `json:"email,omitempty"`
	IsConferenceAttendee bool             `json:"is_conference_attendee"`
	ConferenceName       string           `json:"conference_name,omitempty"`
	OrganizationID       string           `json:"organization_id,omitempty"`
	BusinessDetails      *BusinessDetails `json:"business_details,omitempty"`

	// Extra holds forward-compatible fields that have no fixed slot yet.
	Extra map[string]any `json:"-"`
}

// NewSessionContext creates an empty session context.
func NewSessionContext() *SessionContext {
	return &SessionContext{Extra: make(map[string]any)}
}

// Set stores a forward-compatible field on the context.
func (c *SessionContext) Set(key string, value any) {
	if c.Extra == nil {
		c.Extra = make(map[string]any)
	}
	c.Extra[key] = value
}

// ToMap flattens the context into the mapping shape used by the response
// envelope. Fixed fields win over extension fields on key collision.
func (c *SessionContext) ToMap() map[string]any {
	m := make(map[string]any, len(c.Extra)+8)
	for k, v := range c.Extra {
		m[k] = v
	}
	if c.UserID != "" {
		m["user_id"] = c.UserID
	}
	if c.RegistrationID != "" {
		m["registration_id"] = c.RegistrationID
	}
	if c.UserName != "" {
		m["user_name"] = c.UserName
	}
	if c.Email != "" {
		m["email"] = c.Email
	}
	m["is_conference_attendee"] = c.IsConferenceAttendee
	if c.ConferenceName != "" {
		m["conference_name"] = c.ConferenceName
	}
	if c.OrganizationID != "" {
		m["organization_id"] = c.OrganizationID
	}
	if c.BusinessDetails != nil {
		m["business_details"] = c.BusinessDetails
	}
	return m
}
