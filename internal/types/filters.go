package types

// SessionFilter narrows a conference session listing. Zero-value fields are
// ignored; Limit zero falls back to the service default.
type SessionFilter struct {
	SpeakerName string
	Topic       string
	RoomName    string
	TrackName   string
	Date        string
	Limit       int
}

// BusinessFilter narrows a business search. Fields match case-insensitively
// as substrings against the nested business details; all given fields must
// match. Limit zero falls back to the service default.
type BusinessFilter struct {
	IndustrySector string
	Location       string
	CompanyName    string
	SubSector      string
	Limit          int
}
