package runner

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

func stringProp(description string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.String, Description: description}
}

func intProp(description string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.Integer, Description: description}
}

func objectSchema(properties map[string]jsonschema.Definition, required ...string) jsonschema.Definition {
	if properties == nil {
		properties = map[string]jsonschema.Definition{}
	}
	return jsonschema.Definition{
		Type:       jsonschema.Object,
		Properties: properties,
		Required:   required,
	}
}

func triageProfile() agentProfile {
	return agentProfile{
		name: types.AgentTriage,
		instructions: "You are the Triage Agent for the Aviation Tech Summit 2025 conference system. " +
			"Your role is to understand user queries and provide helpful responses or route them to specialist agents. " +
			"For schedule-related queries, suggest asking about conference sessions, speakers, tracks, rooms and timing. " +
			"For networking-related queries, suggest asking about businesses, companies, industry sectors and user profiles. " +
			"For general greetings or unclear queries, provide a helpful welcome message and guide users toward available services. " +
			"Always be professional and informative.",
	}
}

func scheduleProfile(svc interfaces.ScheduleService) agentProfile {
	return agentProfile{
		name: types.AgentSchedule,
		instructions: "You are the Schedule Agent for the Aviation Tech Summit 2025. Your role is to provide detailed " +
			"conference schedule information including sessions, speakers, tracks, and rooms. " +
			"Use the provided tools to fetch real data from the conference schedule. " +
			"Always provide accurate, up-to-date information about the conference. " +
			"If asked about counts, use the appropriate count tools. " +
			"Format your responses clearly and include relevant details like time, location, and speaker information.",
		tools: []tool{
			{
				definition: openai.FunctionDefinition{
					Name:        "get_conference_sessions",
					Description: "Fetch conference sessions with optional filtering by speaker, topic, room, track, or date.",
					Parameters: objectSchema(map[string]jsonschema.Definition{
						"speaker_name":         stringProp("Exact speaker name to filter by"),
						"topic":                stringProp("Exact session topic to filter by"),
						"conference_room_name": stringProp("Room name to filter by"),
						"track_name":           stringProp("Track name to filter by"),
						"conference_date":      stringProp("Conference date to filter by"),
						"limit":                intProp("Maximum number of sessions to return"),
					}),
				},
				invoke: func(ctx context.Context, args map[string]any) string {
					return svc.GetConferenceSessions(ctx, types.SessionFilter{
						SpeakerName: argString(args, "speaker_name"),
						Topic:       argString(args, "topic"),
						RoomName:    argString(args, "conference_room_name"),
						TrackName:   argString(args, "track_name"),
						Date:        argString(args, "conference_date"),
						Limit:       argInt(args, "limit"),
					})
				},
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_all_speakers",
					Description: "Get all unique speakers from the conference.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetAllSpeakers(ctx) },
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_all_tracks",
					Description: "Get all unique tracks from the conference.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetAllTracks(ctx) },
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_all_rooms",
					Description: "Get all unique conference rooms.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetAllRooms(ctx) },
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "search_sessions_by_speaker",
					Description: "Search for sessions by a specific speaker name.",
					Parameters: objectSchema(map[string]jsonschema.Definition{
						"speaker_name": stringProp("Speaker name to search for"),
					}, "speaker_name"),
				},
				invoke: func(ctx context.Context, args map[string]any) string {
					return svc.SearchSessionsBySpeaker(ctx, argString(args, "speaker_name"))
				},
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "search_sessions_by_topic",
					Description: "Search for sessions containing specific topic keywords.",
					Parameters: objectSchema(map[string]jsonschema.Definition{
						"topic_keyword": stringProp("Keyword to match against session topics"),
					}, "topic_keyword"),
				},
				invoke: func(ctx context.Context, args map[string]any) string {
					return svc.SearchSessionsByTopic(ctx, argString(args, "topic_keyword"))
				},
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_session_count",
					Description: "Get the total number of conference sessions.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetSessionCount(ctx) },
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_speaker_count",
					Description: "Get the total number of unique speakers.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetSpeakerCount(ctx) },
			},
		},
	}
}

func networkingProfile(svc interfaces.NetworkingService) agentProfile {
	return agentProfile{
		name: types.AgentNetworking,
		instructions: "You are the Networking Agent for the Aviation Tech Summit 2025. Your role is to help users " +
			"find businesses, manage business profiles, and facilitate networking connections. " +
			"Use the provided tools to fetch real data from the business directory. " +
			"Provide helpful information about registered businesses, industry breakdowns, and user connections. " +
			"Always use actual data from the database, not made-up information. " +
			"Help users discover networking opportunities and business connections.",
		tools: []tool{
			{
				definition: openai.FunctionDefinition{
					Name:        "search_businesses",
					Description: "Search for businesses by industry sector, location, company name, or other criteria.",
					Parameters: objectSchema(map[string]jsonschema.Definition{
						"industry_sector": stringProp("Industry sector to match"),
						"location":        stringProp("Location to match"),
						"company_name":    stringProp("Company name to match"),
						"sub_sector":      stringProp("Sub-sector to match"),
						"limit":           intProp("Maximum number of businesses to return"),
					}),
				},
				invoke: func(ctx context.Context, args map[string]any) string {
					return svc.SearchBusinesses(ctx, types.BusinessFilter{
						IndustrySector: argString(args, "industry_sector"),
						Location:       argString(args, "location"),
						CompanyName:    argString(args, "company_name"),
						SubSector:      argString(args, "sub_sector"),
						Limit:          argInt(args, "limit"),
					})
				},
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_user_businesses",
					Description: "Get businesses associated with a specific user.",
					Parameters: objectSchema(map[string]jsonschema.Definition{
						"user_id": stringProp("Owning user id"),
					}, "user_id"),
				},
				invoke: func(ctx context.Context, args map[string]any) string {
					return svc.GetUserBusinesses(ctx, argString(args, "user_id"))
				},
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_business_count",
					Description: "Get the total number of registered businesses.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetBusinessCount(ctx) },
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_user_count",
					Description: "Get the total number of registered users.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetUserCount(ctx) },
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "search_users_by_name",
					Description: "Search for users by name or email.",
					Parameters: objectSchema(map[string]jsonschema.Definition{
						"search_term": stringProp("Name or email fragment to search for"),
						"limit":       intProp("Maximum number of users to return"),
					}, "search_term"),
				},
				invoke: func(ctx context.Context, args map[string]any) string {
					return svc.SearchUsersByName(ctx, argString(args, "search_term"), argInt(args, "limit"))
				},
			},
			{
				definition: openai.FunctionDefinition{
					Name:        "get_industry_breakdown",
					Description: "Get a breakdown of businesses by industry sector.",
					Parameters:  objectSchema(nil),
				},
				invoke: func(ctx context.Context, _ map[string]any) string { return svc.GetIndustryBreakdown(ctx) },
			},
		},
	}
}
