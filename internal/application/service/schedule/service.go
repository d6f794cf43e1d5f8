// Package schedule implements the schedule-domain aggregators over the
// conference_schedules collection. Aggregators render display text; lookup
// failures come back as formatted error text by policy, never as errors.
package schedule

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

const defaultSessionLimit = 10

type service struct {
	gateway interfaces.Gateway
}

// NewService creates the schedule aggregator service.
func NewService(gateway interfaces.Gateway) interfaces.ScheduleService {
	return &service{gateway: gateway}
}

// sessionOrder is the canonical listing order: date first, then start time.
func sessionOrder() []types.OrderBy {
	return []types.OrderBy{types.Asc("conference_date"), types.Asc("start_time")}
}

// displayOr returns a row field for display, with a fallback for blank values.
func displayOr(r types.Record, key, fallback string) string {
	if v := types.StringField(r, key); v != "" {
		return v
	}
	return fallback
}

// uniqueSorted collects the non-blank values of one column, deduplicated and
// sorted lexicographically.
func uniqueSorted(rows []types.Record, column string) []string {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		value := types.StringField(row, column)
		if strings.TrimSpace(value) == "" {
			continue
		}
		seen[value] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

func writeSessionEntry(b *strings.Builder, index int, session types.Record, withSpeaker bool) {
	fmt.Fprintf(b, "%d. **%s**\n", index, displayOr(session, "topic", "Unknown Topic"))
	if withSpeaker {
		fmt.Fprintf(b, "   Speaker: %s\n", displayOr(session, "speaker_name", "TBA"))
	}
	fmt.Fprintf(b, "   Date: %s\n", displayOr(session, "conference_date", "TBA"))
	fmt.Fprintf(b, "   Time: %s - %s\n",
		displayOr(session, "start_time", "TBA"), displayOr(session, "end_time", "TBA"))
	fmt.Fprintf(b, "   Room: %s\n", displayOr(session, "conference_room_name", "TBA"))
	fmt.Fprintf(b, "   Track: %s\n\n", displayOr(session, "track_name", "TBA"))
}

// GetConferenceSessions lists sessions with optional equality filters,
// ordered by date then start time.
func (s *service) GetConferenceSessions(ctx context.Context, filter types.SessionFilter) string {
	filters := map[string]string{}
	if filter.SpeakerName != "" {
		filters["speaker_name"] = filter.SpeakerName
	}
	if filter.Topic != "" {
		filters["topic"] = filter.Topic
	}
	if filter.RoomName != "" {
		filters["conference_room_name"] = filter.RoomName
	}
	if filter.TrackName != "" {
		filters["track_name"] = filter.TrackName
	}
	if filter.Date != "" {
		filters["conference_date"] = filter.Date
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSessionLimit
	}

	sessions, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{
		Filters: filters,
		Order:   sessionOrder(),
		Limit:   limit,
	})
	if err != nil {
		logger.Errorf(ctx, "failed to fetch conference sessions: %v", err)
		return fmt.Sprintf("Error fetching conference sessions: %v", err)
	}

	if len(sessions) == 0 {
		return "No conference sessions found matching the specified criteria."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conference session(s):\n\n", len(sessions))
	for i, session := range sessions {
		writeSessionEntry(&b, i+1, session, true)
	}

	logger.Infof(ctx, "retrieved %d conference sessions", len(sessions))
	return b.String()
}

// GetAllSpeakers lists every distinct speaker as a numbered list.
func (s *service) GetAllSpeakers(ctx context.Context) string {
	return s.listUniqueColumn(ctx, "speaker_name", "Speakers",
		"No speakers found in the conference database.", "No valid speaker names found.")
}

// GetAllTracks lists every distinct track as a numbered list.
func (s *service) GetAllTracks(ctx context.Context) string {
	return s.listUniqueColumn(ctx, "track_name", "Tracks",
		"No tracks found in the conference database.", "No valid track names found.")
}

// GetAllRooms lists every distinct room as a numbered list.
func (s *service) GetAllRooms(ctx context.Context) string {
	return s.listUniqueColumn(ctx, "conference_room_name", "Rooms",
		"No rooms found in the conference database.", "No valid room names found.")
}

func (s *service) listUniqueColumn(ctx context.Context, column, label, emptyMsg, blankMsg string) string {
	rows, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{Select: column})
	if err != nil {
		logger.Errorf(ctx, "failed to fetch %s: %v", strings.ToLower(label), err)
		return fmt.Sprintf("Error fetching %s: %v", strings.ToLower(label), err)
	}
	if len(rows) == 0 {
		return emptyMsg
	}

	values := uniqueSorted(rows, column)
	if len(values) == 0 {
		return blankMsg
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Conference %s (%d total):**\n\n", label, len(values))
	for i, value := range values {
		fmt.Fprintf(&b, "%d. %s\n", i+1, value)
	}

	logger.Infof(ctx, "retrieved %d unique %s", len(values), strings.ToLower(label))
	return b.String()
}

// SearchSessionsBySpeaker lists the sessions of one speaker, exact match.
func (s *service) SearchSessionsBySpeaker(ctx context.Context, speakerName string) string {
	sessions, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{
		Filters: map[string]string{"speaker_name": speakerName},
		Order:   sessionOrder(),
	})
	if err != nil {
		logger.Errorf(ctx, "failed to search sessions by speaker: %v", err)
		return fmt.Sprintf("Error searching sessions: %v", err)
	}

	if len(sessions) == 0 {
		return fmt.Sprintf("No sessions found for speaker: %s", speakerName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Sessions by %s (%d session(s)):**\n\n", speakerName, len(sessions))
	for i, session := range sessions {
		writeSessionEntry(&b, i+1, session, false)
	}

	logger.Infof(ctx, "found %d sessions for speaker: %s", len(sessions), speakerName)
	return b.String()
}

// SearchSessionsByTopic matches the keyword against topics in memory; topic
// matching is substring-based, so it cannot be pushed down as an equality
// filter.
func (s *service) SearchSessionsByTopic(ctx context.Context, topicKeyword string) string {
	sessions, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{})
	if err != nil {
		logger.Errorf(ctx, "failed to search sessions by topic: %v", err)
		return fmt.Sprintf("Error searching sessions: %v", err)
	}

	keyword := strings.ToLower(topicKeyword)
	var matching []types.Record
	for _, session := range sessions {
		if strings.Contains(strings.ToLower(types.StringField(session, "topic")), keyword) {
			matching = append(matching, session)
		}
	}

	if len(matching) == 0 {
		return fmt.Sprintf("No sessions found containing topic keyword: %s", topicKeyword)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Sessions containing '%s' (%d session(s)):**\n\n", topicKeyword, len(matching))
	for i, session := range matching {
		writeSessionEntry(&b, i+1, session, true)
	}

	logger.Infof(ctx, "found %d sessions for topic: %s", len(matching), topicKeyword)
	return b.String()
}

// GetSessionCount reports the total session count with unique speaker, track
// and room stats when the schedule is not empty.
func (s *service) GetSessionCount(ctx context.Context) string {
	sessions, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{Select: "id"})
	if err != nil {
		logger.Errorf(ctx, "failed to get session count: %v", err)
		return fmt.Sprintf("Error getting session count: %v", err)
	}

	count := len(sessions)

	var b strings.Builder
	fmt.Fprintf(&b, "**Total Conference Sessions:** %d", count)

	if count > 0 {
		stats, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{
			Select: "speaker_name, track_name, conference_room_name",
		})
		if err != nil {
			logger.Errorf(ctx, "failed to get session stats: %v", err)
			return fmt.Sprintf("Error getting session count: %v", err)
		}

		speakers := make(map[string]struct{})
		tracks := make(map[string]struct{})
		rooms := make(map[string]struct{})
		for _, session := range stats {
			if v := types.StringField(session, "speaker_name"); v != "" {
				speakers[v] = struct{}{}
			}
			if v := types.StringField(session, "track_name"); v != "" {
				tracks[v] = struct{}{}
			}
			if v := types.StringField(session, "conference_room_name"); v != "" {
				rooms[v] = struct{}{}
			}
		}

		b.WriteString("\n**Additional Stats:**")
		fmt.Fprintf(&b, "\n- Unique Speakers: %d", len(speakers))
		fmt.Fprintf(&b, "\n- Unique Tracks: %d", len(tracks))
		fmt.Fprintf(&b, "\n- Unique Rooms: %d", len(rooms))
	}

	logger.Infof(ctx, "retrieved session count: %d", count)
	return b.String()
}

// GetSpeakerCount reports the number of distinct non-blank speakers.
func (s *service) GetSpeakerCount(ctx context.Context) string {
	rows, err := s.gateway.Query(ctx, types.CollectionSchedules, types.QueryOptions{Select: "speaker_name"})
	if err != nil {
		logger.Errorf(ctx, "failed to get speaker count: %v", err)
		return fmt.Sprintf("Error getting speaker count: %v", err)
	}

	count := len(uniqueSorted(rows, "speaker_name"))
	logger.Infof(ctx, "retrieved speaker count: %d", count)
	return fmt.Sprintf("**Total Unique Speakers:** %d", count)
}
