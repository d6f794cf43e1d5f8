// Package networking implements the networking-domain aggregators over the
// business directory (ib_businesses joined with users). Aggregators render
// display text; lookup failures come back as formatted error text by policy.
package networking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

const defaultSearchLimit = 10

// businessWithUser selects business rows together with their owning user.
const businessWithUser = "*, users!inner(*)"

type service struct {
	gateway interfaces.Gateway
}

// NewService creates the networking aggregator service.
func NewService(gateway interfaces.Gateway) interfaces.NetworkingService {
	return &service{gateway: gateway}
}

// detailOr returns a field from the nested details bag with a display
// fallback for blank values.
func detailOr(r types.Record, key, fallback string) string {
	if v := types.DetailString(r, key); v != "" {
		return v
	}
	return fallback
}

// detailContains reports whether the needle matches a details field as a
// case-insensitive substring.
func detailContains(r types.Record, key, needle string) bool {
	return strings.Contains(strings.ToLower(types.DetailString(r, key)), strings.ToLower(needle))
}

// joinedUser returns the user object embedded by the users!inner join.
func joinedUser(r types.Record) map[string]any {
	if u, ok := r["users"].(map[string]any); ok {
		return u
	}
	return map[string]any{}
}

// displayName resolves a user's display name, falling back to the
// concatenated first and last name.
func displayName(details map[string]any) string {
	if name, ok := details["user_name"].(string); ok && name != "" {
		return name
	}
	first, _ := details["firstName"].(string)
	last, _ := details["lastName"].(string)
	return strings.TrimSpace(first + " " + last)
}

// SearchBusinesses fetches every business joined with its owner and applies
// the filter fields conjunctively in memory; substring matching against the
// nested details bag cannot be pushed down as equality filters.
func (s *service) SearchBusinesses(ctx context.Context, filter types.BusinessFilter) string {
	businesses, err := s.gateway.Query(ctx, types.CollectionBusinesses, types.QueryOptions{
		Select: businessWithUser,
	})
	if err != nil {
		logger.Errorf(ctx, "failed to search businesses: %v", err)
		return fmt.Sprintf("Error searching businesses: %v", err)
	}

	if len(businesses) == 0 {
		return "No businesses found in the database."
	}

	filtered := businesses
	apply := func(rows []types.Record, key, needle string) []types.Record {
		if needle == "" {
			return rows
		}
		var out []types.Record
		for _, row := range rows {
			if detailContains(row, key, needle) {
				out = append(out, row)
			}
		}
		return out
	}
	filtered = apply(filtered, "industrySector", filter.IndustrySector)
	filtered = apply(filtered, "location", filter.Location)
	filtered = apply(filtered, "companyName", filter.CompanyName)
	filtered = apply(filtered, "subSector", filter.SubSector)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	if len(filtered) == 0 {
		return "No businesses found matching the specified criteria."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d business(es):**\n\n", len(filtered))
	for i, business := range filtered {
		user := joinedUser(business)
		userName, _ := user["user_name"].(string)
		if userName == "" {
			userName = "Unknown"
		}
		email, _ := user["email"].(string)
		if email == "" {
			email = "N/A"
		}

		fmt.Fprintf(&b, "%d. **%s**\n", i+1, detailOr(business, "companyName", "Unknown Company"))
		fmt.Fprintf(&b, "   Industry: %s\n", detailOr(business, "industrySector", "Unknown"))
		fmt.Fprintf(&b, "   Sub-sector: %s\n", detailOr(business, "subSector", "N/A"))
		fmt.Fprintf(&b, "   Location: %s\n", detailOr(business, "location", "Unknown"))
		fmt.Fprintf(&b, "   Contact: %s (%s)\n", userName, email)
		fmt.Fprintf(&b, "   Position: %s\n\n", detailOr(business, "positionTitle", "N/A"))
	}

	logger.Infof(ctx, "found %d businesses matching criteria", len(filtered))
	return b.String()
}

// GetUserBusinesses lists the businesses owned by one user, exact match.
func (s *service) GetUserBusinesses(ctx context.Context, userID string) string {
	businesses, err := s.gateway.Query(ctx, types.CollectionBusinesses, types.QueryOptions{
		Filters: map[string]string{"user_id": userID},
	})
	if err != nil {
		logger.Errorf(ctx, "failed to fetch user businesses: %v", err)
		return fmt.Sprintf("Error fetching user businesses: %v", err)
	}

	if len(businesses) == 0 {
		return fmt.Sprintf("No businesses found for user ID: %s", userID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Businesses for User %s (%d business(es)):**\n\n", userID, len(businesses))
	for i, business := range businesses {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, detailOr(business, "companyName", "Unknown Company"))
		fmt.Fprintf(&b, "   Industry: %s\n", detailOr(business, "industrySector", "Unknown"))
		fmt.Fprintf(&b, "   Location: %s\n", detailOr(business, "location", "Unknown"))
		fmt.Fprintf(&b, "   Position: %s\n\n", detailOr(business, "positionTitle", "N/A"))
	}

	logger.Infof(ctx, "found %d businesses for user: %s", len(businesses), userID)
	return b.String()
}

// groupCount is one name/count pair for breakdown rendering.
type groupCount struct {
	name  string
	count int
}

// sortedGroups orders grouped counts by descending count, name ascending on
// ties.
func sortedGroups(counts map[string]int) []groupCount {
	groups := make([]groupCount, 0, len(counts))
	for name, count := range counts {
		groups = append(groups, groupCount{name: name, count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].name < groups[j].name
	})
	return groups
}

// GetBusinessCount reports the total business count with top-5 industry and
// location breakdowns when the directory is not empty.
func (s *service) GetBusinessCount(ctx context.Context) string {
	businesses, err := s.gateway.Query(ctx, types.CollectionBusinesses, types.QueryOptions{Select: "id"})
	if err != nil {
		logger.Errorf(ctx, "failed to get business count: %v", err)
		return fmt.Sprintf("Error getting business count: %v", err)
	}

	count := len(businesses)

	var b strings.Builder
	fmt.Fprintf(&b, "**Total Registered Businesses:** %d", count)

	if count > 0 {
		rows, err := s.gateway.Query(ctx, types.CollectionBusinesses, types.QueryOptions{Select: "details"})
		if err != nil {
			logger.Errorf(ctx, "failed to get business stats: %v", err)
			return fmt.Sprintf("Error getting business count: %v", err)
		}

		industries := make(map[string]int)
		locations := make(map[string]int)
		for _, row := range rows {
			industries[detailOr(row, "industrySector", "Unknown")]++
			locations[detailOr(row, "location", "Unknown")]++
		}

		b.WriteString("\n**Top Industries:**")
		for i, group := range sortedGroups(industries) {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "\n- %s: %d", group.name, group.count)
		}
		b.WriteString("\n**Top Locations:**")
		for i, group := range sortedGroups(locations) {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "\n- %s: %d", group.name, group.count)
		}
	}

	logger.Infof(ctx, "retrieved business count: %d", count)
	return b.String()
}

// GetUserCount reports the total number of registered users.
func (s *service) GetUserCount(ctx context.Context) string {
	users, err := s.gateway.Query(ctx, types.CollectionUsers, types.QueryOptions{Select: "id"})
	if err != nil {
		logger.Errorf(ctx, "failed to get user count: %v", err)
		return fmt.Sprintf("Error getting user count: %v", err)
	}

	logger.Infof(ctx, "retrieved user count: %d", len(users))
	return fmt.Sprintf("**Total Registered Users:** %d", len(users))
}

// SearchUsersByName matches the term against display name, email, first and
// last name (OR semantics), case-insensitive.
func (s *service) SearchUsersByName(ctx context.Context, searchTerm string, limit int) string {
	users, err := s.gateway.Query(ctx, types.CollectionUsers, types.QueryOptions{Select: "id, details"})
	if err != nil {
		logger.Errorf(ctx, "failed to search users: %v", err)
		return fmt.Sprintf("Error searching users: %v", err)
	}

	if len(users) == 0 {
		return "No users found in the database."
	}

	term := strings.ToLower(searchTerm)
	var matching []types.Record
	for _, user := range users {
		details := types.DetailsBag(user)
		fields := []string{"user_name", "email", "firstName", "lastName"}
		for _, field := range fields {
			if value, ok := details[field].(string); ok && strings.Contains(strings.ToLower(value), term) {
				matching = append(matching, user)
				break
			}
		}
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if len(matching) > limit {
		matching = matching[:limit]
	}

	if len(matching) == 0 {
		return fmt.Sprintf("No users found matching search term: %s", searchTerm)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d user(s) matching '%s':**\n\n", len(matching), searchTerm)
	for i, user := range matching {
		details := types.DetailsBag(user)
		name := displayName(details)
		if name == "" {
			name = "Unknown Name"
		}
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, name)
		fmt.Fprintf(&b, "   Email: %s\n", detailOr(user, "email", "N/A"))
		fmt.Fprintf(&b, "   Registration ID: %s\n\n", detailOr(user, "registration_id", "N/A"))
	}

	logger.Infof(ctx, "found %d users matching: %s", len(matching), searchTerm)
	return b.String()
}

// GetIndustryBreakdown groups every business by industry sector with the
// share of the total per group, one decimal place, largest first.
func (s *service) GetIndustryBreakdown(ctx context.Context) string {
	businesses, err := s.gateway.Query(ctx, types.CollectionBusinesses, types.QueryOptions{Select: "details"})
	if err != nil {
		logger.Errorf(ctx, "failed to get industry breakdown: %v", err)
		return fmt.Sprintf("Error getting industry breakdown: %v", err)
	}

	if len(businesses) == 0 {
		return "No businesses found in the database."
	}

	counts := make(map[string]int)
	for _, business := range businesses {
		counts[detailOr(business, "industrySector", "Unknown")]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Industry Breakdown (%d total businesses):**\n\n", len(businesses))
	for _, group := range sortedGroups(counts) {
		percentage := float64(group.count) / float64(len(businesses)) * 100
		fmt.Fprintf(&b, "• **%s:** %d businesses (%.1f%%)\n", group.name, group.count, percentage)
	}

	logger.Infof(ctx, "retrieved industry breakdown for %d businesses", len(businesses))
	return b.String()
}
