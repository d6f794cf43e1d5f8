package runner

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inboundaero/conference-agent/internal/config"
	"github.com/inboundaero/conference-agent/internal/types"
)

type noopSchedule struct{}

func (noopSchedule) GetConferenceSessions(context.Context, types.SessionFilter) string { return "" }
func (noopSchedule) GetAllSpeakers(context.Context) string                             { return "" }
func (noopSchedule) GetAllTracks(context.Context) string                               { return "" }
func (noopSchedule) GetAllRooms(context.Context) string                                { return "" }
func (noopSchedule) SearchSessionsBySpeaker(context.Context, string) string            { return "" }
func (noopSchedule) SearchSessionsByTopic(context.Context, string) string              { return "" }
func (noopSchedule) GetSessionCount(context.Context) string                            { return "" }
func (noopSchedule) GetSpeakerCount(context.Context) string                            { return "" }

type noopNetworking struct{}

func (noopNetworking) SearchBusinesses(context.Context, types.BusinessFilter) string { return "" }
func (noopNetworking) GetUserBusinesses(context.Context, string) string              { return "" }
func (noopNetworking) GetBusinessCount(context.Context) string                       { return "" }
func (noopNetworking) GetUserCount(context.Context) string                           { return "" }
func (noopNetworking) SearchUsersByName(context.Context, string, int) string         { return "" }
func (noopNetworking) GetIndustryBreakdown(context.Context) string                   { return "" }

func TestNewWithoutAPIKey(t *testing.T) {
	runner, err := New(config.AgentConfig{}, noopSchedule{}, noopNetworking{})
	require.NoError(t, err)
	assert.Nil(t, runner)
}

func TestRunUnknownAgent(t *testing.T) {
	runner, err := New(config.AgentConfig{
		APIKey: "test-key",
		Model:  "llama3-8b-8192",
	}, noopSchedule{}, noopNetworking{})
	require.NoError(t, err)
	require.NotNil(t, runner)

	_, err = runner.Run(context.Background(), "Unknown Agent", "hello", nil)
	assert.ErrorContains(t, err, "unknown agent")
}

// Every routed agent name has a profile, and every tool a descriptor
// advertises is actually runnable.
func TestAgentProfilesCoverDescriptors(t *testing.T) {
	runner, err := New(config.AgentConfig{
		APIKey: "test-key",
		Model:  "llama3-8b-8192",
	}, noopSchedule{}, noopNetworking{})
	require.NoError(t, err)

	svc, ok := runner.(*service)
	require.True(t, ok)

	for _, descriptor := range types.AgentDescriptors() {
		profile, ok := svc.agents[descriptor.Name]
		require.True(t, ok, "missing profile for %s", descriptor.Name)
		assert.NotEmpty(t, profile.instructions)

		available := map[string]bool{}
		for _, tl := range profile.tools {
			available[tl.definition.Name] = true
		}
		for _, name := range descriptor.Tools {
			assert.True(t, available[name], "descriptor tool %s has no implementation in %s", name, descriptor.Name)
		}
	}
}

func TestInvokeToolUnknownName(t *testing.T) {
	svc := &service{}
	out := svc.invokeTool(context.Background(), agentProfile{}, openai.ToolCall{
		Function: openai.FunctionCall{Name: "does_not_exist"},
	})
	assert.Equal(t, "Unknown tool: does_not_exist", out)
}

func TestArgHelpers(t *testing.T) {
	args := map[string]any{
		"speaker_name": "Ada Chen",
		"limit":        float64(5),
		"count":        3,
	}

	assert.Equal(t, "Ada Chen", argString(args, "speaker_name"))
	assert.Equal(t, "", argString(args, "missing"))
	assert.Equal(t, "", argString(args, "limit"))
	assert.Equal(t, 5, argInt(args, "limit"))
	assert.Equal(t, 3, argInt(args, "count"))
	assert.Equal(t, 0, argInt(args, "missing"))
	assert.Equal(t, 0, argInt(args, "speaker_name"))
}
