// Package runner implements the delegated agent-execution facility on an
// OpenAI-compatible chat-completion API (Groq by default). Each agent is a
// fixed instruction profile plus a tool set; tools invoke the local domain
// aggregators.
package runner

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/inboundaero/conference-agent/internal/config"
	"github.com/inboundaero/conference-agent/internal/logger"
	"github.com/inboundaero/conference-agent/internal/types"
	"github.com/inboundaero/conference-agent/internal/types/interfaces"
)

// toolFunc executes one tool call with decoded JSON arguments and returns
// display text.
type toolFunc func(ctx context.Context, args map[string]any) string

// tool pairs an OpenAI function definition with its local implementation.
type tool struct {
	definition openai.FunctionDefinition
	invoke     toolFunc
}

// agentProfile is one runnable agent: instructions plus tools.
type agentProfile struct {
	name         string
	instructions string
	tools        []tool
}

type service struct {
	client    *openai.Client
	model     string
	maxRounds int
	agents    map[string]agentProfile
}

// New creates the runner. A missing API key returns (nil, nil): delegation is
// disabled and the chat service falls back to local dispatch.
func New(cfg config.AgentConfig, schedule interfaces.ScheduleService, networking interfaces.NetworkingService) (interfaces.AgentRunner, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = 4
	}

	s := &service{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxRounds: maxRounds,
	}
	s.agents = map[string]agentProfile{
		types.AgentTriage:     triageProfile(),
		types.AgentSchedule:   scheduleProfile(schedule),
		types.AgentNetworking: networkingProfile(networking),
	}
	return s, nil
}

// Run executes one agent turn: the model may call tools for up to maxRounds
// rounds before producing its final text.
func (s *service) Run(ctx context.Context, agentName string, message string, sessionCtx *types.SessionContext) (string, error) {
	profile, ok := s.agents[agentName]
	if !ok {
		return "", fmt.Errorf("unknown agent: %s", agentName)
	}

	system := profile.instructions
	if sessionCtx != nil && sessionCtx.IsConferenceAttendee {
		system += fmt.Sprintf("\n\nThe user is a registered attendee of %s", sessionCtx.ConferenceName)
		if sessionCtx.UserName != "" {
			system += fmt.Sprintf(" named %s", sessionCtx.UserName)
		}
		system += "."
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: message},
	}

	var apiTools []openai.Tool
	for i := range profile.tools {
		apiTools = append(apiTools, openai.Tool{
			Type:     openai.ToolTypeFunction,
			Function: &profile.tools[i].definition,
		})
	}

	for round := 0; round < s.maxRounds; round++ {
		resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: messages,
			Tools:    apiTools,
		})
		if err != nil {
			return "", fmt.Errorf("agent completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("agent returned no choices")
		}

		reply := resp.Choices[0].Message
		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		messages = append(messages, reply)
		for _, call := range reply.ToolCalls {
			result := s.invokeTool(ctx, profile, call)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				Name:       call.Function.Name,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("agent exceeded %d tool rounds", s.maxRounds)
}

func (s *service) invokeTool(ctx context.Context, profile agentProfile, call openai.ToolCall) string {
	for _, t := range profile.tools {
		if t.definition.Name != call.Function.Name {
			continue
		}
		args := map[string]any{}
		if call.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
				logger.Warnf(ctx, "malformed arguments for tool %s: %v", call.Function.Name, err)
			}
		}
		logger.Infof(ctx, "agent %s invoking tool %s", profile.name, call.Function.Name)
		return t.invoke(ctx, args)
	}
	return fmt.Sprintf("Unknown tool: %s", call.Function.Name)
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}
