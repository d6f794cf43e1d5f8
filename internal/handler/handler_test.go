package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/inboundaero/conference-agent/internal/errors"
	"github.com/inboundaero/conference-agent/internal/middleware"
	"github.com/inboundaero/conference-agent/internal/router"
	"github.com/inboundaero/conference-agent/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubChatService struct {
	resp *types.ChatResponse
	err  error
}

func (s *stubChatService) Handle(_ context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.resp != nil {
		return s.resp, nil
	}
	return &types.ChatResponse{
		ConversationID: "conv-1",
		CurrentAgent:   types.AgentTriage,
		Messages: []types.AgentMessage{
			{Content: "echo: " + req.Message, Agent: types.AgentTriage},
		},
		Events:     []any{},
		Context:    map[string]any{"is_conference_attendee": false},
		Agents:     types.AgentDescriptors(),
		Guardrails: []any{},
	}, nil
}

type stubContextService struct {
	user types.Record
	err  error
}

func (s *stubContextService) LoadContext(context.Context, string) *types.SessionContext {
	return types.NewSessionContext()
}

func (s *stubContextService) GetUserByRegistrationID(context.Context, string) (types.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func newEngine(chat *stubChatService, ctxSvc *stubContextService) *gin.Engine {
	if chat == nil {
		chat = &stubChatService{}
	}
	if ctxSvc == nil {
		ctxSvc = &stubContextService{err: apperrors.ErrNotFound}
	}
	return router.New(chat, ctxSvc)
}

func TestHealth(t *testing.T) {
	engine := newEngine(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Conference Agent System is running", body["message"])
}

func TestChat(t *testing.T) {
	engine := newEngine(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat",
		strings.NewReader(`{"message": "hello", "conversation_id": "conv-1"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "conv-1", resp.ConversationID)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "echo: hello", resp.Messages[0].Content)
	assert.Len(t, resp.Agents, 3)
}

func TestChatMissingMessage(t *testing.T) {
	engine := newEngine(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["detail"])
}

func TestChatMalformedBody(t *testing.T) {
	engine := newEngine(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatServiceFailure(t *testing.T) {
	engine := newEngine(&stubChatService{err: errors.New("downstream unavailable")}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message": "hello"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "downstream unavailable", body["detail"])
}

func TestGetUser(t *testing.T) {
	ctxSvc := &stubContextService{user: types.Record{
		"id": "u1",
		"details": map[string]any{
			"registration_id": "REG-001",
			"user_name":       "Mina Patel",
		},
	}}
	engine := newEngine(nil, ctxSvc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/REG-001", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["user_id"])
	assert.Equal(t, "REG-001", body["registration_id"])
	assert.Equal(t, "found", body["status"])

	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Mina Patel", details["user_name"])
}

func TestGetUserNotFound(t *testing.T) {
	engine := newEngine(nil, &stubContextService{err: apperrors.ErrNotFound})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/does-not-exist", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["detail"])
}

// Storage failures answer 500 with a generic detail, never the underlying
// error text.
func TestGetUserStorageFailure(t *testing.T) {
	engine := newEngine(nil, &stubContextService{err: errors.New("store unreachable")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/REG-001", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["detail"])
}

func TestRequestIDPropagation(t *testing.T) {
	engine := newEngine(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDGenerated(t *testing.T) {
	engine := newEngine(nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}
