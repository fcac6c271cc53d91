// test/e2e/e2e_test.go
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplychain-assistant/internal/api"
	processquery "supplychain-assistant/internal/assistant/process-query"
	"supplychain-assistant/internal/common/config"
	"supplychain-assistant/internal/common/logger"
	"supplychain-assistant/internal/fixtures"
	"supplychain-assistant/internal/models"
	"supplychain-assistant/internal/session"
	"supplychain-assistant/pkg/registry"
)

var anchor = time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

type client struct {
	t    *testing.T
	base string
	http *http.Client
}

type reply struct {
	Response struct {
		Intent        models.Intent `json:"intent"`
		Message       string        `json:"message"`
		Visualization *struct {
			Type  models.VisualizationType `json:"type"`
			Title string                   `json:"title"`
		} `json:"visualization"`
		SuggestedFollowUps []string `json:"suggestedFollowUps"`
	} `json:"response"`
	Context models.ConversationContext `json:"context"`
}

// ==========================
// Environment
// ==========================

// startStack boots the full HTTP stack from the repository config file on
// the requested session backend.
func startStack(t *testing.T, backend string) *client {
	t.Helper()

	cfg, err := config.LoadFromFile("../../configs/config.yaml")
	require.NoError(t, err)

	var rdb *redis.Client
	if backend == config.SessionBackendRedis {
		mr := miniredis.RunT(t)
		rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = rdb.Close() })
		cfg.Database.Redis.Address = mr.Addr()
	}
	cfg.Session.Backend = backend

	store, err := session.New(cfg.Session, rdb)
	require.NoError(t, err)

	log := logger.NewTestLogger(t)
	reg := registry.Default()
	require.NoError(t, reg.Validate())

	srv := api.NewServer(api.Options{
		Processor: processquery.NewFromStore(cfg, fixtures.NewStore(anchor), reg, nil, log),
		Store:     store,
		Registry:  reg,
		Logger:    log,
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &client{t: t, base: ts.URL, http: ts.Client()}
}

func (c *client) do(method, path string, body interface{}) (*http.Response, []byte) {
	c.t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(c.t, err)
	}
	req, err := http.NewRequest(method, c.base+path, bytes.NewReader(payload))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(c.t, err)
	return resp, buf.Bytes()
}

func (c *client) newSession() string {
	c.t.Helper()
	resp, body := c.do(http.MethodPost, "/api/sessions", nil)
	require.Equal(c.t, http.StatusCreated, resp.StatusCode, string(body))

	var created map[string]string
	require.NoError(c.t, json.Unmarshal(body, &created))
	require.NotEmpty(c.t, created["sessionId"])
	return created["sessionId"]
}

func (c *client) ask(sessionID string, role models.Role, text string) reply {
	c.t.Helper()
	resp, body := c.do(http.MethodPost, "/api/query", map[string]string{
		"sessionId": sessionID,
		"role":      string(role),
		"text":      text,
	})
	require.Equal(c.t, http.StatusOK, resp.StatusCode, string(body))

	var r reply
	require.NoError(c.t, json.Unmarshal(body, &r))
	return r
}

func backends() []string {
	return []string{config.SessionBackendMemory, config.SessionBackendRedis}
}

// ==========================
// Conversations
// ==========================

func TestE2E_SiteLeaderYardWalk(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend, func(t *testing.T) {
			c := startStack(t, backend)
			id := c.newSession()

			t.Log("turn 1: inbound trailers")
			r := c.ask(id, models.RoleSiteLeader, "Show me all trailers heading to FC SEA4 in the next 24 hours")
			assert.Equal(t, models.IntentTrailerLookup, r.Response.Intent)
			require.NotNil(t, r.Response.Visualization)
			assert.Equal(t, models.VisualizationTrailerYard, r.Response.Visualization.Type)
			assert.Equal(t, "SEA4", r.Context.CurrentFacility)

			t.Log("turn 2: delayed follow-up uses the stored facility")
			r = c.ask(id, models.RoleSiteLeader, "Show me the delayed trailers")
			assert.Equal(t, models.IntentDelayedTrailers, r.Response.Intent)
			assert.Equal(t, "T23456", r.Context.TrailerID)

			t.Log("turn 3: high-demand follow-up uses the stored trailer")
			r = c.ask(id, models.RoleSiteLeader, "What are the high-demand items on it?")
			assert.Equal(t, models.IntentHighDemandItems, r.Response.Intent)
			assert.Contains(t, r.Response.Message, "Trailer T23456")

			resp, body := c.do(http.MethodGet, fmt.Sprintf("/api/sessions/%s/context", id), nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			var stored models.ConversationContext
			require.NoError(t, json.Unmarshal(body, &stored))
			assert.Equal(t, r.Context, stored)

			t.Log("reset drops the carried context")
			resp, _ = c.do(http.MethodDelete, "/api/sessions/"+id, nil)
			require.Equal(t, http.StatusNoContent, resp.StatusCode)

			r = c.ask(id, models.RoleSiteLeader, "Show me the delayed trailers")
			assert.Equal(t, models.IntentDelayedShipments, r.Response.Intent)
		})
	}
}

func TestE2E_SessionsAreIsolated(t *testing.T) {
	for _, backend := range backends() {
		t.Run(backend, func(t *testing.T) {
			c := startStack(t, backend)
			a, b := c.newSession(), c.newSession()
			require.NotEqual(t, a, b)

			c.ask(a, models.RoleSiteLeader, "Show me all trailers heading to FC SEA4 in the next 24 hours")

			r := c.ask(b, models.RoleSiteLeader, "Show me the delayed trailers")
			assert.Equal(t, models.IntentDelayedShipments, r.Response.Intent)
			assert.Empty(t, r.Context.CurrentFacility)
		})
	}
}

func TestE2E_UnrecognizedQueryGetsRoleSuggestions(t *testing.T) {
	c := startStack(t, config.SessionBackendMemory)
	id := c.newSession()

	for _, role := range models.Roles() {
		t.Run(string(role), func(t *testing.T) {
			r := c.ask(id, role, "tell me a joke")
			assert.Equal(t, models.IntentUnrecognized, r.Response.Intent)
			assert.Nil(t, r.Response.Visualization)
			assert.Equal(t, registry.Default().Suggestions(role), r.Response.SuggestedFollowUps)
		})
	}
}

func TestE2E_ErrorsUseStandardEnvelope(t *testing.T) {
	c := startStack(t, config.SessionBackendMemory)
	id := c.newSession()

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		status int
		code   string
	}{
		{
			name:   "unknown session",
			method: http.MethodPost,
			path:   "/api/query",
			body:   map[string]string{"sessionId": "missing", "role": "site-leader", "text": "hi"},
			status: http.StatusNotFound,
			code:   "SESSION_NOT_FOUND",
		},
		{
			name:   "unknown role",
			method: http.MethodPost,
			path:   "/api/query",
			body:   map[string]string{"sessionId": id, "role": "intern", "text": "hi"},
			status: http.StatusBadRequest,
			code:   "INVALID_ROLE",
		},
		{
			name:   "missing text",
			method: http.MethodPost,
			path:   "/api/query",
			body:   map[string]string{"sessionId": id, "role": "site-leader"},
			status: http.StatusBadRequest,
			code:   "INVALID_REQUEST",
		},
		{
			name:   "context of unknown session",
			method: http.MethodGet,
			path:   "/api/sessions/missing/context",
			status: http.StatusNotFound,
			code:   "SESSION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := c.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var envelope struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(body, &envelope), string(body))
			assert.Equal(t, tt.code, envelope.Error.Code)
			assert.NotEmpty(t, envelope.Error.Message)
		})
	}
}

func TestE2E_CapabilitiesAndProbes(t *testing.T) {
	c := startStack(t, config.SessionBackendMemory)

	resp, body := c.do(http.MethodGet, "/api/capabilities?role=vendor-performance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var caps api.CapabilitiesBody
	require.NoError(t, json.Unmarshal(body, &caps))
	assert.Len(t, caps.Intents, len(models.Intents()))
	assert.NotEmpty(t, caps.SampleQueries)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		resp, _ := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}
