package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	processquery "supplychain-assistant/internal/assistant/process-query"
	"supplychain-assistant/internal/common/errors"
	"supplychain-assistant/internal/models"
	"supplychain-assistant/internal/session"
	"supplychain-assistant/pkg/registry"
)

type QueryResponseBody struct {
	Response models.QueryResponse       `json:"response"`
	Context  models.ConversationContext `json:"context"`
}

type CapabilitiesBody struct {
	Version            string                     `json:"version"`
	Intents            []models.Intent            `json:"intents"`
	VisualizationTypes []models.VisualizationType `json:"visualizationTypes"`
	Roles              []registry.RoleProfile     `json:"roles"`
	Capabilities       []registry.Capability      `json:"capabilities"`
	SampleQueries      []string                   `json:"sampleQueries,omitempty"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := s.store.Create(r.Context())
	if err != nil {
		s.logger.Error("failed to create session", map[string]interface{}{"error": err.Error()})
		writeError(w, errors.NewSessionSaveFailedError("", err))
		return
	}
	s.logger.Info("session created", map[string]interface{}{"sessionId": id})
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": id})
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.store.Reset(r.Context(), id); err != nil {
		writeError(w, s.storeError(id, "reset", err))
		return
	}
	s.logger.Info("session reset", map[string]interface{}{"sessionId": id})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetContext(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	c, err := s.store.Load(r.Context(), id)
	if err != nil {
		writeError(w, s.storeError(id, "load", err))
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	req, stdErr := decodeQuery(w, r)
	if stdErr != nil {
		writeError(w, stdErr)
		return
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		writeError(w, errors.NewInvalidRoleError(req.Role))
		return
	}

	unlock := s.locks.Lock(req.SessionID)
	defer unlock()

	current, err := s.store.Load(r.Context(), req.SessionID)
	if err != nil {
		writeError(w, s.storeError(req.SessionID, "load", err))
		return
	}

	result := s.processor.Process(r.Context(), processquery.Query{
		Text:    req.Text,
		Role:    role,
		Context: current,
	})

	// Saving even an unchanged context keeps an active session alive.
	if err := s.store.Save(r.Context(), req.SessionID, result.Context); err != nil {
		writeError(w, s.storeError(req.SessionID, "save", err))
		return
	}

	writeJSON(w, http.StatusOK, QueryResponseBody{Response: result.Response, Context: result.Context})
}

func decodeQuery(w http.ResponseWriter, r *http.Request) (*QueryRequest, *errors.StandardError) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("read body: %v", err))
	}

	result, err := queryRequestValidator.Validate(body)
	if err != nil {
		return nil, errors.NewInvalidRequestError("body is not valid JSON")
	}
	if !result.Valid {
		return nil, errors.NewInvalidRequestError(result.Summary()).WithMetadata("errors", result.Errors)
	}

	var req QueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errors.NewInvalidRequestError(fmt.Sprintf("decode body: %v", err))
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.NewInvalidRequestError("text must not be blank")
	}
	return &req, nil
}

func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	body := CapabilitiesBody{
		Version:            s.registry.Version,
		Intents:            models.Intents(),
		VisualizationTypes: models.VisualizationTypes(),
		Roles:              s.registry.Roles,
		Capabilities:       s.registry.Capabilities,
	}
	if role := r.URL.Query().Get("role"); role != "" {
		body.SampleQueries = s.registry.SampleQueries(models.Role(role))
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.ready(ctx); err != nil {
			s.logger.Warn("readiness check failed", map[string]interface{}{"error": err.Error()})
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// storeError maps a session store failure onto the API error taxonomy.
func (s *Server) storeError(id, op string, err error) *errors.StandardError {
	if stderrors.Is(err, session.ErrSessionNotFound) {
		return errors.NewSessionNotFoundError(id)
	}

	s.logger.Error("session store failure", map[string]interface{}{
		"sessionId": id,
		"operation": op,
		"error":     err.Error(),
	})
	switch op {
	case "save":
		return errors.NewSessionSaveFailedError(id, err)
	case "reset":
		return errors.NewSessionResetFailedError(id, err)
	}
	return errors.NewSessionLoadFailedError(id, err)
}
