package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/gmarchal/labyrinth/game/engine"
	"github.com/gmarchal/labyrinth/game/service"
	"github.com/gmarchal/labyrinth/game/session"
	"github.com/gmarchal/labyrinth/transport/websocket"
)

// Server represents the REST API server.
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server. hub may be nil when no WebSocket
// spectating is wanted.
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// Session management
	api.HandleFunc("/sessions", s.handleCreateSession).Methods("POST")
	api.HandleFunc("/sessions", s.handleListSessions).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods("DELETE")

	// Game state
	api.HandleFunc("/sessions/{id}/state", s.handleGameState).Methods("GET")
	api.HandleFunc("/sessions/{id}/reachable", s.handleReachable).Methods("GET")

	// Turn actions
	api.HandleFunc("/sessions/{id}/rotate", s.handleRotate).Methods("POST")
	api.HandleFunc("/sessions/{id}/insert", s.handleInsert).Methods("POST")
	api.HandleFunc("/sessions/{id}/move", s.handleMove).Methods("POST")
	api.HandleFunc("/sessions/{id}/undo", s.handleUndo).Methods("POST")
	api.HandleFunc("/sessions/{id}/redo", s.handleRedo).Methods("POST")
	api.HandleFunc("/sessions/{id}/ai-turn", s.handleAITurn).Methods("POST")
	api.HandleFunc("/sessions/{id}/abandon", s.handleAbandon).Methods("POST")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Health check
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error kinds onto HTTP statuses:
// malformed input is 400, an action outside its legal phase is 409, a missing
// session or player is 404.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrState), errors.Is(err, session.ErrSessionAlreadyExists):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrNotFound), errors.Is(err, session.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// broadcast pushes the action's snapshot to the session's spectators.
func (s *Server) broadcast(sessionID, event string, result *service.ActionResult) {
	if s.hub != nil && result != nil {
		s.hub.BroadcastToSession(sessionID, event, result.GameState)
	}
}

// Session Handlers

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerCount int `json:"player_count"`
		HumanCount  int `json:"human_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	info, err := s.service.CreateSession(r.Context(), req.PlayerCount, req.HumanCount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, info)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.service.ListSessions(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Most recently accessed first, optionally limited.
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastAccessedAt.After(sessions[j].LastAccessedAt)
	})
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l < len(sessions) {
			sessions = sessions[:l]
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	info, err := s.service.GetSession(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := s.service.DeleteSession(r.Context(), sessionID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Session %s deleted", sessionID),
	})
}

// State Handlers

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	snapshot, err := s.service.GameState(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleReachable(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	positions, err := s.service.ReachablePositions(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(positions),
		"positions": positions,
	})
}

// Turn Action Handlers

func (s *Server) handleRotate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := s.service.RotateExtraTile(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "rotate", result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Direction string `json:"direction"`
		Index     int    `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.InsertTile(r.Context(), sessionID, req.Direction, req.Index)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "insert", result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req struct {
		Row int `json:"row"`
		Col int `json:"col"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.MovePlayer(r.Context(), sessionID, req.Row, req.Col)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "move", result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := s.service.Undo(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "undo", result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := s.service.Redo(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "redo", result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAITurn(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := s.service.PlayAITurn(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "ai_turn", result)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	result, err := s.service.AbandonGame(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	s.broadcast(sessionID, "abandon", result)
	respondJSON(w, http.StatusOK, result)
}

// WebSocket Handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	// Verify session exists before upgrading
	if _, err := s.service.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "Invalid session", http.StatusNotFound)
		return
	}
	if s.hub == nil {
		http.Error(w, "WebSocket support disabled", http.StatusNotImplemented)
		return
	}

	s.hub.ServeWS(w, r, sessionID)
}

// Health check

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
