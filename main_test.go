package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gmarchal/labyrinth/api"
	"github.com/gmarchal/labyrinth/transport/mcp"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestInitializeServices(t *testing.T) {
	gameService := initializeServices()
	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestMainRouter(t *testing.T) {
	gameService := initializeServices()
	apiServer := api.NewServer(gameService, nil)
	router := newMainRouter(apiServer, mcp.NewClient("http://localhost:0"))

	// The API is mounted at the root.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from /health, got %d", w.Code)
	}

	// The MCP endpoint only accepts POST.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/mcp", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 from GET /mcp, got %d", w.Code)
	}

	// A JSON-RPC message gets a JSON response without touching the API.
	body := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/mcp", body))
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 from POST /mcp, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected a JSON response, got %q", ct)
	}
}
