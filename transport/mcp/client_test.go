package mcp

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	gomcp "github.com/mark3labs/mcp-go/mcp"

	"github.com/gmarchal/labyrinth/api"
	"github.com/gmarchal/labyrinth/game/service"
	"github.com/gmarchal/labyrinth/game/session"
)

// newTestClient backs an MCP client with a real in-process REST server.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	svc := service.NewGameService(session.NewManager())
	srv := httptest.NewServer(api.NewServer(svc, nil))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func callRequest(args map[string]interface{}) gomcp.CallToolRequest {
	var request gomcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *gomcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("Expected tool result content")
	}
	text, ok := result.Content[0].(gomcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

// createTestSession runs the create_session tool and returns the new ID.
func createTestSession(t *testing.T, c *Client, playerCount, humanCount int) string {
	t.Helper()
	result, err := c.handleCreateSession(context.Background(), callRequest(map[string]interface{}{
		"player_count": float64(playerCount),
		"human_count":  float64(humanCount),
	}))
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	text := resultText(t, result)
	if result.IsError {
		t.Fatalf("Failed to create session: %s", text)
	}

	// "Created session: <id>\n..."
	line := strings.SplitN(text, "\n", 2)[0]
	return strings.TrimPrefix(line, "Created session: ")
}

func TestClient_NewClient(t *testing.T) {
	c := NewClient("http://localhost:8080")
	if c.baseURL != "http://localhost:8080" {
		t.Errorf("Expected base URL to be kept, got %s", c.baseURL)
	}
	if c.GetMCPServer() == nil {
		t.Error("Expected an initialized MCP server")
	}
}

func TestClient_CreateAndGetSession(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)
	if len(id) != 8 {
		t.Errorf("Expected an 8 character session ID, got %q", id)
	}

	result, err := c.handleGetSession(context.Background(), callRequest(map[string]interface{}{
		"session_id": id,
	}))
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, id) || !strings.Contains(text, "Players: 2 (2 human)") {
		t.Errorf("Unexpected session details:\n%s", text)
	}
}

func TestClient_CreateSessionValidation(t *testing.T) {
	c := newTestClient(t)

	result, err := c.handleCreateSession(context.Background(), callRequest(map[string]interface{}{
		"player_count": float64(5),
	}))
	if err != nil {
		t.Fatalf("Handler errors should become tool errors, got %v", err)
	}
	if !result.IsError {
		t.Error("Expected a tool error for 5 players")
	}
}

func TestClient_ListSessions(t *testing.T) {
	c := newTestClient(t)
	createTestSession(t, c, 2, 2)
	createTestSession(t, c, 3, 1)

	result, err := c.handleListSessions(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Active Sessions (2)") {
		t.Errorf("Expected two sessions listed, got:\n%s", text)
	}
}

func TestClient_GameStateRendersBoard(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)

	result, err := c.handleGameState(context.Background(), callRequest(map[string]interface{}{
		"session_id": id,
	}))
	if err != nil {
		t.Fatalf("Failed to get game state: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "extra tile:") {
		t.Errorf("Expected the rendered board, got:\n%s", text)
	}
	if !strings.Contains(text, "Player 1 to insert") {
		t.Errorf("Expected the insertion prompt, got:\n%s", text)
	}
}

func TestClient_FullTurn(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)
	ctx := context.Background()
	sessionArg := map[string]interface{}{"session_id": id}

	result, err := c.handleRotate(ctx, callRequest(sessionArg))
	if err != nil || result.IsError {
		t.Fatalf("Failed to rotate: %v %s", err, resultText(t, result))
	}

	result, err = c.handleInsert(ctx, callRequest(map[string]interface{}{
		"session_id": id,
		"direction":  "south",
		"index":      float64(1),
	}))
	if err != nil || result.IsError {
		t.Fatalf("Failed to insert: %v %s", err, resultText(t, result))
	}

	result, err = c.handleReachable(ctx, callRequest(sessionArg))
	if err != nil {
		t.Fatalf("Failed to list reachable positions: %v", err)
	}
	if !strings.Contains(resultText(t, result), "(0,0)") {
		t.Errorf("Expected the player's own corner to be reachable, got:\n%s",
			resultText(t, result))
	}

	// Staying put is a legal move and ends the turn.
	result, err = c.handleMove(ctx, callRequest(map[string]interface{}{
		"session_id": id,
		"row":        float64(0),
		"col":        float64(0),
	}))
	if err != nil || result.IsError {
		t.Fatalf("Failed to move: %v %s", err, resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "Player 2 to insert") {
		t.Errorf("Expected the turn to pass, got:\n%s", resultText(t, result))
	}
}

func TestClient_InsertPhaseViolation(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)
	ctx := context.Background()

	result, err := c.handleMove(ctx, callRequest(map[string]interface{}{
		"session_id": id,
		"row":        float64(0),
		"col":        float64(0),
	}))
	if err != nil {
		t.Fatalf("Handler errors should become tool errors, got %v", err)
	}
	if !result.IsError {
		t.Error("Expected a tool error for moving before inserting")
	}
}

func TestClient_UndoRedo(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)
	ctx := context.Background()
	sessionArg := map[string]interface{}{"session_id": id}

	_, err := c.handleInsert(ctx, callRequest(map[string]interface{}{
		"session_id": id,
		"direction":  "south",
		"index":      float64(1),
	}))
	if err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	result, err := c.handleUndo(ctx, callRequest(sessionArg))
	if err != nil || result.IsError {
		t.Fatalf("Failed to undo: %v %s", err, resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "Player 1 to insert") {
		t.Errorf("Expected the insertion phase back, got:\n%s", resultText(t, result))
	}

	result, err = c.handleRedo(ctx, callRequest(sessionArg))
	if err != nil || result.IsError {
		t.Fatalf("Failed to redo: %v %s", err, resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "Player 1 to move") {
		t.Errorf("Expected the movement phase again, got:\n%s", resultText(t, result))
	}
}

func TestClient_PlayAITurn(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 0)

	result, err := c.handleAITurn(context.Background(), callRequest(map[string]interface{}{
		"session_id": id,
	}))
	if err != nil || result.IsError {
		t.Fatalf("Failed to play AI turn: %v %s", err, resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "AI 2 to insert") {
		t.Errorf("Expected the AI turn to complete, got:\n%s", resultText(t, result))
	}
}

func TestClient_AbandonGame(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)

	result, err := c.handleAbandon(context.Background(), callRequest(map[string]interface{}{
		"session_id": id,
	}))
	if err != nil || result.IsError {
		t.Fatalf("Failed to abandon: %v %s", err, resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "game over, no winner") {
		t.Errorf("Expected the finished board, got:\n%s", resultText(t, result))
	}
}

func TestClient_SessionNotFound(t *testing.T) {
	c := newTestClient(t)

	result, err := c.handleGameState(context.Background(), callRequest(map[string]interface{}{
		"session_id": "missing",
	}))
	if err != nil {
		t.Fatalf("Handler errors should become tool errors, got %v", err)
	}
	if !result.IsError {
		t.Error("Expected a tool error for a missing session")
	}
}

func TestClient_GameInstructions(t *testing.T) {
	c := NewClient("http://unused")
	result, err := c.handleGameInstructions(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Failed to get instructions: %v", err)
	}
	text := resultText(t, result)
	for _, want := range []string{"TURN PROTOCOL", "insert_tile", "reverse"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected instructions to mention %q", want)
		}
	}
}

func TestClient_ErrorPayloadSurfaced(t *testing.T) {
	c := newTestClient(t)
	id := createTestSession(t, c, 2, 2)

	result, err := c.handleInsert(context.Background(), callRequest(map[string]interface{}{
		"session_id": id,
		"direction":  "sideways",
		"index":      float64(1),
	}))
	if err != nil {
		t.Fatalf("Handler errors should become tool errors, got %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected a tool error for a bad direction")
	}
	if !strings.Contains(resultText(t, result), "sideways") {
		t.Errorf("Expected the API error message to surface, got:\n%s", resultText(t, result))
	}
}

// The error decoder must tolerate non-JSON bodies.
func TestClient_APICallErrorShapes(t *testing.T) {
	c := newTestClient(t)

	var out json.RawMessage
	err := c.apiCall("GET", "/api/sessions/missing", nil, &out)
	if err == nil {
		t.Fatal("Expected an error for a missing session")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected the decoded error message, got %v", err)
	}
}
