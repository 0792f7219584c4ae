package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gmarchal/labyrinth/console"
	"github.com/gmarchal/labyrinth/game/service"
)

// Client is a thin MCP client that proxies to the REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API.
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools.
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Labyrinth",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Labyrinth - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Collect your objectives in order by shifting the maze and walking its
corridors, then return to your start corner to win.

TURN PROTOCOL (strict, per player):
1. Optionally rotate the extra tile (rotate_tile, any number of times).
2. Insert the extra tile into a mobile row/column (insert_tile) - exactly once.
3. Move along connected corridors (move_player) - staying put is allowed.

AVAILABLE TOOLS:
- create_session: Start a new game (2-4 players, human and AI seats)
- list_sessions / get_session: Inspect active games
- game_state: Board rendering plus turn and player status
- rotate_tile: Rotate the held tile 90 degrees clockwise
- insert_tile: Shift a row/column (direction north/south/east/west, index 1/3/5)
- move_player: Move the acting player to a reachable position
- reachable_positions: List where the acting player can go right now
- undo / redo: Rewind or replay turn actions
- play_ai_turn: Let the acting AI seat take its whole turn
- abandon_game: Finish without a winner
- game_instructions: Full rules

The insertion cannot exactly reverse the previous one, and the inserted
tile shifts any player standing on that line (wrapping at the edges).`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools.
func (c *Client) registerTools() {
	sessionProp := map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"player_count": map[string]interface{}{
					"type":        "integer",
					"description": "Total number of players (2-4)",
				},
				"human_count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of human seats (0 to player_count); the rest are AI",
				},
			},
			Required: []string{"player_count"},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleGetSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board and turn state",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "rotate_tile",
		Description: "Rotate the extra tile 90 degrees clockwise (before inserting)",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleRotate)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "insert_tile",
		Description: "Insert the extra tile, shifting a row or column",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"north", "south", "east", "west"},
					"description": "Push direction",
				},
				"index": map[string]interface{}{
					"type":        "integer",
					"enum":        []int{1, 3, 5},
					"description": "Row/column to shift",
				},
			},
			Required: []string{"session_id", "direction", "index"},
		},
	}, c.handleInsert)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_player",
		Description: "Move the acting player to a reachable position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProp,
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Destination row (0-6)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Destination column (0-6)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reachable_positions",
		Description: "List every position the acting player can move to",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleReachable)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "undo",
		Description: "Undo the last turn action",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleUndo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "redo",
		Description: "Redo the last undone turn action",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleRedo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_ai_turn",
		Description: "Let the acting AI player take its whole turn",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleAITurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "abandon_game",
		Description: "Finish the game without a winner",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{"session_id": sessionProp},
			Required:   []string{"session_id"},
		},
	}, c.handleAbandon)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving.
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

func (c *Client) args(request mcp.CallToolRequest) map[string]interface{} {
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		return args
	}
	return map[string]interface{}{}
}

// actionText renders an action outcome: its message plus the fresh board.
func actionText(result *service.ActionResult) string {
	text := result.Message
	if result.GameState != nil {
		text += "\n\n" + console.RenderSnapshot(result.GameState)
	}
	return text
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := c.args(request)
	playerCount, _ := args["player_count"].(float64)
	humanCount, _ := args["human_count"].(float64)

	var info service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", map[string]int{
		"player_count": int(playerCount),
		"human_count":  int(humanCount),
	}, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nPlayers: %d (%d human)\n",
		info.ID, info.PlayerCount, info.HumanCount)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}
	if err := c.apiCall("GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (%d players, %s, created %s)\n",
			s.ID, s.PlayerCount, s.GameState, s.CreatedAt.Format("15:04:05"))
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var info service.SessionInfo
	if err := c.apiCall("GET", "/api/sessions/"+sessionID, nil, &info); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Session: %s\nPlayers: %d (%d human)\nState: %s\nCreated: %s\nLast accessed: %s\n",
		info.ID, info.PlayerCount, info.HumanCount, info.GameState,
		info.CreatedAt.Format(time.RFC3339), info.LastAccessedAt.Format(time.RFC3339))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var snap service.GameSnapshot
	if err := c.apiCall("GET", "/api/sessions/"+sessionID+"/state", nil, &snap); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(console.RenderSnapshot(&snap)), nil
}

func (c *Client) handleRotate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/rotate", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleInsert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := c.args(request)
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	index, _ := args["index"].(float64)

	var result service.ActionResult
	err := c.apiCall("POST", "/api/sessions/"+sessionID+"/insert", map[string]interface{}{
		"direction": direction,
		"index":     int(index),
	}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := c.args(request)
	sessionID, _ := args["session_id"].(string)
	row, _ := args["row"].(float64)
	col, _ := args["col"].(float64)

	var result service.ActionResult
	err := c.apiCall("POST", "/api/sessions/"+sessionID+"/move", map[string]int{
		"row": int(row),
		"col": int(col),
	}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleReachable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var response struct {
		Count     int `json:"count"`
		Positions []struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"positions"`
	}
	if err := c.apiCall("GET", "/api/sessions/"+sessionID+"/reachable", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("Nothing reachable: insert a tile first."), nil
	}
	result := fmt.Sprintf("Reachable positions (%d):", response.Count)
	for _, pos := range response.Positions {
		result += fmt.Sprintf(" (%d,%d)", pos.Row, pos.Col)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/undo", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleRedo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/redo", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleAITurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/ai-turn", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleAbandon(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := c.args(request)["session_id"].(string)

	var result service.ActionResult
	if err := c.apiCall("POST", "/api/sessions/"+sessionID+"/abandon", nil, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(actionText(&result)), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Labyrinth - Complete Instructions

GAME OBJECTIVE:
Each player holds an ordered list of objectives. Reach the tile carrying your
current objective to collect it; objectives must be collected in order. After
collecting all of them, return to your start corner to win.

THE BOARD:
A 7x7 grid of corridor tiles. Tiles on even rows AND even columns are fixed;
rows/columns 1, 3 and 5 are mobile. One extra tile is held off the board.

TILE SHAPES:
- I: straight corridor (two opposite openings)
- L: corner corridor (two adjacent openings)
- T: junction (three openings)

TURN PROTOCOL (strict two-phase, per player):
1. Optionally rotate the extra tile any number of times (rotate_tile).
   Objective tiles never rotate; their artwork stays upright.
2. Insert the extra tile exactly once (insert_tile): pick a direction and a
   mobile index (1, 3, 5). The whole line shifts one cell; the tile pushed
   off the far edge becomes the new extra tile. Players standing on the line
   are carried along, wrapping at the edges. The insertion may not exactly
   reverse the previous one.
3. Move exactly once (move_player): walk along connected corridors to any
   reachable position (staying put is allowed). Corridors connect only when
   both tiles open toward each other.

UNDO/REDO:
insert and move are undoable (undo/redo). Rotation is free and not recorded.

STRATEGY HINTS:
- reachable_positions shows exactly where you can go; check it after inserting.
- Rotating the extra tile before inserting often opens the corridor you need.
- Watch the opponents' progress counters in game_state.`
	return mcp.NewToolResultText(instructions), nil
}
