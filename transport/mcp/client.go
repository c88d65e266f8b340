package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/minesofgo/minesweeper/game/engine"
	"github.com/minesofgo/minesweeper/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
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

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Minesweeper",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Minesweeper - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Reveal every safe cell without detonating a mine. Revealed numbers count the
mines in the 8 surrounding cells.

AVAILABLE TOOLS:
- create_session: Create new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Get current board state
- open: Open a cell - requires intent explanation
- chord: Open the neighbors of a satisfied number - requires intent explanation
- open_chord: Open a cell, then chord it if safe
- toggle_flag: Cycle a hidden cell through flag / question / clear
- pause / resume: Control the game timer
- new_game: Discard the board, keep the configuration
- play_history: View past plays
- list_configs: List available board configurations
- leaderboard: View fastest wins for a preset difficulty
- game_instructions: Get comprehensive game instructions and rules
- describe_cell: Get detailed info about a specific board cell

NOTE: The 'intent' parameter on open/chord tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config and player name",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Config to use: beginner, intermediate, expert, or a saved custom config (optional)",
				},
				"player_name": map[string]interface{}{
					"type":        "string",
					"description": "Player name for leaderboard entries (optional)",
				},
			},
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
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "open",
		Description: "Open a hidden cell. The first open of a game is always safe. Opening a mine loses the game.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the cell to open (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the cell to open (0-based)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this play (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handlePlay("open"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "chord",
		Description: "Chord a revealed numbered cell: when its flag count matches its number, open all unflagged hidden neighbors at once. Misplaced flags detonate.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate of the revealed numbered cell",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate of the revealed numbered cell",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this play (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handlePlay("chord"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "open_chord",
		Description: "Open a cell, then immediately chord it if the revealed number is already satisfied by flags",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate of the cell",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate of the cell",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this play (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handlePlay("open-chord"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "toggle_flag",
		Description: "Cycle a hidden cell: hidden -> flagged -> questioned -> hidden. Flagged cells cannot be opened.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate of the cell",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate of the cell",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handlePlay("flag"))

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pause",
		Description: "Pause the game timer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePause)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "resume",
		Description: "Resume a paused game timer",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleResume)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Discard the current board and start fresh with the same configuration",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNewGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "play_history",
		Description: "Get play history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePlayHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "leaderboard",
		Description: "View fastest wins for a preset difficulty (beginner, intermediate, expert)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"difficulty": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"beginner", "intermediate", "expert"},
					"description": "Preset difficulty to rank",
				},
			},
			Required: []string{"difficulty"},
		},
	}, c.handleLeaderboard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific board cell, including its display character and whether it can be opened, flagged, or chorded.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the cell to describe (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the cell to describe (0-based)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
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

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)
	playerName, _ := args["player_name"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}
	if playerName != "" {
		body["player_name"] = playerName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	if session.PlayerName != "" {
		result += fmt.Sprintf("Player: %s\n", session.PlayerName)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		player := s.PlayerName
		if player == "" {
			player = "anonymous"
		}
		result += fmt.Sprintf("- %s (Config: %s, Player: %s, Created: %s)\n",
			s.ID, s.ConfigName, player, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

// handlePlay builds the tool handler for one of the four coordinate plays
func (c *Client) handlePlay(endpoint string) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.Params.Arguments.(map[string]interface{})
		sessionID, _ := args["session_id"].(string)
		x := int(args["x"].(float64))
		y := int(args["y"].(float64))
		intent, _ := args["intent"].(string)

		// Intent parameter serves as rubber duck debugging - we don't need to process it further
		_ = intent

		body := map[string]int{"x": x, "y": y}

		var result service.PlayResult
		err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/%s", sessionID, endpoint), body, &result)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		response := formatPlayResult(&result)
		return mcp.NewToolResultText(response), nil
	}
}

func (c *Client) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/pause", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Game paused. The timer is stopped until you resume.\n\n" + formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/resume", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Game resumed.\n\n" + formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/new-game", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlayHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		kind := "custom"
		if config.BuiltIn {
			kind = "built-in"
		}
		result += fmt.Sprintf("• %s (%s, %s)\n  %s\n  Board: %dx%d, Mines: %d\n\n",
			config.Name, config.ConfigID, kind, config.Description,
			config.Width, config.Height, config.MineCount)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	difficulty, _ := args["difficulty"].(string)

	var response struct {
		Difficulty string               `json:"difficulty"`
		Entries    []service.ScoreEntry `json:"entries"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/leaderboard/%s", difficulty), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(response.Entries) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No recorded wins for %s yet.", response.Difficulty)), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Leaderboard - %s:\n\n", response.Difficulty))
	for i, entry := range response.Entries {
		b.WriteString(fmt.Sprintf("%d. %s - %.1fs (%d clicks, %.0f%% efficient, %s)\n",
			i+1, entry.PlayerName, entry.TimeSeconds, entry.Clicks,
			entry.Efficiency*100, entry.AchievedAt.Format("2006-01-02")))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Minesweeper - Complete Instructions

GAME OBJECTIVE:
Reveal every cell that does not contain a mine. Opening a mine loses the game.

GAME MECHANICS:
• The first open of a game is always safe; mines are placed afterwards,
  avoiding the clicked cell and its neighbors when the board allows it
• A revealed number counts the mines in the 8 surrounding cells
• Opening a cell with a count of 0 cascades outward, revealing its whole
  zero region plus the numbered border around it
• Flags block opening; questioned cells can still be opened
• The timer starts on the first open and stops when the game ends

BOARD LEGEND:
• - : hidden cell
• > : flagged cell
• ? : questioned cell
• 1-8 : revealed number (mines among neighbors)
• (blank) : revealed cell with no adjacent mines
• X : mine (shown only after a loss)

PLAYS:
• open: reveal a hidden or questioned cell
• toggle_flag: cycle hidden -> flagged -> questioned -> hidden
• chord: on a revealed number whose flag count matches it, open all
  unflagged hidden neighbors at once. If a flag is wrong, the chord
  detonates the mis-covered mine
• open_chord: open, then chord immediately when the revealed number is
  already satisfied

STRATEGY FOR AGENTS:

1. **Start in the middle.** The first open is safe and an interior click has
   the best odds of cascading a large area.

2. **Count before you flag.** A number N with exactly N hidden neighbors means
   every one of them is a mine. Flag them all, then chord neighboring numbers
   that become satisfied.

3. **Subtract before you open.** A number N with N flags among its neighbors
   means every other hidden neighbor is safe. Chord it, or open them one by one.

4. **Use describe_cell when unsure.** It reports a cell's display character,
   its revealed number, and which plays are legal on it.

5. **Track mines remaining.** mines_remaining = total mines - flags placed.
   It goes negative when you have over-flagged, which always means at least
   one flag is wrong.

6. **Never guess while deductions remain.** Exhaust the counting rules above
   across the whole border before taking a probability guess.

WINNING:
All non-mine cells revealed. Remaining hidden mines are flagged automatically
and wins on beginner, intermediate, and expert boards are ranked on the
leaderboard by completion time.

LOSING:
Opening or chording into a mine. The board reveals all mines; start over with
new_game.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Pass player_name at session creation to get named leaderboard entries

Good luck, and mind your step.`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	x := int(args["x"].(float64))
	y := int(args["y"].(float64))

	// Get the current game state to access the board
	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if state.Board == nil {
		return mcp.NewToolResultError("No board available for this session"), nil
	}

	// Check bounds
	if x < 0 || x >= state.Board.Width || y < 0 || y >= state.Board.Height {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Board is %dx%d (x: 0-%d, y: 0-%d)",
			x, y, state.Board.Width, state.Board.Height, state.Board.Width-1, state.Board.Height-1)), nil
	}

	cell := state.Board.Cells[y][x]
	lost := state.Phase == engine.PhaseLost

	var cellChar string
	var cellType string
	var description string
	var openable, flaggable, chordable bool

	switch cell.Visibility {
	case engine.Hidden:
		cellChar = "-"
		cellType = "Hidden"
		openable = !state.Phase.Terminal()
		flaggable = !state.Phase.Terminal()
		description = "Hidden cell - can be opened or flagged"
		if lost && cell.IsMine() {
			cellChar = "X"
			cellType = "Mine (revealed by loss)"
			description = "This cell held a mine, shown because the game is over"
			openable, flaggable = false, false
		}
	case engine.Flagged:
		cellChar = ">"
		cellType = "Flagged"
		flaggable = !state.Phase.Terminal()
		description = "Flagged cell - opening is blocked; toggle_flag moves it to questioned"
	case engine.Questioned:
		cellChar = "?"
		cellType = "Questioned"
		openable = !state.Phase.Terminal()
		flaggable = !state.Phase.Terminal()
		description = "Questioned cell - a reminder mark; can still be opened"
	case engine.Revealed:
		if cell.IsMine() {
			cellChar = "X"
			cellType = "Detonated Mine"
			description = "The mine that ended the game"
		} else if cell.HintCount == 0 {
			cellChar = " "
			cellType = "Revealed (blank)"
			description = "Revealed cell with no adjacent mines"
		} else {
			cellChar = fmt.Sprintf("%d", cell.HintCount)
			cellType = fmt.Sprintf("Revealed (%d)", cell.HintCount)
			chordable = !state.Phase.Terminal()
			description = fmt.Sprintf("Revealed number - %d mine(s) among its 8 neighbors", cell.HintCount)
		}
	}

	result := fmt.Sprintf(`Cell at position (%d, %d):
Character: %s
Type: %s
Can open: %v
Can flag: %v
Can chord: %v
Description: %s`,
		x, y, cellChar, cellType, openable, flaggable, chordable, description)

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	player := session.PlayerName
	if player == "" {
		player = "anonymous"
	}
	return fmt.Sprintf("Session: %s\nConfig: %s\nPlayer: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName, player,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	minesLeft := 0
	safeCells := 0
	if state.Board != nil {
		minesLeft = state.Board.MineCount - state.FlagCount
		safeCells = state.Board.Width*state.Board.Height - state.Board.MineCount
	}

	elapsed := state.ElapsedBanked
	if state.Phase == engine.PhaseInProgress && !state.Paused && state.StartedAtUnix > 0 {
		elapsed += time.Since(time.Unix(0, state.StartedAtUnix)).Seconds()
	}
	result.WriteString(fmt.Sprintf("Phase: %s | Mines left: %d | Revealed: %d/%d | Plays: %d | Time: %.0fs\n",
		state.Phase, minesLeft, state.RevealedCount, safeCells, state.TotalPlays, elapsed))
	if state.Paused {
		result.WriteString("(paused)\n")
	}
	result.WriteString("\n")

	result.WriteString(renderBoard(state))

	switch state.Phase {
	case engine.PhaseWon:
		result.WriteString("\n🎉 VICTORY!")
	case engine.PhaseLost:
		result.WriteString("\n💥 BOOM - game over")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// renderBoard draws the board with a coordinate header. Hidden cells are "-",
// flags ">", question marks "?", revealed numbers as digits, revealed blanks
// as spaces. Mines show as "X" only once the game is lost.
func renderBoard(state *engine.GameState) string {
	if state.Board == nil {
		return "(no board)\n"
	}

	var b strings.Builder
	lost := state.Phase == engine.PhaseLost

	// Column header, tens digit only when the board is wide enough
	b.WriteString("   ")
	for x := 0; x < state.Board.Width; x++ {
		b.WriteString(fmt.Sprintf("%d", x%10))
	}
	b.WriteString("\n")

	for y := 0; y < state.Board.Height; y++ {
		b.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < state.Board.Width; x++ {
			b.WriteString(cellChar(state.Board.Cells[y][x], lost))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func cellChar(cell engine.Cell, lost bool) string {
	switch cell.Visibility {
	case engine.Flagged:
		return ">"
	case engine.Questioned:
		return "?"
	case engine.Revealed:
		if cell.IsMine() {
			return "X"
		}
		if cell.HintCount == 0 {
			return " "
		}
		return fmt.Sprintf("%d", cell.HintCount)
	default:
		if lost && cell.IsMine() {
			return "X"
		}
		return "-"
	}
}

func formatPlayResult(result *service.PlayResult) string {
	response := ""
	if result.Success {
		response = "✓ Play applied\n"
	} else {
		response = "• No change\n"
	}

	switch result.Action {
	case engine.ActionFlag:
		response += fmt.Sprintf("Flag at (%d,%d): %s\n", result.Position.X, result.Position.Y, result.FlagState)
	default:
		response += fmt.Sprintf("%s at (%d,%d): %d cell(s) revealed\n",
			result.Action, result.Position.X, result.Position.Y, len(result.RevealedCells))
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	if result.LeaderboardRank > 0 {
		response += fmt.Sprintf("Leaderboard rank: #%d\n", result.LeaderboardRank)
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Play History (Page %d/%d) - Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalPlays))

	for _, play := range history.Plays {
		detail := ""
		switch play.Action {
		case engine.ActionFlag:
			detail = fmt.Sprintf("-> %s", play.FlagState)
		default:
			detail = fmt.Sprintf("revealed %d", play.Revealed)
			if play.Detonated {
				detail += " 💥"
			}
		}
		b.WriteString(fmt.Sprintf("%d. %s (%d,%d) %s\n",
			play.PlayNumber, play.Action, play.Position.X, play.Position.Y, detail))
	}

	b.WriteString(fmt.Sprintf("\nStats: %d clicks, %d reveals, %d chords, %d flags, %.0f%% efficient\n",
		history.Stats.Clicks, history.Stats.Reveals, history.Stats.Chords,
		history.Stats.Flags, history.Stats.Efficiency*100))

	return b.String()
}
