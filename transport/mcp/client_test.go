package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/minesofgo/minesweeper/game/engine"
	"github.com/minesofgo/minesweeper/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":    "ab3f",
		"phase": "in_progress",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api/sessions/ab3f", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_apiCall_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "session not found: zzzz"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api/sessions/zzzz", nil, nil)
	if err == nil {
		t.Fatal("Expected error for HTTP 404 response")
	}

	if !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected server error message to pass through, got: %v", err)
	}
}

func TestClient_handleCreateSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["config_id"] != "expert" {
			t.Errorf("Expected config_id 'expert', got %q", body["config_id"])
		}
		if body["player_name"] != "alice" {
			t.Errorf("Expected player_name 'alice', got %q", body["player_name"])
		}

		resp := service.SessionInfo{
			ID:         "c4f2",
			ConfigName: "Expert",
			PlayerName: "alice",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "create_session",
			Arguments: map[string]interface{}{
				"config_id":   "expert",
				"player_name": "alice",
			},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("handleCreateSession failed: %v", err)
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "c4f2") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "alice") {
		t.Errorf("Expected player name in result, got: %s", resultStr.Text)
	}
}

// testBoardState builds a 3x3 board with a mine at (0,0), a revealed 1 at
// (1,1), a flag at (0,1), and a question mark at (0,2).
func testBoardState(t *testing.T, phase engine.Phase) *engine.GameState {
	t.Helper()

	board, err := engine.NewBoard(3, 3, 1)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	board.Populated = true
	board.Cells[0][0].Content = engine.ContentMine
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x <= 1 && y <= 1 && !(x == 0 && y == 0) {
				board.Cells[y][x].HintCount = 1
			}
		}
	}
	board.Cells[1][1].Visibility = engine.Revealed
	board.Cells[1][0].Visibility = engine.Flagged
	board.Cells[2][0].Visibility = engine.Questioned

	return &engine.GameState{
		Board:         board,
		Phase:         phase,
		RevealedCount: 1,
		FlagCount:     1,
		ConfigName:    "Tiny",
	}
}

func TestFormatGameState(t *testing.T) {
	state := testBoardState(t, engine.PhaseInProgress)
	state.Message = "Good luck!"

	result := formatGameState(state)

	expectedFields := []string{
		"Phase: in_progress",
		"Mines left: 0",
		"Revealed: 1/8",
		"Good luck!",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Won(t *testing.T) {
	state := testBoardState(t, engine.PhaseWon)

	result := formatGameState(state)

	if !strings.Contains(result, "🎉 VICTORY!") {
		t.Errorf("Expected '🎉 VICTORY!' in result, got: %s", result)
	}
}

func TestFormatGameState_Lost(t *testing.T) {
	state := testBoardState(t, engine.PhaseLost)

	result := formatGameState(state)

	if !strings.Contains(result, "BOOM") {
		t.Errorf("Expected loss banner in result, got: %s", result)
	}
	// Mines are exposed after a loss
	if !strings.Contains(result, "X") {
		t.Errorf("Expected mine marker after loss, got: %s", result)
	}
}

func TestRenderBoard(t *testing.T) {
	state := testBoardState(t, engine.PhaseInProgress)

	rendered := renderBoard(state)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	// Header plus 3 rows
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), rendered)
	}

	// Row 0: mine stays hidden while the game runs
	if !strings.HasSuffix(lines[1], "---") {
		t.Errorf("Row 0 should be fully hidden, got %q", lines[1])
	}
	// Row 1: flag, revealed 1, hidden
	if !strings.HasSuffix(lines[2], ">1-") {
		t.Errorf("Row 1 should show flag and number, got %q", lines[2])
	}
	// Row 2: question mark then hidden
	if !strings.HasSuffix(lines[3], "?--") {
		t.Errorf("Row 2 should show question mark, got %q", lines[3])
	}
}

func TestCellChar(t *testing.T) {
	tests := []struct {
		name string
		cell engine.Cell
		lost bool
		want string
	}{
		{"hidden", engine.Cell{Visibility: engine.Hidden}, false, "-"},
		{"hidden mine in play", engine.Cell{Content: engine.ContentMine, Visibility: engine.Hidden}, false, "-"},
		{"hidden mine after loss", engine.Cell{Content: engine.ContentMine, Visibility: engine.Hidden}, true, "X"},
		{"flagged", engine.Cell{Visibility: engine.Flagged}, false, ">"},
		{"questioned", engine.Cell{Visibility: engine.Questioned}, false, "?"},
		{"revealed blank", engine.Cell{Visibility: engine.Revealed}, false, " "},
		{"revealed number", engine.Cell{Visibility: engine.Revealed, HintCount: 3}, false, "3"},
		{"detonated mine", engine.Cell{Content: engine.ContentMine, Visibility: engine.Revealed}, true, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cellChar(tt.cell, tt.lost); got != tt.want {
				t.Errorf("cellChar() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPlayResult(t *testing.T) {
	playResult := &service.PlayResult{
		Success:       true,
		Action:        engine.ActionOpen,
		Position:      engine.Position{X: 1, Y: 2},
		RevealedCells: []engine.Position{{X: 1, Y: 2}, {X: 2, Y: 2}},
		GameState:     testBoardState(t, engine.PhaseInProgress),
	}

	result := formatPlayResult(playResult)

	expectedFields := []string{
		"✓ Play applied",
		"open at (1,2): 2 cell(s) revealed",
		"Phase: in_progress",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatPlayResult_FlagAndRank(t *testing.T) {
	playResult := &service.PlayResult{
		Success:         true,
		Action:          engine.ActionFlag,
		Position:        engine.Position{X: 0, Y: 0},
		FlagState:       engine.Flagged,
		GameState:       testBoardState(t, engine.PhaseInProgress),
		LeaderboardRank: 2,
	}

	result := formatPlayResult(playResult)

	if !strings.Contains(result, "Flag at (0,0): flagged") {
		t.Errorf("Expected flag line in result, got: %s", result)
	}
	if !strings.Contains(result, "Leaderboard rank: #2") {
		t.Errorf("Expected leaderboard rank in result, got: %s", result)
	}
}

func TestClient_handleDescribeCell(t *testing.T) {
	state := testBoardState(t, engine.PhaseInProgress)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(state)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	describe := func(x, y int) string {
		t.Helper()
		request := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "describe_cell",
				Arguments: map[string]interface{}{
					"session_id": "ab3f",
					"x":          float64(x),
					"y":          float64(y),
				},
			},
		}
		result, err := client.handleDescribeCell(ctx, request)
		if err != nil {
			t.Fatalf("handleDescribeCell failed: %v", err)
		}
		text, ok := result.Content[0].(mcp.TextContent)
		if !ok {
			t.Fatal("Expected text content in result")
		}
		return text.Text
	}

	revealed := describe(1, 1)
	if !strings.Contains(revealed, "Revealed (1)") || !strings.Contains(revealed, "Can chord: true") {
		t.Errorf("Unexpected description for revealed number: %s", revealed)
	}

	flagged := describe(0, 1)
	if !strings.Contains(flagged, "Flagged") || !strings.Contains(flagged, "Can open: false") {
		t.Errorf("Unexpected description for flagged cell: %s", flagged)
	}

	questioned := describe(0, 2)
	if !strings.Contains(questioned, "Questioned") || !strings.Contains(questioned, "Can open: true") {
		t.Errorf("Unexpected description for questioned cell: %s", questioned)
	}
}

func TestClient_handleDescribeCell_OutOfBounds(t *testing.T) {
	state := testBoardState(t, engine.PhaseInProgress)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(state)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "describe_cell",
			Arguments: map[string]interface{}{
				"session_id": "ab3f",
				"x":          float64(9),
				"y":          float64(9),
			},
		},
	}

	result, err := client.handleDescribeCell(context.Background(), request)
	if err != nil {
		t.Fatalf("handleDescribeCell failed: %v", err)
	}
	if !result.IsError {
		t.Error("Expected error result for out of bounds coordinates")
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Minesweeper - Complete Instructions",
		"GAME OBJECTIVE:",
		"BOARD LEGEND:",
		"PLAYS:",
		"STRATEGY FOR AGENTS:",
		"Count before you flag",
		"Subtract before you open",
		"WINNING:",
		"LOSING:",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestFormatHistory(t *testing.T) {
	history := &service.HistoryResponse{
		Plays: []engine.PlayHistoryEntry{
			{Action: engine.ActionOpen, Position: engine.Position{X: 4, Y: 4}, Revealed: 12, PlayNumber: 1},
			{Action: engine.ActionFlag, Position: engine.Position{X: 0, Y: 0}, FlagState: engine.Flagged, PlayNumber: 2},
			{Action: engine.ActionChord, Position: engine.Position{X: 4, Y: 4}, Revealed: 3, Detonated: true, PlayNumber: 3},
		},
		Stats:      engine.PlayStats{Clicks: 2, Reveals: 15, Chords: 1, Flags: 1, Efficiency: 0.5},
		TotalPlays: 3,
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
	}

	result := formatHistory(history)

	expectedFields := []string{
		"Play History (Page 1/1)",
		"1. open (4,4) revealed 12",
		"2. flag (0,0) -> flagged",
		"3. chord (4,4) revealed 3 💥",
		"2 clicks, 15 reveals, 1 chords, 1 flags, 50% efficient",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
