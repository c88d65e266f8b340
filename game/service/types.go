package service

import (
	"time"

	"github.com/minesofgo/minesweeper/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	PlayerName     string             `json:"player_name,omitempty"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
	MinesRemaining int                `json:"mines_remaining"`
	ElapsedSeconds float64            `json:"elapsed_seconds"`
}

// PlayResult contains the result of a play operation
type PlayResult struct {
	Success        bool              `json:"success"`
	Action         engine.PlayAction `json:"action"`
	Position       engine.Position   `json:"position"`
	GameState      *engine.GameState `json:"game_state"`
	Message        string            `json:"message"`
	Events         []GameEvent       `json:"events,omitempty"`
	RevealedCells  []engine.Position `json:"revealed_cells,omitempty"`
	FlagState      engine.Visibility `json:"flag_state,omitempty"`
	Phase          engine.Phase      `json:"phase"`
	MinesRemaining int               `json:"mines_remaining"`
	ElapsedSeconds float64           `json:"elapsed_seconds"`

	// Set when a win made the leaderboard, 1-based.
	LeaderboardRank int `json:"leaderboard_rank,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"` // "reveal", "cascade", "flag", "question", "unmark", "explosion", "victory", "new_game"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures play history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated play history
type HistoryResponse struct {
	Plays       []engine.PlayHistoryEntry `json:"plays"`
	Stats       engine.PlayStats          `json:"stats"`
	TotalPlays  int                       `json:"total_plays"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a board configuration
type ConfigInfo struct {
	Filename    string `json:"filename,omitempty"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MineCount   int    `json:"mine_count"`
	BuiltIn     bool   `json:"built_in,omitempty"`
}

// ScoreEntry is a single leaderboard ranking
type ScoreEntry struct {
	PlayerName  string    `json:"player_name"`
	TimeSeconds float64   `json:"time_seconds"`
	Clicks      int       `json:"clicks"`
	Efficiency  float64   `json:"efficiency"`
	AchievedAt  time.Time `json:"achieved_at"`
}
