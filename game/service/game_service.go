package service

import (
	"context"
	"time"

	"github.com/minesofgo/minesweeper/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName, playerName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Play Operations
	Open(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error)
	Chord(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error)
	OpenChord(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error)
	ToggleFlag(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error)

	// Timer and lifecycle
	Pause(ctx context.Context, sessionID string) (*engine.GameState, error)
	Resume(ctx context.Context, sessionID string) (*engine.GameState, error)
	NewGame(ctx context.Context, sessionID string) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetPlayHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error

	// Leaderboards
	GetLeaderboard(ctx context.Context, difficulty string) ([]ScoreEntry, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, playerName string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id, playerName string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles board configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// LeaderboardManager records winning games and serves rankings per
// difficulty. Record reports the 1-based rank of the entry, or recorded
// false when the time did not make the board.
type LeaderboardManager interface {
	Record(difficulty string, entry ScoreEntry) (rank int, recorded bool)
	List(difficulty string) ([]ScoreEntry, error)
	Difficulties() []string
}

// Session represents an active game session
type Session struct {
	ID             string
	PlayerName     string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
