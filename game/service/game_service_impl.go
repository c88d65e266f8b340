package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/minesofgo/minesweeper/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions    SessionManager
	configs     ConfigManager
	leaderboard LeaderboardManager
	mu          sync.RWMutex
}

// NewGameService creates a new game service instance. The leaderboard may be
// nil; wins then simply go unranked.
func NewGameService(sessions SessionManager, configs ConfigManager, leaderboard LeaderboardManager) GameService {
	return &gameServiceImpl{
		sessions:    sessions,
		configs:     configs,
		leaderboard: leaderboard,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName, playerName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", playerName, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	info := s.buildSessionInfo(session)
	info.ConfigName = configID
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.buildSessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.buildSessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Open reveals a cell, cascading over empty ground
func (s *gameServiceImpl) Open(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error) {
	return s.play(ctx, sessionID, func(sess *Session) (*engine.PlayOutcome, error) {
		return sess.Engine.Open(pos)
	})
}

// Chord opens the remaining neighbors of a satisfied numbered cell
func (s *gameServiceImpl) Chord(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error) {
	return s.play(ctx, sessionID, func(sess *Session) (*engine.PlayOutcome, error) {
		return sess.Engine.Chord(pos)
	})
}

// OpenChord opens a cell and immediately chords it
func (s *gameServiceImpl) OpenChord(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error) {
	return s.play(ctx, sessionID, func(sess *Session) (*engine.PlayOutcome, error) {
		return sess.Engine.OpenChord(pos)
	})
}

// ToggleFlag cycles a cell's mark
func (s *gameServiceImpl) ToggleFlag(ctx context.Context, sessionID string, pos engine.Position) (*PlayResult, error) {
	return s.play(ctx, sessionID, func(sess *Session) (*engine.PlayOutcome, error) {
		return sess.Engine.ToggleFlag(pos)
	})
}

// play runs a single engine operation for a session and folds the outcome
// into a transport-friendly result
func (s *gameServiceImpl) play(ctx context.Context, sessionID string, op func(*Session) (*engine.PlayOutcome, error)) (*PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	wasTerminal := sess.Engine.Phase().Terminal()

	outcome, err := op(sess)
	if err != nil {
		return nil, err
	}

	state := sess.Engine.GetState()
	result := &PlayResult{
		Success:        outcome.Changed,
		Action:         outcome.Action,
		Position:       outcome.Position,
		GameState:      state,
		Message:        state.Message,
		Events:         s.extractPlayEvents(outcome),
		RevealedCells:  outcome.Revealed,
		FlagState:      outcome.FlagState,
		Phase:          state.Phase,
		MinesRemaining: sess.Engine.MinesRemaining(),
		ElapsedSeconds: sess.Engine.ElapsedTime(),
	}

	// A fresh win goes on the leaderboard.
	if !wasTerminal && state.Phase == engine.PhaseWon {
		if rank, ok := s.recordWin(sess); ok {
			result.LeaderboardRank = rank
		}
	}

	// Auto-save session after the play
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after play: %v\n", sessionID, err)
	}

	return result, nil
}

// Pause stops the clock for a session
func (s *gameServiceImpl) Pause(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	if !sess.Engine.Pause() {
		return nil, fmt.Errorf("game is not running")
	}

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after pause: %v\n", sessionID, err)
	}

	return sess.Engine.GetState(), nil
}

// Resume restarts the clock for a paused session
func (s *gameServiceImpl) Resume(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	if !sess.Engine.Resume() {
		return nil, fmt.Errorf("game is not paused")
	}

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after resume: %v\n", sessionID, err)
	}

	return sess.Engine.GetState(), nil
}

// NewGame discards a session's board and deals a fresh one with the same
// configuration
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state, err := sess.Engine.NewGame()
	if err != nil {
		return nil, fmt.Errorf("failed to start new game: %w", err)
	}

	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after new game: %v\n", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetPlayHistory returns paginated play history
func (s *gameServiceImpl) GetPlayHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetPlayHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > engine.MaxHistoryPageSize {
		opts.Limit = engine.MaxHistoryPageSize
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of plays
	var plays []engine.PlayHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			plays = append(plays, history[i])
		}
	} else {
		// Normal chronological order
		if start < total {
			plays = history[start:end]
		}
	}

	// Ensure plays is not nil
	if plays == nil {
		plays = []engine.PlayHistoryEntry{}
	}

	return &HistoryResponse{
		Plays:       plays,
		Stats:       sess.Engine.GetPlayStats(),
		TotalPlays:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available board configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific board configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a board configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// GetLeaderboard returns the rankings for a difficulty
func (s *gameServiceImpl) GetLeaderboard(ctx context.Context, difficulty string) ([]ScoreEntry, error) {
	if s.leaderboard == nil {
		return []ScoreEntry{}, nil
	}
	return s.leaderboard.List(difficulty)
}

// recordWin submits a winning game to the leaderboard. Only the built-in
// difficulties are ranked; custom boards aren't comparable.
func (s *gameServiceImpl) recordWin(sess *Session) (int, bool) {
	if s.leaderboard == nil {
		return 0, false
	}

	difficulty := strings.ToLower(sess.Config.Name)
	if _, ok := engine.ConfigForDifficulty(difficulty); !ok {
		return 0, false
	}

	playerName := sess.PlayerName
	if playerName == "" {
		playerName = "anonymous"
	}

	stats := sess.Engine.GetPlayStats()
	return s.leaderboard.Record(difficulty, ScoreEntry{
		PlayerName:  playerName,
		TimeSeconds: sess.Engine.ElapsedTime(),
		Clicks:      stats.Clicks,
		Efficiency:  stats.Efficiency,
		AchievedAt:  time.Now(),
	})
}

// buildSessionInfo projects a session for transport
func (s *gameServiceImpl) buildSessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		PlayerName:     sess.PlayerName,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.Engine.GetState(),
		GameConfig:     sess.Config,
		MinesRemaining: sess.Engine.MinesRemaining(),
		ElapsedSeconds: sess.Engine.ElapsedTime(),
	}
}

// extractPlayEvents generates events from a play outcome
func (s *gameServiceImpl) extractPlayEvents(outcome *engine.PlayOutcome) []GameEvent {
	events := []GameEvent{}
	now := time.Now()

	if !outcome.Changed {
		return events
	}

	switch outcome.Action {
	case engine.ActionFlag:
		eventType := "flag"
		message := fmt.Sprintf("Flagged (%d,%d)", outcome.Position.X, outcome.Position.Y)
		switch outcome.FlagState {
		case engine.Questioned:
			eventType = "question"
			message = fmt.Sprintf("Marked (%d,%d) as uncertain", outcome.Position.X, outcome.Position.Y)
		case engine.Hidden:
			eventType = "unmark"
			message = fmt.Sprintf("Cleared mark at (%d,%d)", outcome.Position.X, outcome.Position.Y)
		}
		events = append(events, GameEvent{
			Type:      eventType,
			Message:   message,
			Timestamp: now,
			Position:  outcome.Position,
		})
		return events

	default:
		if len(outcome.Revealed) > 0 {
			eventType := "reveal"
			message := fmt.Sprintf("Revealed (%d,%d)", outcome.Position.X, outcome.Position.Y)
			if len(outcome.Revealed) > 1 {
				eventType = "cascade"
				message = fmt.Sprintf("Revealed %d cells from (%d,%d)", len(outcome.Revealed), outcome.Position.X, outcome.Position.Y)
			}
			events = append(events, GameEvent{
				Type:      eventType,
				Message:   message,
				Timestamp: now,
				Position:  outcome.Position,
			})
		}
	}

	if outcome.Detonated != nil {
		events = append(events, GameEvent{
			Type:      "explosion",
			Message:   fmt.Sprintf("Mine detonated at (%d,%d)", outcome.Detonated.X, outcome.Detonated.Y),
			Timestamp: now,
			Position:  *outcome.Detonated,
		})
	}

	if outcome.Phase == engine.PhaseWon {
		events = append(events, GameEvent{
			Type:      "victory",
			Message:   "Board cleared!",
			Timestamp: now,
		})
	}

	return events
}
