package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	NewGame() (*GameState, error)
	Phase() Phase
	MinesRemaining() int
	ElapsedTime() float64

	// Play operations
	Open(pos Position) (*PlayOutcome, error)
	Chord(pos Position) (*PlayOutcome, error)
	OpenChord(pos Position) (*PlayOutcome, error)
	ToggleFlag(pos Position) (*PlayOutcome, error)

	// Timer control
	Pause() bool
	Resume() bool

	// Views
	CellView(pos Position) (CellView, error)

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetPlayHistory() []PlayHistoryEntry
	GetPlayStats() PlayStats
}

// GameEngine implements the Engine interface
type GameEngine struct {
	state  *GameState
	config *GameConfig
	rng    *rand.Rand
	now    func() time.Time
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	return NewEngineWithRand(config, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand creates a new game engine with an explicit random source,
// used for deterministic mine layouts in tests and replays
func NewEngineWithRand(config *GameConfig, rng *rand.Rand) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config: config,
		rng:    rng,
		now:    time.Now,
	}
	state, err := initGameState(config)
	if err != nil {
		return nil, err
	}
	e.state = state
	return e, nil
}

// initGameState builds a fresh, unpopulated state for the configuration
func initGameState(config *GameConfig) (*GameState, error) {
	board, err := NewBoard(config.Width, config.Height, config.MineCount)
	if err != nil {
		return nil, err
	}
	return &GameState{
		Board:       board,
		Phase:       PhaseNotStarted,
		Message:     fmt.Sprintf("%dx%d board, %d mines. Open a cell to begin.", config.Width, config.Height, config.MineCount),
		ConfigName:  config.Name,
		PlayHistory: []PlayHistoryEntry{},
	}, nil
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading)
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.Board == nil {
		return fmt.Errorf("state board cannot be nil")
	}
	e.state = state
	return nil
}

// NewGame discards the current board and starts over with the same
// configuration. The old state is replaced wholesale, never reset in place.
func (e *GameEngine) NewGame() (*GameState, error) {
	state, err := initGameState(e.config)
	if err != nil {
		return nil, err
	}
	e.state = state
	return e.state, nil
}

// Phase returns the current lifecycle phase
func (e *GameEngine) Phase() Phase {
	return e.state.Phase
}

// MinesRemaining returns mine count minus flag count. Goes negative when the
// player over-flags; display as-is.
func (e *GameEngine) MinesRemaining() int {
	return e.state.Board.MineCount - e.state.FlagCount
}

// ElapsedTime returns the seconds the game has been in progress, excluding
// paused stretches
func (e *GameEngine) ElapsedTime() float64 {
	s := e.state
	elapsed := s.ElapsedBanked
	if s.Phase == PhaseInProgress && !s.Paused && s.StartedAtUnix > 0 {
		elapsed += e.now().Sub(time.Unix(0, s.StartedAtUnix)).Seconds()
	}
	return elapsed
}

// Open reveals the cell at pos, placing mines first if this is the opening
// play. Flagged and questioned cells are a silent no-op, as is any play after
// the game has ended.
func (e *GameEngine) Open(pos Position) (*PlayOutcome, error) {
	return e.openAs(pos, ActionOpen)
}

func (e *GameEngine) openAs(pos Position, action PlayAction) (*PlayOutcome, error) {
	s := e.state
	if !s.Board.InBounds(pos) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d board",
			ErrOutOfBounds, pos.X, pos.Y, s.Board.Width, s.Board.Height)
	}

	outcome := &PlayOutcome{Action: action, Position: pos, Phase: s.Phase}
	if s.Phase.Terminal() || s.Paused {
		return outcome, nil
	}

	if s.Phase == PhaseNotStarted {
		if err := e.startGame(pos); err != nil {
			return nil, err
		}
		outcome.Phase = s.Phase
	}

	cell := s.Board.Cells[pos.Y][pos.X]
	if cell.Visibility == Flagged || cell.Visibility == Questioned {
		return outcome, nil
	}

	result := s.Board.reveal(pos)
	e.applyReveal(outcome, result)
	e.recordPlay(action, pos, outcome)
	return outcome, nil
}

// Chord opens every remaining neighbor of a revealed numbered cell whose
// flagged-neighbor count matches its hint. A wrong flag detonates exactly as
// a direct open would.
func (e *GameEngine) Chord(pos Position) (*PlayOutcome, error) {
	s := e.state
	if !s.Board.InBounds(pos) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d board",
			ErrOutOfBounds, pos.X, pos.Y, s.Board.Width, s.Board.Height)
	}

	outcome := &PlayOutcome{Action: ActionChord, Position: pos, Phase: s.Phase}
	if s.Phase != PhaseInProgress || s.Paused {
		return outcome, nil
	}

	result := s.Board.chord(pos)
	e.applyReveal(outcome, result)
	e.recordPlay(ActionChord, pos, outcome)
	return outcome, nil
}

// OpenChord performs an open followed by a chord at the same coordinate, the
// "left click chords" play style
func (e *GameEngine) OpenChord(pos Position) (*PlayOutcome, error) {
	historyLen := len(e.state.PlayHistory)
	outcome, err := e.openAs(pos, ActionOpenChord)
	if err != nil {
		return nil, err
	}
	if e.state.Phase != PhaseInProgress || e.state.Paused {
		return outcome, nil
	}

	result := e.state.Board.chord(pos)
	e.applyReveal(outcome, result)
	if result.changed() {
		if len(e.state.PlayHistory) > historyLen {
			// The open already logged this play; fold the chord reveals in.
			last := &e.state.PlayHistory[len(e.state.PlayHistory)-1]
			last.Revealed = len(outcome.Revealed)
			last.Detonated = outcome.Detonated != nil
		} else {
			e.recordPlay(ActionOpenChord, pos, outcome)
		}
	}
	return outcome, nil
}

// ToggleFlag cycles the cell's mark Hidden -> Flagged -> Questioned ->
// Hidden. Legal only while in progress and only on unrevealed cells.
func (e *GameEngine) ToggleFlag(pos Position) (*PlayOutcome, error) {
	s := e.state
	if !s.Board.InBounds(pos) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d board",
			ErrOutOfBounds, pos.X, pos.Y, s.Board.Width, s.Board.Height)
	}

	outcome := &PlayOutcome{Action: ActionFlag, Position: pos, Phase: s.Phase}
	if s.Phase != PhaseInProgress || s.Paused {
		return outcome, nil
	}

	cell := s.Board.Cells[pos.Y][pos.X]
	switch cell.Visibility {
	case Hidden:
		s.Board.Cells[pos.Y][pos.X].Visibility = Flagged
		s.FlagCount++
	case Flagged:
		s.Board.Cells[pos.Y][pos.X].Visibility = Questioned
		s.FlagCount--
	case Questioned:
		s.Board.Cells[pos.Y][pos.X].Visibility = Hidden
	default:
		// Revealed cells cannot be marked
		return outcome, nil
	}

	outcome.Changed = true
	outcome.FlagState = s.Board.Cells[pos.Y][pos.X].Visibility
	s.Message = fmt.Sprintf("%d mines remaining", e.MinesRemaining())
	e.recordPlay(ActionFlag, pos, outcome)
	return outcome, nil
}

// Pause stops elapsed-time accumulation. Play operations are no-ops while
// paused. Returns false when the game is not in progress.
func (e *GameEngine) Pause() bool {
	s := e.state
	if s.Phase != PhaseInProgress || s.Paused {
		return false
	}
	s.ElapsedBanked += e.now().Sub(time.Unix(0, s.StartedAtUnix)).Seconds()
	s.StartedAtUnix = 0
	s.Paused = true
	return true
}

// Resume restarts elapsed-time accumulation after a pause
func (e *GameEngine) Resume() bool {
	s := e.state
	if s.Phase != PhaseInProgress || !s.Paused {
		return false
	}
	s.StartedAtUnix = e.now().UnixNano()
	s.Paused = false
	return true
}

// CellView returns the pull-based projection of the cell at pos
func (e *GameEngine) CellView(pos Position) (CellView, error) {
	return e.state.Board.View(pos)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and starts a fresh game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}
	state, err := initGameState(config)
	if err != nil {
		return err
	}
	e.config = config
	e.state = state
	return nil
}

// GetPlayHistory returns the plays made in the current game
func (e *GameEngine) GetPlayHistory() []PlayHistoryEntry {
	return e.state.PlayHistory
}

// GetPlayStats aggregates click counts and efficiency from the history
func (e *GameEngine) GetPlayStats() PlayStats {
	stats := PlayStats{}
	for _, entry := range e.state.PlayHistory {
		stats.Clicks++
		switch entry.Action {
		case ActionOpen, ActionOpenChord:
			stats.Reveals++
		case ActionChord:
			stats.Chords++
		case ActionFlag:
			stats.Flags++
		}
		if entry.Action == ActionOpenChord {
			stats.Chords++
		}
	}
	worked := e.state.RevealedCount + e.state.FlagCount
	if worked > 0 && stats.Clicks > 0 {
		stats.Efficiency = (1.0 - float64(stats.Clicks)/float64(worked)) * 100.0
	}
	return stats
}

// startGame transitions NotStarted -> InProgress: mines go in with the
// clicked neighborhood excluded and the clock starts
func (e *GameEngine) startGame(clicked Position) error {
	s := e.state
	if s.Board.Populated {
		return fmt.Errorf("board already populated")
	}
	if err := s.Board.PlaceMines(e.rng, clicked); err != nil {
		return err
	}
	s.Phase = PhaseInProgress
	s.StartedAtUnix = e.now().UnixNano()
	s.Message = "Game on"
	return nil
}

// applyReveal folds a board-level reveal outcome into the game state,
// adjudicating loss and win
func (e *GameEngine) applyReveal(outcome *PlayOutcome, result RevealOutcome) {
	s := e.state
	if !result.changed() {
		return
	}

	outcome.Changed = true
	outcome.Revealed = append(outcome.Revealed, result.Revealed...)
	s.RevealedCount += len(result.Revealed)

	if result.Detonated != nil {
		outcome.Detonated = result.Detonated
		s.DetonatedAt = result.Detonated
		s.Phase = PhaseLost
		s.Message = fmt.Sprintf("Mine detonated at (%d,%d)", result.Detonated.X, result.Detonated.Y)
		e.revealRemainingMines()
		e.stopTimer()
	} else if s.RevealedCount == s.Board.SafeCellCount() {
		s.Phase = PhaseWon
		s.Message = fmt.Sprintf("Cleared in %.2f seconds", e.ElapsedTime())
		e.flagAllMines()
		e.stopTimer()
	}
	outcome.Phase = s.Phase
}

// revealRemainingMines shows every hidden mine after a loss. Display only:
// these do not count toward RevealedCount. Flags stay put so misflags can be
// rendered as such.
func (e *GameEngine) revealRemainingMines() {
	b := e.state.Board
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			cell := &b.Cells[y][x]
			if cell.IsMine() && (cell.Visibility == Hidden || cell.Visibility == Questioned) {
				cell.Visibility = Revealed
			}
		}
	}
}

// flagAllMines marks every unflagged mine after a win
func (e *GameEngine) flagAllMines() {
	b := e.state.Board
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			cell := &b.Cells[y][x]
			if cell.IsMine() && cell.Visibility != Flagged {
				cell.Visibility = Flagged
				e.state.FlagCount++
			}
		}
	}
}

// stopTimer banks the elapsed time at a terminal transition
func (e *GameEngine) stopTimer() {
	s := e.state
	if !s.Paused && s.StartedAtUnix > 0 {
		s.ElapsedBanked += e.now().Sub(time.Unix(0, s.StartedAtUnix)).Seconds()
	}
	s.StartedAtUnix = 0
	s.Paused = false
}

// recordPlay appends an entry to the play history when the play changed
// something. Silent no-ops are not history.
func (e *GameEngine) recordPlay(action PlayAction, pos Position, outcome *PlayOutcome) {
	if !outcome.Changed {
		return
	}
	s := e.state
	s.TotalPlays++
	s.PlayHistory = append(s.PlayHistory, PlayHistoryEntry{
		Action:     action,
		Position:   pos,
		Revealed:   len(outcome.Revealed),
		Detonated:  outcome.Detonated != nil,
		FlagState:  outcome.FlagState,
		Timestamp:  e.now().Unix(),
		PlayNumber: s.TotalPlays,
	})
}
