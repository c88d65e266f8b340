package engine

// Content represents what a cell holds once the board is populated
type Content string

const (
	ContentEmpty Content = "empty"
	ContentMine  Content = "mine"
)

// Visibility is the exclusive display state of a cell. A cell is exactly one
// of these at a time; Revealed cells are never Flagged or Questioned.
type Visibility string

const (
	Hidden     Visibility = "hidden"
	Revealed   Visibility = "revealed"
	Flagged    Visibility = "flagged"
	Questioned Visibility = "questioned"
)

// Phase is the top-level lifecycle state of a game
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
)

// Validation constants
const (
	MinBoardDim        = 1
	MaxBoardDim        = 64
	MinMineCount       = 1
	MaxHistoryPageSize = 100
)

// Terminal reports whether the phase is an end-of-game state
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Cell represents a single board cell
type Cell struct {
	Content    Content    `json:"content"`
	HintCount  int        `json:"hint_count"`
	Visibility Visibility `json:"visibility"`
}

// IsMine reports whether the cell contains a mine
func (c Cell) IsMine() bool {
	return c.Content == ContentMine
}

// Position represents x,y coordinates (x = column, y = row)
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameConfig represents a board configuration, loadable from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	MineCount   int    `json:"mine_count"`
}

// CellView is the pull-based projection of a cell for rendering layers.
// HintCount and Mine are meaningful only when Visibility is Revealed.
type CellView struct {
	Visibility Visibility `json:"visibility"`
	HintCount  int        `json:"hint_count,omitempty"`
	Mine       bool       `json:"mine,omitempty"`
}

// PlayAction identifies the kind of play recorded in the history
type PlayAction string

const (
	ActionOpen      PlayAction = "open"
	ActionChord     PlayAction = "chord"
	ActionOpenChord PlayAction = "open_chord"
	ActionFlag      PlayAction = "flag"
)

// PlayHistoryEntry represents a single play in the game history
type PlayHistoryEntry struct {
	Action     PlayAction `json:"action"`
	Position   Position   `json:"position"`
	Revealed   int        `json:"revealed"`
	Detonated  bool       `json:"detonated"`
	FlagState  Visibility `json:"flag_state,omitempty"`
	Timestamp  int64      `json:"timestamp"`
	PlayNumber int        `json:"play_number"`
}

// PlayOutcome summarizes the effect of a single engine operation
type PlayOutcome struct {
	Action    PlayAction `json:"action"`
	Position  Position   `json:"position"`
	Changed   bool       `json:"changed"`
	Revealed  []Position `json:"revealed,omitempty"`
	Detonated *Position  `json:"detonated,omitempty"`
	FlagState Visibility `json:"flag_state,omitempty"`
	Phase     Phase      `json:"phase"`
}

// GameState represents the complete game state
type GameState struct {
	Board         *Board             `json:"board"`
	Phase         Phase              `json:"phase"`
	RevealedCount int                `json:"revealed_count"`
	FlagCount     int                `json:"flag_count"`
	DetonatedAt   *Position          `json:"detonated_at,omitempty"`
	Paused        bool               `json:"paused"`
	StartedAtUnix int64              `json:"started_at_unix,omitempty"`
	ElapsedBanked float64            `json:"elapsed_banked"`
	Message       string             `json:"message"`
	ConfigName    string             `json:"config_name"`
	PlayHistory   []PlayHistoryEntry `json:"play_history"`
	TotalPlays    int                `json:"total_plays"`
}

// PlayStats aggregates per-action counts from the play history
type PlayStats struct {
	Clicks     int     `json:"clicks"`
	Reveals    int     `json:"reveals"`
	Chords     int     `json:"chords"`
	Flags      int     `json:"flags"`
	Efficiency float64 `json:"efficiency"`
}
