package leaderboard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/minesofgo/minesweeper/game/engine"
	"github.com/minesofgo/minesweeper/game/service"
)

// MaxEntriesPerBoard caps each difficulty's board. A slower time than the
// current 25th best is not recorded.
const MaxEntriesPerBoard = 25

// Store keeps one ranking per built-in difficulty, ordered by completion
// time ascending. With a file path configured the boards survive restarts.
type Store struct {
	boards   map[string][]service.ScoreEntry
	filePath string
	mu       sync.RWMutex
}

// NewStore creates an in-memory leaderboard store
func NewStore() *Store {
	return &Store{boards: emptyBoards()}
}

// NewFileStore creates a leaderboard store backed by a JSON file. An
// existing file is loaded; a missing one starts the boards empty.
func NewFileStore(filePath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create leaderboard directory: %w", err)
	}

	s := &Store{
		boards:   emptyBoards(),
		filePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read leaderboard file: %w", err)
	}

	var loaded map[string][]service.ScoreEntry
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard file: %w", err)
	}
	for _, difficulty := range engine.Difficulties() {
		if entries, ok := loaded[difficulty]; ok {
			sortAndTrim(entries)
			s.boards[difficulty] = trim(entries)
		}
	}

	return s, nil
}

func emptyBoards() map[string][]service.ScoreEntry {
	boards := make(map[string][]service.ScoreEntry, 3)
	for _, difficulty := range engine.Difficulties() {
		boards[difficulty] = []service.ScoreEntry{}
	}
	return boards
}

// Record submits a winning time. It reports the entry's 1-based rank, or
// recorded false when the difficulty is unknown or the time misses the
// board.
func (s *Store) Record(difficulty string, entry service.ScoreEntry) (int, bool) {
	difficulty = strings.ToLower(difficulty)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.boards[difficulty]
	if !ok {
		return 0, false
	}

	entries = append(entries, entry)
	sortAndTrim(entries)
	entries = trim(entries)
	s.boards[difficulty] = entries

	rank := 0
	for i := range entries {
		if entries[i] == entry {
			rank = i + 1
			break
		}
	}
	if rank == 0 {
		return 0, false
	}

	if s.filePath != "" {
		if err := s.saveLocked(); err != nil {
			fmt.Printf("Warning: Failed to persist leaderboards: %v\n", err)
		}
	}

	return rank, true
}

// List returns the rankings for a difficulty, fastest first
func (s *Store) List(difficulty string) ([]service.ScoreEntry, error) {
	difficulty = strings.ToLower(difficulty)

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.boards[difficulty]
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	result := make([]service.ScoreEntry, len(entries))
	copy(result, entries)
	return result, nil
}

// Difficulties lists the ranked difficulty names
func (s *Store) Difficulties() []string {
	return engine.Difficulties()
}

// saveLocked writes the boards to disk. Caller holds the write lock.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.boards, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboards: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write leaderboard file: %w", err)
	}
	return nil
}

// sortAndTrim orders entries fastest first, ties broken by who got there
// earlier
func sortAndTrim(entries []service.ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TimeSeconds != entries[j].TimeSeconds {
			return entries[i].TimeSeconds < entries[j].TimeSeconds
		}
		return entries[i].AchievedAt.Before(entries[j].AchievedAt)
	})
}

func trim(entries []service.ScoreEntry) []service.ScoreEntry {
	if len(entries) > MaxEntriesPerBoard {
		return entries[:MaxEntriesPerBoard]
	}
	return entries
}
