package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minesofgo/minesweeper/game/config"
	"github.com/minesofgo/minesweeper/game/engine"
	"github.com/minesofgo/minesweeper/game/service"
)

func newTestPersistence(t *testing.T) (*FilePersistence, string) {
	t.Helper()

	sessionsDir := t.TempDir()
	configManager, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	persistence, err := NewFilePersistence(sessionsDir, configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}
	return persistence, sessionsDir
}

func newTestSession(t *testing.T, id string) *service.Session {
	t.Helper()

	cfg := engine.BeginnerConfig()
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return &service.Session{
		ID:             id,
		PlayerName:     "tester",
		Engine:         eng,
		Config:         cfg,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	persistence, sessionsDir := newTestPersistence(t)

	sess := newTestSession(t, "ab12")
	// Make some plays so the saved state is non-trivial.
	if _, err := sess.Engine.Open(engine.Position{X: 4, Y: 4}); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := sess.Engine.ToggleFlag(engine.Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("ToggleFlag failed: %v", err)
	}

	if err := persistence.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(sessionsDir, "ab12.json")); err != nil {
		t.Fatalf("Expected session file on disk: %v", err)
	}

	loaded, err := persistence.Load("ab12")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ID != "ab12" {
		t.Errorf("Expected ID ab12, got %q", loaded.ID)
	}
	if loaded.PlayerName != "tester" {
		t.Errorf("Expected player tester, got %q", loaded.PlayerName)
	}
	if loaded.Engine.Phase() != engine.PhaseInProgress {
		t.Errorf("Expected in_progress, got %s", loaded.Engine.Phase())
	}

	// The board came back with the same mine layout.
	origBoard := sess.Engine.GetState().Board
	loadedBoard := loaded.Engine.GetState().Board
	for y := 0; y < origBoard.Height; y++ {
		for x := 0; x < origBoard.Width; x++ {
			if origBoard.Cells[y][x].Content != loadedBoard.Cells[y][x].Content {
				t.Fatalf("Mine layout differs at (%d,%d)", x, y)
			}
			if origBoard.Cells[y][x].Visibility != loadedBoard.Cells[y][x].Visibility {
				t.Fatalf("Visibility differs at (%d,%d)", x, y)
			}
		}
	}

	if loaded.Engine.MinesRemaining() != sess.Engine.MinesRemaining() {
		t.Errorf("Mine counter differs: %d vs %d",
			loaded.Engine.MinesRemaining(), sess.Engine.MinesRemaining())
	}
}

func TestFilePersistence_LoadMissing(t *testing.T) {
	persistence, _ := newTestPersistence(t)

	if _, err := persistence.Load("none"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_SaveNil(t *testing.T) {
	persistence, _ := newTestPersistence(t)

	if err := persistence.Save(nil); err == nil {
		t.Error("Expected error for nil session")
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	persistence, _ := newTestPersistence(t)

	sess := newTestSession(t, "cd34")
	if err := persistence.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !persistence.Exists("cd34") {
		t.Fatal("Expected session to exist")
	}
	if err := persistence.Delete("cd34"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if persistence.Exists("cd34") {
		t.Error("Expected session file removed")
	}
	if err := persistence.Delete("cd34"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	persistence, sessionsDir := newTestPersistence(t)

	for _, id := range []string{"aa11", "bb22", "cc33"} {
		if err := persistence.Save(newTestSession(t, id)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// Non-JSON files are ignored.
	if err := os.WriteFile(filepath.Join(sessionsDir, "readme.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	ids, err := persistence.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 3 {
		t.Errorf("Expected 3 session IDs, got %d: %v", len(ids), ids)
	}
}
