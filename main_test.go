package main

import (
	"testing"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "1.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}

	expectedAppName := "Minesweeper Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func testOptions(t *testing.T) serverOptions {
	t.Helper()
	return serverOptions{
		host:        "localhost",
		port:        8080,
		configDir:   t.TempDir(),
		sessionsDir: t.TempDir(),
	}
}

func TestInitializeServices(t *testing.T) {
	// An empty config directory is fine, the preset difficulties cover it
	gameService, err := initializeServices(testOptions(t))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	opts := testOptions(t)
	opts.configDir = "/non/existent/path"

	_, err := initializeServices(opts)
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

// Note: We can't easily test main(), runServe(), and runStdioMCP()
// without significant mocking or refactoring, as they start servers and block.
// These functions would be better tested in integration tests that start actual servers
// and test their endpoints.

func TestServiceInitialization(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Service initialization panicked: %v", r)
		}
	}()

	_, err := initializeServices(testOptions(t))
	if err != nil {
		t.Logf("Service initialization failed: %v", err)
	}
}
