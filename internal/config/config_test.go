package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Stage != StageDev {
		t.Fatalf("expected stage %s, got %s", StageDev, cfg.Stage)
	}
	if cfg.BoardSize != 6 {
		t.Fatalf("expected default board size 6, got %d", cfg.BoardSize)
	}
	if cfg.Seed != 0 || cfg.Locale != "en-US" || cfg.Verbose {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "SEABATTLE_BOARD_SIZE=8\nSEABATTLE_SEED=42\nSEABATTLE_LOCALE=ru\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SEABATTLE_BOARD_SIZE")
		os.Unsetenv("SEABATTLE_SEED")
		os.Unsetenv("SEABATTLE_LOCALE")
	})
	// environment wins over the file
	t.Setenv("SEABATTLE_SEED", "7")

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BoardSize != 8 {
		t.Fatalf("expected board size 8, got %d", cfg.BoardSize)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Seed)
	}
	if cfg.Locale != "ru" {
		t.Fatalf("expected locale ru, got %s", cfg.Locale)
	}
}

func TestLoadSkipsEnvFileInProd(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("SEABATTLE_BOARD_SIZE=not-a-number\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STAGE", StageProd)

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BoardSize != 6 {
		t.Fatalf("expected default board size 6, got %d", cfg.BoardSize)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		contains string
	}{
		{name: "board size not an int", key: "SEABATTLE_BOARD_SIZE", value: "six", contains: "parse env:"},
		{name: "board size too small", key: "SEABATTLE_BOARD_SIZE", value: "5", contains: "board size must be within [6, 9]"},
		{name: "board size too large", key: "SEABATTLE_BOARD_SIZE", value: "10", contains: "board size must be within [6, 9]"},
		{name: "unknown stage", key: "STAGE", value: "staging", contains: "stage must be either dev or prod"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Fatalf("expected %q in error, got %v", test.contains, err)
			}
		})
	}
}
