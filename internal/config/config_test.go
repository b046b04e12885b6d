package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if prefs != Defaults() {
		t.Errorf("got %+v, want defaults %+v", prefs, Defaults())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	want := Preferences{
		LastOpenedFile: "/tmp/in.png",
		LastSavedFile:  "/tmp/out.jpg",
		GrabURL:        "http://camera.local/frame.jpg",
		LogLevel:       "debug",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load accepted malformed YAML")
	}
}

func TestLoadEmptyFieldsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("last_opened_file: /tmp/in.png\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if prefs.LastOpenedFile != "/tmp/in.png" {
		t.Errorf("LastOpenedFile = %q, want /tmp/in.png", prefs.LastOpenedFile)
	}
	if prefs.GrabURL != Defaults().GrabURL {
		t.Errorf("GrabURL = %q, want default %q", prefs.GrabURL, Defaults().GrabURL)
	}
	if prefs.LogLevel != Defaults().LogLevel {
		t.Errorf("LogLevel = %q, want default %q", prefs.LogLevel, Defaults().LogLevel)
	}
}
