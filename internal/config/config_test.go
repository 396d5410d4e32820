package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveString(t *testing.T) {
	tests := []struct {
		name    string
		flagVal string
		envVal  string
		fileVal string
		defVal  string
		want    string
	}{
		{"flag wins", "flag", "env", "file", "def", "flag"},
		{"env beats file", "", "env", "file", "def", "env"},
		{"file beats default", "", "", "file", "def", "file"},
		{"default", "", "", "", "def", "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveString(tt.flagVal, tt.envVal, tt.fileVal, tt.defVal)
			if got != tt.want {
				t.Errorf("ResolveString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gemmit.json")

	want := FileConfig{
		GeminiKey: "secret",
		Model:     "gemini-2.5-flash",
		Style:     "imperative",
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != (FileConfig{}) {
		t.Errorf("Load() = %+v, want zero config", got)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid JSON should fail")
	}
}
