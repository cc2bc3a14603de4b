package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseJob(t *testing.T) {
	data := []byte(`
engine: synthetic
version: "1.21"
seed: -4804349703814383506
dimension: overworld
structure: igloo
area: {min_x: 0, min_z: 0, max_x: 16, max_z: 16}
max_trials: 100000
range:
  scale: 4
  x: -32
  z: -32
  size_x: 16
  size_z: 16
  y: 16
db_path: hunts.db
log_level: debug
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Seed != -4804349703814383506 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Structure != "igloo" || cfg.Area.MaxX != 16 || cfg.MaxTrials != 100000 {
		t.Errorf("hunt fields = %q %+v %d", cfg.Structure, cfg.Area, cfg.MaxTrials)
	}
	if cfg.Range.Scale != 4 || cfg.Range.X != -32 || cfg.Range.SizeZ != 16 || cfg.Range.Y != 16 {
		t.Errorf("Range = %+v", cfg.Range)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.SlogLevel())
	}
}

func TestParseRejectsInvalidJobs(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "colour: red\n"},
		{"bad engine", "engine: quantum\n"},
		{"bad scale", "range: {scale: 8}\n"},
		{"zero size", "range: {size_x: 0}\n"},
		{"string seed", "seed: lots\n"},
		{"negative trials", "max_trials: -1\n"},
		{"not yaml", "engine: [\n"},
	}
	for _, tt := range tests {
		if _, err := Parse([]byte(tt.doc)); err == nil {
			t.Errorf("%s: Parse succeeded, want error", tt.name)
		}
	}
}

func TestParseEmptyJob(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if cfg.Engine != "synthetic" || cfg.Seed != 0 || cfg.Range.Y != 64 {
		t.Errorf("empty job = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte("version: \"1.18\"\nseed: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != "1.18" || cfg.Seed != 42 {
		t.Errorf("Load = %+v", cfg)
	}
	if cfg.Structure != "village" || cfg.Range.SizeX != 16 {
		t.Errorf("unset fields lost their defaults: %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestMergeRespectsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Version = "1.16"

	fromFile := &Config{Seed: 99, Version: "1.20", Structure: "mansion", MaxTrials: 10}
	Merge(cfg, fromFile, map[string]bool{"seed": true})

	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want flag value 7", cfg.Seed)
	}
	if cfg.Version != "1.20" || cfg.Structure != "mansion" || cfg.MaxTrials != 10 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Empty file values keep the defaults.
	if cfg.Engine != "synthetic" || cfg.Range.SizeX != 16 || cfg.LogLevel != "info" {
		t.Errorf("defaults overwritten: %+v", cfg)
	}
}

func TestMergeUnboundedTrialsFromFile(t *testing.T) {
	fromFile, err := Parse([]byte("max_trials: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := DefaultConfig()
	Merge(cfg, fromFile, map[string]bool{})
	if cfg.MaxTrials != 0 {
		t.Errorf("MaxTrials = %d, want 0 from the job file", cfg.MaxTrials)
	}

	fromFile, err = Parse([]byte("seed: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg = DefaultConfig()
	Merge(cfg, fromFile, map[string]bool{})
	if cfg.MaxTrials != 1<<24 {
		t.Errorf("MaxTrials = %d, want the default when the file omits it", cfg.MaxTrials)
	}
}

func TestSlogLevelDefault(t *testing.T) {
	for _, lvl := range []string{"", "info", "verbose"} {
		c := &Config{LogLevel: lvl}
		if c.SlogLevel() != slog.LevelInfo {
			t.Errorf("SlogLevel(%q) = %v, want info", lvl, c.SlogLevel())
		}
	}
}
