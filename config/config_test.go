package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir mirrors testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dataset != "data/comments.json" {
		t.Errorf("dataset = %q", cfg.Dataset)
	}
	if cfg.LikesThreshold != 10 {
		t.Errorf("likes threshold = %d", cfg.LikesThreshold)
	}
	if cfg.Generator.Count != 1000 || cfg.Generator.PositiveRatio != 0.7 {
		t.Errorf("generator defaults: %+v", cfg.Generator)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := []byte("dataset: custom.json\nlikes_threshold: 25\ngenerator:\n  count: 42\n  seed: 7\nlog:\n  level: debug\n")
	path := filepath.Join(dir, "pipekit.yaml")
	if err := os.WriteFile(path, yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dataset != "custom.json" || cfg.LikesThreshold != 25 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Generator.Count != 42 || cfg.Generator.Seed != 7 {
		t.Errorf("generator values not applied: %+v", cfg.Generator)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	// Untouched fields still get defaults.
	if cfg.Generator.Posts != 50 {
		t.Errorf("posts = %d, want default 50", cfg.Generator.Posts)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PIPEKIT_DATASET", "env.json")
	t.Setenv("PIPEKIT_LIKES_THRESHOLD", "42")
	t.Setenv("PIPEKIT_GENERATOR_COUNT", "5")
	t.Setenv("PIPEKIT_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dataset != "env.json" {
		t.Errorf("dataset = %q, want env.json", cfg.Dataset)
	}
	if cfg.LikesThreshold != 42 {
		t.Errorf("likes threshold = %d, want 42", cfg.LikesThreshold)
	}
	if cfg.Generator.Count != 5 {
		t.Errorf("generator count = %d, want 5", cfg.Generator.Count)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("PIPEKIT_LIKES_THRESHOLD", "99")

	yaml := []byte("likes_threshold: 25\n")
	if err := os.WriteFile(filepath.Join(dir, "pipekit.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LikesThreshold != 99 {
		t.Errorf("likes threshold = %d, want env override 99", cfg.LikesThreshold)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"dataset", []string{"dataset"}},
		{"likes_threshold", []string{"likes_threshold", "likes.threshold"}},
		{"generator_positive_ratio", []string{
			"generator_positive_ratio",
			"generator.positive_ratio",
			"generator.positive.ratio",
		}},
	}
	for _, tt := range tests {
		got := envKeyVariants(tt.key)
		if len(got) != len(tt.want) {
			t.Errorf("envKeyVariants(%q) = %v, want %v", tt.key, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("envKeyVariants(%q) = %v, want %v", tt.key, got, tt.want)
				break
			}
		}
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	if _, err := Load("nope.yaml"); err == nil {
		t.Error("expected error for explicit missing file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := []byte("generator:\n  count: -3\n")
	if err := os.WriteFile(filepath.Join(dir, "pipekit.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Error("expected validation error for negative count")
	}
}
