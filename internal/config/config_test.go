package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Patterns) != len(DefaultPatterns) {
		t.Errorf("Patterns = %v, want %v", cfg.Patterns, DefaultPatterns)
	}
	if cfg.HashAlgorithm != HashMD5 {
		t.Errorf("HashAlgorithm = %q, want %q", cfg.HashAlgorithm, HashMD5)
	}
	if cfg.LightMapExclusion {
		t.Error("LightMapExclusion should default to false")
	}
	if cfg.Workers != runtime.NumCPU()*2 {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU()*2)
	}
}

func TestLoadConfig_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "collider.yaml")
	content := `patterns:
  - "*.ybn"
exclude_lightmaps: true
hash_algorithm: xxh3
workers: 3
report_format: html
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Patterns) != 1 || cfg.Patterns[0] != "*.ybn" {
		t.Errorf("Patterns = %v, want [*.ybn]", cfg.Patterns)
	}
	if !cfg.LightMapExclusion {
		t.Error("LightMapExclusion = false, want true")
	}
	if cfg.HashAlgorithm != HashXXH3 {
		t.Errorf("HashAlgorithm = %q, want %q", cfg.HashAlgorithm, HashXXH3)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.ReportFormat != "html" {
		t.Errorf("ReportFormat = %q, want html", cfg.ReportFormat)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing config file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Defaults", Config{}, false},
		{"Negative workers", Config{Workers: -1}, true},
		{"Known algorithm", Config{HashAlgorithm: "SHA256"}, false},
		{"Unknown algorithm", Config{HashAlgorithm: "crc32"}, true},
		{"HTML report", Config{ReportFormat: "html"}, false},
		{"Lua report", Config{ReportFormat: "lua"}, false},
		{"Unknown report", Config{ReportFormat: "pdf"}, true},
		{"Valid patterns", Config{Patterns: []string{"*.YMAP", "vw_?.ybn"}}, false},
		{"Unclosed class", Config{Patterns: []string{"[abc"}}, true},
		{"Path separator", Config{Patterns: []string{"stream/*.ymap"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestWorkerCount(t *testing.T) {
	if got := (&Config{Workers: 5}).WorkerCount(); got != 5 {
		t.Errorf("WorkerCount() = %d, want 5", got)
	}
	if got := (&Config{}).WorkerCount(); got != runtime.NumCPU()*2 {
		t.Errorf("WorkerCount() = %d, want %d", got, runtime.NumCPU()*2)
	}
}

func TestPatternsSnapshot(t *testing.T) {
	cfg := &Config{Patterns: []string{"*.YMAP", " *.ybn ", ""}}
	got := cfg.PatternsSnapshot()
	want := []string{"*.ymap", "*.ybn"}

	if len(got) != len(want) {
		t.Fatalf("PatternsSnapshot() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PatternsSnapshot()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Mutating the config afterwards must not change the snapshot
	cfg.Patterns[0] = "*.ytd"
	if got[0] != "*.ymap" {
		t.Errorf("snapshot changed after config mutation: %v", got)
	}
}
