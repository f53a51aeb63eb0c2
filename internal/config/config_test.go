package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// mirroring t.Chdir (which requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"JSON", cfg.JSON, false},
		{"Verbose", cfg.Verbose, false},
		{"CacheEnabled", cfg.CacheEnabled, false},
		{"CacheSize", cfg.CacheSize, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if cfg.CachePath == "" {
		t.Error("DefaultConfig().CachePath should not be empty")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     DefaultConfig(),
			wantErr: false,
		},
		{
			name: "negative cache size",
			cfg: &Config{
				CacheSize: -1,
				CachePath: "results.msgpack",
			},
			wantErr: true,
		},
		{
			name: "cache enabled without path",
			cfg: &Config{
				CacheEnabled: true,
				CacheSize:    10,
				CachePath:    "",
			},
			wantErr: true,
		},
		{
			name: "unlimited cache size is allowed",
			cfg: &Config{
				CacheEnabled: true,
				CacheSize:    0,
				CachePath:    "results.msgpack",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `json: true
verbose: true
cache_enabled: true
cache_path: /tmp/numq-test/results.msgpack
cache_size: 64
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if !cfg.JSON {
		t.Error("JSON = false, want true")
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled = false, want true")
	}
	if cfg.CachePath != "/tmp/numq-test/results.msgpack" {
		t.Errorf("CachePath = %q", cfg.CachePath)
	}
	if cfg.CacheSize != 64 {
		t.Errorf("CacheSize = %d, want 64", cfg.CacheSize)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("LoadFromFile() on a missing file should fail")
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("cache_size: [not an int]"), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile() on malformed YAML should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("NUMQ_JSON", "true")
	t.Setenv("NUMQ_CACHE_ENABLED", "1")
	t.Setenv("NUMQ_CACHE_PATH", "/tmp/numq-test/override.msgpack")
	t.Setenv("NUMQ_CACHE_SIZE", "16")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if !cfg.JSON {
		t.Error("JSON = false, want true from NUMQ_JSON")
	}
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled = false, want true from NUMQ_CACHE_ENABLED")
	}
	if cfg.CachePath != "/tmp/numq-test/override.msgpack" {
		t.Errorf("CachePath = %q", cfg.CachePath)
	}
	if cfg.CacheSize != 16 {
		t.Errorf("CacheSize = %d, want 16", cfg.CacheSize)
	}
}

func TestEnvOverrides_BadCacheSizeIgnored(t *testing.T) {
	t.Setenv("NUMQ_CACHE_SIZE", "-3")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.CacheSize != 128 {
		t.Errorf("CacheSize = %d, want default 128 when override is invalid", cfg.CacheSize)
	}
}

func TestLoadPrecedence_ProjectBeatsEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	if err := os.MkdirAll(".numq", 0755); err != nil {
		t.Fatalf("creating project config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(".numq", "config.yaml"), []byte("cache_size: 64\n"), 0644); err != nil {
		t.Fatalf("writing project config: %v", err)
	}

	t.Setenv("NUMQ_CACHE_SIZE", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CacheSize != 64 {
		t.Errorf("CacheSize = %d, want 64 (project config must beat env)", cfg.CacheSize)
	}
}

func TestLoadPrecedence_EnvBeatsGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	if err := os.MkdirAll(filepath.Join(home, ".numq"), 0755); err != nil {
		t.Fatalf("creating global config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(home, ".numq", "config.yaml"), []byte("cache_size: 64\n"), 0644); err != nil {
		t.Fatalf("writing global config: %v", err)
	}

	t.Setenv("NUMQ_CACHE_SIZE", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CacheSize != 16 {
		t.Errorf("CacheSize = %d, want 16 (env must beat global config)", cfg.CacheSize)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.CacheEnabled = true
	cfg.CacheSize = 32

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if !loaded.CacheEnabled {
		t.Error("CacheEnabled = false after round trip, want true")
	}
	if loaded.CacheSize != 32 {
		t.Errorf("CacheSize = %d after round trip, want 32", loaded.CacheSize)
	}
}
