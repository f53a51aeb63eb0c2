// Package healthcheck inspects the numq configuration and the persisted
// result cache for the doctor command.
package healthcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kvo/numq/internal/config"
	"github.com/kvo/numq/pkg/cache"
)

// Cache status values reported by Check.
const (
	CacheDisabled = "disabled"
	CacheMissing  = "missing"
	CacheReady    = "ready"
	CacheCorrupt  = "corrupt"
)

// Result contains the full health check output for display.
type Result struct {
	ConfigPath   string
	ConfigScope  string // "global", "project", or "" when running on defaults
	CachePath    string
	CacheStatus  string
	CacheEntries int
	CacheError   string
}

// Check performs a health check against the given config.
// configPath is the config file actually in use; empty when running on defaults.
func Check(cfg *config.Config, configPath string) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	result := &Result{
		ConfigPath:  configPath,
		ConfigScope: scopeFromPath(configPath),
		CachePath:   cfg.CachePath,
	}

	checkCache(cfg, result)

	return result, nil
}

// scopeFromPath determines "global" or "project" scope from a config file path.
// Returns empty string if path is empty.
func scopeFromPath(path string) string {
	if path == "" {
		return ""
	}

	home, err := os.UserHomeDir()
	if err == nil {
		globalDir := filepath.Join(home, ".numq")
		if strings.HasPrefix(path, globalDir) {
			return "global"
		}
	}

	return "project"
}

// checkCache probes the persisted result cache.
func checkCache(cfg *config.Config, result *Result) {
	if !cfg.CacheEnabled {
		result.CacheStatus = CacheDisabled
		return
	}

	if _, err := os.Stat(cfg.CachePath); err != nil {
		result.CacheStatus = CacheMissing
		return
	}

	store := cache.New(0)
	if err := store.LoadFile(cfg.CachePath); err != nil {
		result.CacheStatus = CacheCorrupt
		result.CacheError = err.Error()
		return
	}

	result.CacheStatus = CacheReady
	result.CacheEntries = store.Len()
}
