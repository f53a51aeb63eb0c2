package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvo/numq/internal/config"
	"github.com/kvo/numq/internal/healthcheck"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on configuration and cache",
	Long: `Checks the effective configuration and verifies that the persisted
result cache, when enabled, is readable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := loadConfigWithPath()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		result, err := healthcheck.Check(cfg, configPath)
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}

		displayDoctorResult(cmd, result)

		if result.CacheStatus == healthcheck.CacheCorrupt {
			return fmt.Errorf("health check failed: result cache is unreadable")
		}
		return nil
	},
}

// loadConfigWithPath resolves the effective config file the way Load does,
// but also reports which file won. Missing config files are fine; numq runs
// on defaults.
func loadConfigWithPath() (*config.Config, string, error) {
	projectPath := config.ProjectConfigFilePath()
	globalPath := config.GlobalConfigFilePath()

	var effectivePath string
	if fileExists(projectPath) {
		effectivePath = projectPath
	} else if fileExists(globalPath) {
		effectivePath = globalPath
	}

	if effectivePath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	cfg, err := config.LoadFromFile(effectivePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config from %s: %w", effectivePath, err)
	}
	return cfg, effectivePath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func displayDoctorResult(cmd *cobra.Command, result *healthcheck.Result) {
	w := cmd.OutOrStdout()

	if result.ConfigPath == "" {
		fmt.Fprintln(w, "Config: defaults (no config file, run 'numq init' to create one)")
	} else {
		fmt.Fprintf(w, "Config: %s (%s)\n", result.ConfigPath, result.ConfigScope)
	}

	switch result.CacheStatus {
	case healthcheck.CacheDisabled:
		fmt.Fprintln(w, "Cache:  disabled")
	case healthcheck.CacheMissing:
		fmt.Fprintf(w, "Cache:  %s (missing, created on first cached run)\n", result.CachePath)
	case healthcheck.CacheReady:
		fmt.Fprintf(w, "Cache:  %s (ready, %d entries)\n", result.CachePath, result.CacheEntries)
	case healthcheck.CacheCorrupt:
		fmt.Fprintf(w, "Cache:  %s (corrupt: %s)\n", result.CachePath, result.CacheError)
	}
}
