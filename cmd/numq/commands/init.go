package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/kvo/numq/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize numq configuration interactively",
	Long: `Guides you through setting up numq configuration step by step.
Creates a config file with output and result-cache settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func runInit() error {
	cfg := config.DefaultConfig()

	// === SECTION 1: Output ===
	var outputFormat string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output format").
				Description("JSON can still be requested per command with --json").
				Options(
					huh.NewOption("Text", "text"),
					huh.NewOption("JSON", "json"),
				).
				Value(&outputFormat),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}
	cfg.JSON = outputFormat == "json"

	// === SECTION 2: Result cache ===
	var cacheEnabled bool
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Result cache - Persists computed factorials between runs").
				Description("Enable the result cache?").
				Affirmative("Yes, enable").
				Negative("No, compute every time").
				Value(&cacheEnabled),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}
	cfg.CacheEnabled = cacheEnabled

	if cacheEnabled {
		cachePath := cfg.CachePath
		cacheSize := strconv.Itoa(cfg.CacheSize)

		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Cache file path").
					Placeholder(cfg.CachePath).
					Value(&cachePath),
				huh.NewInput().
					Title("Maximum cached results (0 for unlimited)").
					Placeholder("128").
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n < 0 {
							return fmt.Errorf("enter a non-negative integer")
						}
						return nil
					}).
					Value(&cacheSize),
			),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("interactive prompt failed: %w", err)
		}

		if cachePath != "" {
			cfg.CachePath = cachePath
		}
		cfg.CacheSize, _ = strconv.Atoi(cacheSize)
	}

	// === SECTION 3: Scope ===
	var scope string
	form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should the configuration be saved?").
				Options(
					huh.NewOption("Global (~/.numq/config.yaml)", "global"),
					huh.NewOption("Project (./.numq/config.yaml)", "project"),
				).
				Value(&scope),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive prompt failed: %w", err)
	}

	path := config.GlobalConfigFilePath()
	if scope == "project" {
		path = config.ProjectConfigFilePath()
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	fmt.Printf("Configuration saved to %s\n", path)
	return nil
}
