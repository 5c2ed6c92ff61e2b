// Package initcmd provides the init command for dmn.
package initcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mention-cli/internal/config"
	"github.com/open-cli-collective/mention-cli/pkg/mention"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize dmn configuration",
		Long: `Initialize dmn with your preferred defaults.

This command will guide you through choosing a default output format and an
optional default kind filter for scan. The configuration will be saved to
~/.config/dmn/config.yml. dmn works without a config file; every default can
also be overridden per invocation with flags.`,
		Example: `  dmn init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit()
		},
	}

	return cmd
}

func runInit() error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{}

	var kindOptions []huh.Option[string]
	for _, k := range mention.Kinds() {
		kindOptions = append(kindOptions, huh.NewOption(k.String(), k.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output format").
				Description("Used when --output is not given").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&cfg.OutputFormat),

			huh.NewMultiSelect[string]().
				Title("Default kind filter for scan (optional)").
				Description("Leave empty to scan for every kind").
				Options(kindOptions...).
				Value(&cfg.DefaultKinds),

			huh.NewConfirm().
				Title("Disable colored output?").
				Value(&cfg.NoColor),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println(`  dmn scan "hey <@175928847299117063>"`)
	fmt.Println("  dmn fmt timestamp now --style R")

	return nil
}
