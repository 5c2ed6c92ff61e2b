// Package root provides the root command for the dmn CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mention-cli/internal/cmd/completion"
	"github.com/open-cli-collective/mention-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/mention-cli/internal/cmd/fmtcmd"
	"github.com/open-cli-collective/mention-cli/internal/cmd/initcmd"
	"github.com/open-cli-collective/mention-cli/internal/cmd/parse"
	"github.com/open-cli-collective/mention-cli/internal/cmd/scan"
	"github.com/open-cli-collective/mention-cli/internal/cmd/snowflakecmd"
	"github.com/open-cli-collective/mention-cli/internal/version"
)

// NewCmdRoot creates the root command for dmn.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dmn",
		Short: "A command-line interface for Discord mention markup",
		Long: `dmn builds and parses Discord mention markup.

It provides commands for scanning text for user, role, channel, emoji and
timestamp mentions, for building mention markup from IDs, and for decoding
snowflake identifiers.

Get started by running: dmn scan "hey <@123>"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/dmn/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("dmn version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(scan.NewCmdScan())
	cmd.AddCommand(parse.NewCmdParse())
	cmd.AddCommand(fmtcmd.NewCmdFmt())
	cmd.AddCommand(snowflakecmd.NewCmdSnowflake())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
