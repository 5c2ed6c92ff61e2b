package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for dmn.

To load completions in your current shell session:

  dmn completion fish | source

To load completions for every new session:

  dmn completion fish > ~/.config/fish/completions/dmn.fish`,
		Example: `  # Load in current session
  dmn completion fish | source

  # Install permanently
  dmn completion fish > ~/.config/fish/completions/dmn.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
