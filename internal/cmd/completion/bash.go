package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for dmn.

To load completions in your current shell session:

  source <(dmn completion bash)

To load completions for every new session:

  # Linux
  dmn completion bash > /etc/bash_completion.d/dmn

  # macOS (requires bash-completion)
  dmn completion bash > $(brew --prefix)/etc/bash_completion.d/dmn`,
		Example: `  # Load in current session
  source <(dmn completion bash)

  # Install permanently (Linux)
  dmn completion bash | sudo tee /etc/bash_completion.d/dmn > /dev/null

  # Install permanently (macOS with Homebrew)
  dmn completion bash > $(brew --prefix)/etc/bash_completion.d/dmn`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
