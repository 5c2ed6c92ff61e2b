// Package snowflakecmd provides the snowflake command for decoding Discord IDs.
package snowflakecmd

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mention-cli/internal/config"
	"github.com/open-cli-collective/mention-cli/internal/view"
	"github.com/open-cli-collective/mention-cli/pkg/snowflake"
)

type snowflakeOptions struct {
	output  string
	noColor bool
}

// NewCmdSnowflake creates the snowflake command.
func NewCmdSnowflake() *cobra.Command {
	opts := &snowflakeOptions{}

	cmd := &cobra.Command{
		Use:     "snowflake <id>",
		Aliases: []string{"id"},
		Short:   "Decode a snowflake ID",
		Long: `Decode a Discord snowflake ID into its creation time and the worker,
process and increment fields packed into its low bits.`,
		Example: `  dmn snowflake 175928847299117063
  dmn id 175928847299117063 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")

			cfg, _ := config.LoadWithEnv(config.DefaultConfigPath())
			if !cmd.Flags().Changed("output") && cfg.OutputFormat != "" {
				opts.output = cfg.OutputFormat
			}
			if cfg.NoColor {
				opts.noColor = true
			}

			return runSnowflake(opts, args[0], os.Stdout)
		},
	}

	return cmd
}

type snowflakeResult struct {
	ID        string `json:"id"`
	Created   string `json:"created"`
	Worker    uint8  `json:"worker"`
	Process   uint8  `json:"process"`
	Increment uint16 `json:"increment"`
}

func runSnowflake(opts *snowflakeOptions, idArg string, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	id, err := snowflake.Parse(idArg)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(w)

	res := snowflakeResult{
		ID:        id.String(),
		Created:   id.Time().UTC().Format(time.RFC3339Nano),
		Worker:    id.Worker(),
		Process:   id.Process(),
		Increment: id.Increment(),
	}

	if opts.output == "json" {
		return renderer.RenderJSON(res)
	}

	renderer.RenderKeyValue("ID", res.ID)
	renderer.RenderKeyValue("Created", res.Created)
	renderer.RenderKeyValue("Worker", strconv.Itoa(int(res.Worker)))
	renderer.RenderKeyValue("Process", strconv.Itoa(int(res.Process)))
	renderer.RenderKeyValue("Increment", strconv.Itoa(int(res.Increment)))

	return nil
}
