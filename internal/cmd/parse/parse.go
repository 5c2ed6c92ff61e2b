// Package parse provides the parse command for validating a single mention.
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mention-cli/internal/config"
	"github.com/open-cli-collective/mention-cli/internal/view"
	"github.com/open-cli-collective/mention-cli/pkg/mention"
)

type parseOptions struct {
	output  string
	noColor bool
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <mention>",
		Short: "Parse a single mention",
		Long: `Parse one piece of mention markup and show its typed payload.

The whole argument must be exactly one mention. Use scan for free-form text
that merely contains mentions.`,
		Example: `  dmn parse "<@175928847299117063>"
  dmn parse "<a:party:987654>"
  dmn parse "<t:1650000000:R>" -o json`,
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

			return runParse(opts, args[0], os.Stdout)
		},
	}

	return cmd
}

// parseResult is the JSON shape of a parsed mention.
type parseResult struct {
	Kind     string `json:"kind"`
	ID       string `json:"id,omitempty"`
	Created  string `json:"created,omitempty"`
	Name     string `json:"name,omitempty"`
	Animated bool   `json:"animated,omitempty"`
	Unix     *int64 `json:"unix,omitempty"`
	Time     string `json:"time,omitempty"`
	Style    string `json:"style,omitempty"`
	Markup   string `json:"markup"`
}

func runParse(opts *parseOptions, input string, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(w)

	m, err := mention.Parse(input)
	if err != nil {
		var perr *mention.ParseError
		if errors.As(err, &perr) {
			renderer.Error(view.HighlightSpan(input, perr.Start, perr.End))
		}
		return fmt.Errorf("invalid mention: %w", err)
	}

	res := newParseResult(m)
	if opts.output == "json" {
		return renderer.RenderJSON(res)
	}

	renderer.RenderKeyValue("Kind", res.Kind)
	if res.ID != "" {
		renderer.RenderKeyValue("ID", res.ID)
	}
	if res.Created != "" {
		renderer.RenderKeyValue("Created", res.Created)
	}
	if m.Kind == mention.KindEmoji {
		renderer.RenderKeyValue("Name", res.Name)
		renderer.RenderKeyValue("Animated", strconv.FormatBool(res.Animated))
	}
	if res.Unix != nil {
		renderer.RenderKeyValue("Unix", strconv.FormatInt(*res.Unix, 10))
		renderer.RenderKeyValue("Time", res.Time)
		renderer.RenderKeyValue("Style", res.Style)
	}
	renderer.RenderKeyValue("Markup", res.Markup)

	return nil
}

func newParseResult(m mention.Mention) parseResult {
	res := parseResult{
		Kind:   m.Kind.String(),
		Markup: m.String(),
	}
	switch m.Kind {
	case mention.KindUser, mention.KindRole, mention.KindChannel, mention.KindEmoji:
		res.ID = m.ID.String()
		res.Created = m.ID.Time().UTC().Format(time.RFC3339)
		if m.Kind == mention.KindEmoji {
			res.Name = m.Name
			res.Animated = m.Animated
		}
	case mention.KindTimestamp:
		unix := m.Unix
		res.Unix = &unix
		res.Time = time.Unix(m.Unix, 0).UTC().Format(time.RFC3339)
		res.Style = m.Style.String()
	}
	return res
}
