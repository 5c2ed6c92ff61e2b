// Package scan provides the scan command for finding mentions in text.
package scan

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mention-cli/internal/config"
	"github.com/open-cli-collective/mention-cli/internal/view"
	"github.com/open-cli-collective/mention-cli/pkg/mention"
)

type scanOptions struct {
	file       string
	kinds      []string
	skipErrors bool
	output     string
	noColor    bool
}

// NewCmdScan creates the scan command.
func NewCmdScan() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [text]",
		Short: "Scan text for mention markup",
		Long: `Scan text for user, role, channel, emoji and timestamp mentions.

Text is taken from the argument, from --file, or from standard input.
Every candidate is reported in order: well-formed mentions with their typed
payload, malformed ones with a parse error and the offending byte range.`,
		Example: `  # Scan a message
  dmn scan "hey <@123>, see <#456> at <t:1650000000:R>"

  # Scan a file, mentions only
  dmn scan --file message.txt --skip-errors

  # Restrict to channel mentions
  dmn scan -k channel "ping <@123> in <#456>"

  # Scan from a pipe, as JSON
  cat message.txt | dmn scan -o json`,
		Args: cobra.MaximumNArgs(1),
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
			if len(opts.kinds) == 0 {
				opts.kinds = cfg.DefaultKinds
			}

			input, err := readInput(args, opts.file)
			if err != nil {
				return err
			}
			return runScan(opts, input, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read text from a file instead of the argument")
	cmd.Flags().StringArrayVarP(&opts.kinds, "kind", "k", nil, "Mention kind to search for (repeatable): user, role, channel, emoji, timestamp")
	cmd.Flags().BoolVar(&opts.skipErrors, "skip-errors", false, "Report well-formed mentions only")

	return cmd
}

// readInput resolves the text to scan: argument, file, or stdin.
func readInput(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(data), nil
}

// scanItem is the JSON shape of one scan result.
type scanItem struct {
	Kind     string `json:"kind,omitempty"`
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Animated bool   `json:"animated,omitempty"`
	Unix     *int64 `json:"unix,omitempty"`
	Style    string `json:"style,omitempty"`
	Error    string `json:"error,omitempty"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Raw      string `json:"raw"`
}

func runScan(opts *scanOptions, input string, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	var kinds []mention.Kind
	for _, name := range opts.kinds {
		k, err := mention.ParseKind(name)
		if err != nil {
			return err
		}
		kinds = append(kinds, k)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	renderer.SetWriter(w)

	var items []scanItem
	scanner := mention.NewScanner(input, kinds...)
	for {
		m, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if opts.skipErrors {
				continue
			}
			perr := err.(*mention.ParseError)
			items = append(items, scanItem{
				Error: perr.Code.String(),
				Start: perr.Start,
				End:   perr.End,
				Raw:   input[perr.Start:perr.End],
			})
			continue
		}
		items = append(items, newScanItem(m, input))
	}

	if opts.output == "json" {
		return renderer.RenderJSON(items)
	}

	if len(items) == 0 {
		renderer.RenderText("No mentions found.")
		return nil
	}

	headers := []string{"KIND", "VALUE", "SPAN", "RAW"}
	var rows [][]string
	for _, it := range items {
		kind, value := it.Kind, itemValue(it)
		if it.Error != "" {
			kind = "error"
			value = it.Error
		}
		rows = append(rows, []string{
			kind,
			value,
			fmt.Sprintf("%d:%d", it.Start, it.End),
			view.Truncate(it.Raw, 40),
		})
	}
	renderer.RenderTable(headers, rows)

	return nil
}

// newScanItem flattens a parsed mention into its JSON/table shape.
func newScanItem(m mention.ParsedMention, input string) scanItem {
	it := scanItem{
		Kind:  m.Kind.String(),
		Start: m.Span.Start,
		End:   m.Span.End,
		Raw:   input[m.Span.Start:m.Span.End],
	}
	switch m.Kind {
	case mention.KindUser, mention.KindRole, mention.KindChannel:
		it.ID = m.ID.String()
	case mention.KindEmoji:
		it.ID = m.ID.String()
		it.Name = m.Name
		it.Animated = m.Animated
	case mention.KindTimestamp:
		unix := m.Unix
		it.Unix = &unix
		if m.Style != mention.StyleNone {
			it.Style = m.Style.String()
		}
	}
	return it
}

// itemValue picks the principal payload for the VALUE table column.
func itemValue(it scanItem) string {
	switch {
	case it.Unix != nil && it.Style != "":
		return strconv.FormatInt(*it.Unix, 10) + " (" + it.Style + ")"
	case it.Unix != nil:
		return strconv.FormatInt(*it.Unix, 10)
	case it.Name != "" || it.Kind == "emoji":
		return it.Name + ":" + it.ID
	}
	return it.ID
}
