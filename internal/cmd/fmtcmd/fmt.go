// Package fmtcmd provides the fmt command for building mention markup.
package fmtcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mention-cli/pkg/mention"
	"github.com/open-cli-collective/mention-cli/pkg/snowflake"
)

// NewCmdFmt creates the fmt command with one subcommand per mention kind.
func NewCmdFmt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Build mention markup",
		Long:  `Build mention markup from IDs, names and timestamps.`,
		Example: `  dmn fmt user 175928847299117063
  dmn fmt emoji party 987654 --animated
  dmn fmt timestamp now --style relative`,
	}

	cmd.AddCommand(newCmdUser())
	cmd.AddCommand(newCmdRole())
	cmd.AddCommand(newCmdChannel())
	cmd.AddCommand(newCmdEmoji())
	cmd.AddCommand(newCmdTimestamp())

	return cmd
}

func newCmdUser() *cobra.Command {
	return &cobra.Command{
		Use:     "user <id>",
		Short:   "Build a user mention",
		Example: `  dmn fmt user 175928847299117063`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDMention(mention.KindUser, args[0], os.Stdout)
		},
	}
}

func newCmdRole() *cobra.Command {
	return &cobra.Command{
		Use:     "role <id>",
		Short:   "Build a role mention",
		Example: `  dmn fmt role 123456789`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDMention(mention.KindRole, args[0], os.Stdout)
		},
	}
}

func newCmdChannel() *cobra.Command {
	return &cobra.Command{
		Use:     "channel <id>",
		Short:   "Build a channel mention",
		Example: `  dmn fmt channel 123456789`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIDMention(mention.KindChannel, args[0], os.Stdout)
		},
	}
}

func newCmdEmoji() *cobra.Command {
	var animated bool

	cmd := &cobra.Command{
		Use:   "emoji <name> <id>",
		Short: "Build a custom emoji mention",
		Example: `  dmn fmt emoji party 987654
  dmn fmt emoji wave 987654 --animated`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmoji(args[0], args[1], animated, os.Stdout)
		},
	}

	cmd.Flags().BoolVarP(&animated, "animated", "a", false, "Mark the emoji as animated")

	return cmd
}

func newCmdTimestamp() *cobra.Command {
	var style string

	cmd := &cobra.Command{
		Use:   "timestamp <unix>",
		Short: "Build a timestamp mention",
		Long: `Build a timestamp mention from a Unix timestamp in seconds.

Pass "now" for the current time. The optional style is either a single
style code (t, T, d, D, f, F, R) or a style name such as relative.`,
		Example: `  dmn fmt timestamp 1650000000
  dmn fmt timestamp now --style R
  dmn fmt timestamp 1650000000 --style long-date`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimestamp(args[0], style, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&style, "style", "s", "", "Display style code or name")

	return cmd
}

func runIDMention(kind mention.Kind, idArg string, w io.Writer) error {
	id, err := snowflake.Parse(idArg)
	if err != nil {
		return err
	}

	var m mention.Mention
	switch kind {
	case mention.KindUser:
		m = mention.User(id)
	case mention.KindRole:
		m = mention.Role(id)
	case mention.KindChannel:
		m = mention.Channel(id)
	}

	fmt.Fprintln(w, m.String())
	return nil
}

func runEmoji(name, idArg string, animated bool, w io.Writer) error {
	id, err := snowflake.Parse(idArg)
	if err != nil {
		return err
	}

	m := mention.Emoji(name, id)
	if animated {
		m = mention.AnimatedEmoji(name, id)
	}

	fmt.Fprintln(w, m.String())
	return nil
}

func runTimestamp(unixArg, styleArg string, w io.Writer) error {
	var unix int64
	if unixArg == "now" {
		unix = time.Now().Unix()
	} else {
		var err error
		unix, err = strconv.ParseInt(unixArg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unix timestamp %q", unixArg)
		}
	}

	style, err := parseStyle(styleArg)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, mention.StyledTimestamp(unix, style).String())
	return nil
}

// parseStyle accepts a single style code or a style name. An empty argument
// means no style suffix.
func parseStyle(arg string) (mention.TimestampStyle, error) {
	if arg == "" {
		return mention.StyleNone, nil
	}
	if len(arg) == 1 {
		if style, ok := mention.StyleForCode(arg[0]); ok {
			return style, nil
		}
		return mention.StyleNone, fmt.Errorf("invalid style code %q: must be one of t, T, d, D, f, F, R", arg)
	}
	for _, style := range []mention.TimestampStyle{
		mention.StyleShortTime,
		mention.StyleLongTime,
		mention.StyleShortDate,
		mention.StyleLongDate,
		mention.StyleShortDateTime,
		mention.StyleLongDateTime,
		mention.StyleRelativeTime,
	} {
		if style.String() == arg {
			return style, nil
		}
	}
	return mention.StyleNone, fmt.Errorf("invalid style %q", arg)
}
