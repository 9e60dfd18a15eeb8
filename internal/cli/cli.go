// Package cli implements the justify command-line interface.
//
// The command reads whitespace-separated words from stdin and writes lines
// of at most the requested width to stdout, breaking lines with the
// optimizer from the justify package (or first-fit with --greedy). Defaults
// can come from a TOML config file; the positional width argument and flags
// override it.
//
// All logging goes to stderr via charmbracelet/log, so stdout carries
// nothing but the formatted text. --verbose (-v) enables debug-level
// messages such as the total badness of the chosen partition.
//
// # Example
//
//	c := cli.New(os.Stdin, os.Stdout, os.Stderr)
//	err := c.RootCommand().ExecuteContext(ctx)
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tomaszmj/justify-text/justify"
	"github.com/tomaszmj/justify-text/textio"
)

// CLI wires the command tree to its streams. Stdin and stdout are injected
// so tests can drive the full command without touching the process streams.
type CLI struct {
	logger *log.Logger
	stdin  io.Reader
	stdout io.Writer
}

// New creates a CLI reading words from stdin, writing lines to stdout and
// logging to stderr at info level.
func New(stdin io.Reader, stdout, stderr io.Writer) *CLI {
	return &CLI{
		logger: newLogger(stderr, log.InfoLevel),
		stdin:  stdin,
		stdout: stdout,
	}
}

// newLogger creates a logger with timestamp formatting, filtering messages
// at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// RootCommand builds the justify command.
//
// Usage: justify [width] — width is the maximum line length in characters.
// When omitted, the config file value (or its default) applies.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		cfgPath   string
		greedy    bool
		justified bool
		verbose   bool
	)
	cmd := &cobra.Command{
		Use:   "justify [width]",
		Short: "Reformat stdin into lines of at most the given width",
		Long: "justify reads whitespace-separated words from stdin and writes them\n" +
			"to stdout as lines of at most the given width, choosing line breaks\n" +
			"that minimize the total squared leftover space per line.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.logger.SetLevel(log.DebugLevel)
			}

			cfg := DefaultConfig()
			if cfgPath != "" {
				if err := cfg.Load(cfgPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("greedy") {
				cfg.Greedy = greedy
			}
			if cmd.Flags().Changed("justified") {
				cfg.Justified = justified
			}
			if len(args) == 1 {
				width, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid line width %q: expected an integer", args[0])
				}
				cfg.Width = width
			}
			if cfg.Width < 1 {
				return fmt.Errorf("line width must be at least 1, got %d", cfg.Width)
			}

			return c.run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a TOML file with defaults")
	cmd.Flags().BoolVar(&greedy, "greedy", false, "use first-fit line breaking instead of the optimizer")
	cmd.Flags().BoolVar(&justified, "justified", false, "pad lines to the full width by distributing extra spaces")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// run reads the words, justifies them and writes the result. An interrupt
// during reading keeps the words scanned so far, matching an interactive
// session ended with ctrl+C instead of EOF.
func (c *CLI) run(ctx context.Context, cfg Config) error {
	c.logger.Info("reading text from stdin ...")
	words, err := textio.ReadWords(ctx, c.stdin)
	switch {
	case errors.Is(err, context.Canceled):
		c.logger.Warn("interrupt received, reading stopped (last words may be missing)")
	case err != nil:
		return fmt.Errorf("read input: %w", err)
	}
	c.logger.Info("text has been read", "words", len(words))

	opts := cfg.Options()
	lines, badness, err := justify.Justify(words, cfg.Width, &opts)
	if err != nil {
		return fmt.Errorf("justify text: %w", err)
	}
	c.logger.Debug("partition computed", "lines", len(lines), "badness", badness)

	if err := textio.WriteLines(c.stdout, lines); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.logger.Info("text justified successfully")

	return nil
}
