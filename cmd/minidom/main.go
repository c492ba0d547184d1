package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vango-dev/minidom/internal/config"
	"github.com/vango-dev/minidom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┬┌┐┌┬┌┬┐┌─┐┌┬┐
  │││││││││ │││ ││││
  ┴ ┴┴┘└┘┴─┴┘└─┘┴ ┴
`

// globals is the state shared by all subcommands.
type globals struct {
	dir        string
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// load reads the configuration and builds the logger.
func (g *globals) load(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFile(g.configPath)
	} else {
		cfg, err = config.LoadOrDefault(g.dir)
	}
	if err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	g.cfg = cfg
	g.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	return nil
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "minidom",
		Short: "A minimal virtual DOM reconciler",
		Long: `minidom renders declarative virtual trees into a host tree and keeps
it up to date with as few mutations as possible.

  • Positional diffing of elements, text and components
  • Stateful components with synchronous SetState
  • Every host mutation journaled and counted
  • Browser playground over WebSocket`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.dir, "dir", "C", ".", "Directory to look for minidom.json or minidom.toml in")
	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (overrides --dir)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		demoCmd(g),
		serveCmd(g),
		initCmd(g),
		explainCmd(),
		versionCmd(),
	)
	return rootCmd
}

func main() {
	errors.ColorsFor(os.Stdout)

	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// skipConfig replaces the root's config loading for commands that do not
// need it.
func skipConfig(*cobra.Command, []string) error { return nil }

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", yellow("⚠"), fmt.Sprintf(format, args...))
}
