package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/minidom/internal/config"
	"github.com/vango-dev/minidom/internal/errors"
)

func initCmd(g *globals) *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write minidom.json (or minidom.toml with --format=toml) with the
default settings into the directory given by --dir.

Examples:
  minidom init
  minidom init --format=toml`,
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			switch format {
			case "json":
				name = config.JSONFileName
			case "toml":
				name = config.TOMLFileName
			default:
				return errors.Newf(errors.CategoryCLI, "unknown format %q", format).
					WithSuggestion("Use json or toml")
			}

			path := filepath.Join(g.dir, name)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists", path).
					WithSuggestion("Pass --force to overwrite it")
			}
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "File format: json or toml")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
