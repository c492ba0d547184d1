package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/minidom/internal/errors"
)

func explainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [code]",
		Short: "Describe an error code",
		Long: `Print the explanation and suggested fix for an error code.
Without an argument, list every registered code.

Examples:
  minidom explain
  minidom explain R003`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, code := range errors.Codes() {
					tmpl, _ := errors.Lookup(code)
					fmt.Fprintf(w, "%s  %-10s %s\n", bold(code), tmpl.Category, tmpl.Message)
				}
				return nil
			}

			code := strings.ToUpper(args[0])
			if _, ok := errors.Lookup(code); !ok {
				return errors.Newf(errors.CategoryCLI, "unknown error code %q", args[0]).
					WithSuggestion("Run minidom explain to list all codes")
			}
			fmt.Fprint(w, errors.New(code).Format())
			return nil
		},
	}
}
