// Shoplist is a terminal shopping list.
//
// Usage:
//
//	shoplist [flags]              interactive list
//	shoplist run [file] [flags]   apply a script of intents and print the list
//
// The list lives in memory for the session only; --export writes the
// final state as JSON on exit.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/shoplist/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			// the runner already reported the failing line
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exitError carries a runner exit code through cobra.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("script failed (exit %d)", e.code) }

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "shoplist",
		Short: "A shopping list for the terminal",
		Long: `Keep a shopping list for the current session: add, edit and delete
items with a name and a quantity.

Running without a command opens the interactive list.`,
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/shoplist/config.yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default silent)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file (default stderr, or shoplist.log in interactive mode)")
	pf.StringVar(&flags.theme, "theme", "", "color theme: classic, neon, mono")
	pf.StringVar(&flags.color, "color", "", "when to use color: auto, always, never (default auto)")
	pf.StringVar(&flags.export, "export", "", "write the final list as JSON to this file on exit (- for stdout)")

	root.AddCommand(newRunCmd(flags), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shoplist %s\n", version.Full())
		},
	}
}
