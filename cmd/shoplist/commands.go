package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/cli"
	"github.com/idilsaglam/shoplist/internal/config"
	"github.com/idilsaglam/shoplist/internal/logging"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	theme      string
	color      string
	export     string
}

// setup merges config file and flags, then starts logging.
// defaultLogFile applies when neither source names a log file.
func setup(flags *rootFlags, defaultLogFile string) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.color != "" {
		cfg.Color = flags.color
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.LogFile = flags.logFile
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return cfg, err
	}
	ui.SetTheme(cfg.Theme)
	if err := ui.SetColorMode(cfg.Color); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// exportState writes the final list to flags.export; "-" means stdout,
// the command's own writer.
func exportState(flags *rootFlags, stdout io.Writer, st *store.ListStore) error {
	var err error
	switch flags.export {
	case "":
		return nil
	case jsonstore.Stdout:
		err = jsonstore.Encode(stdout, st.State())
	default:
		err = jsonstore.Save(flags.export, st.State())
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	logging.Info("list exported", zap.String("path", flags.export))
	return nil
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := setup(flags, "shoplist.log")
	if err != nil {
		return err
	}
	defer logging.Sync()

	tui.SetColorMode(cfg.Color)
	st := store.New()
	logging.Info("session started", zap.String("mode", "interactive"), zap.String("theme", cfg.Theme))
	if err := tui.Run(st, cfg.Theme); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	st.Close()
	return exportState(flags, cmd.OutOrStdout(), st)
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Apply a script of intents and print the resulting list",
		Long:  "Reads intents from file, or stdin when file is omitted or -.\n\n" + cli.Help,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setup(flags, ""); err != nil {
				return err
			}
			defer logging.Sync()

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			st := store.New()
			code := cli.Run(in, st, cli.Options{
				Out:   cmd.OutOrStdout(),
				Err:   cmd.ErrOrStderr(),
				Quiet: quiet,
			})
			if err := exportState(flags, cmd.OutOrStdout(), st); err != nil {
				return err
			}
			if code != 0 {
				return exitError{code}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the final list")
	return cmd
}
