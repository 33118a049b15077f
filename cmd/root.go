package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/oroddlokken/selca/internal/app"
	"github.com/oroddlokken/selca/internal/config"
	"github.com/oroddlokken/selca/internal/platform"
	"github.com/oroddlokken/selca/internal/run"
)

var cfgPath string
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "selca",
	Short: "Capture a region screenshot, save it, and optionally publish it",
	Long: `selca takes a region screenshot with flameshot, saves it under a
timestamp-derived path, and optionally publishes it.

How it works:
  The filename template in the config file is a strftime pattern
  (e.g. "%Y/%m/%d/%H%M%S.png"), so screenshots sort themselves into
  dated directories. With SFTP publishing enabled, the file is also
  uploaded to a remote host (ssh mkdir -p, then rsync) and the public
  URL can be placed on the clipboard.

After a capture, selca can send a desktop notification and open the
result (URL or local file) with the default handler.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(verbose)
		logger.Info("starting screenshot helper")
		logger.Info("desktop environment", "XDG_CURRENT_DESKTOP", os.Getenv("XDG_CURRENT_DESKTOP"))

		logger.Info("loading config", "path", cfgPath)
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		if err := platform.CheckTools(cfg); err != nil {
			return err
		}

		a := app.New(cfg, logger, &run.Exec{Logger: logger}, afero.NewOsFs())
		return a.Run(cmd.Context())
	},
}

// ExecuteContext adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultLocation, "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
