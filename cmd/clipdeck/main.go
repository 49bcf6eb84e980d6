// Package main provides the CLI entry point for clipdeck.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/clipdeck-go/internal/config"
	applogger "github.com/ukaji3/clipdeck-go/internal/logger"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clipdeck",
		Short: "Build slide decks from news-clipping spreadsheets",
		Long: `clipdeck turns a spreadsheet of news clippings (one sheet per category,
with "Título" and "Circulação" columns) into a PPTX report.

Example usage:
  clipdeck serve                          # Start the HTTP service
  clipdeck build clipping.xlsx --logo logo.png -o relatorio.pptx
  clipdeck inspect relatorio.pptx         # List slides and their text`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is clipdeck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newServeCmd(), newBuildCmd(), newInspectCmd())
	return rootCmd
}

// initConfig loads the configuration and sets up the logger.
func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger = applogger.New(os.Stderr, level, cfg.Logging.Format)
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		"addr", cfg.Server.Addr,
		"title_column", cfg.Report.TitleColumn,
		"skip_prefixes", cfg.Report.SkipPrefixes,
	)
	return nil
}
