package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tw-event-radar/radar/internal/config"
	"github.com/tw-event-radar/radar/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	quiet      bool
}

var rootCmd = &cobra.Command{
	Use:   "radar",
	Short: "Taiwan stock event radar: daily report export and indexing",
	Long:  "radar turns the monitoring workbook into the daily Markdown report\nand maintains the summary archive and the search index.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "TOML configuration file")
	pf.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "Only log errors")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reindexCmd)
	rootCmd.AddCommand(summariesCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.Version = version
}

// loadRuntime reads the configuration and builds the logger for a command.
func loadRuntime() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return nil, nil, err
	}
	if rootFlags.quiet {
		cfg.Logging.Level = "error"
	}
	return cfg, logging.New(cfg.Logging), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
