package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/musenotes/muse"
	"github.com/musenotes/muse/pkg/adapters/vault"
)

var (
	verbose   bool
	vaultPath string
	cachePath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "muse",
	Short: "An AI companion for a folder of Markdown notes",
	Long: `Muse answers questions about your personal notes.
Answers are cached per note-collection fingerprint and refreshed daily.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "Notes directory (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "Cache database path (default: ~/.muse/cache.db)")
}

// newAssistant assembles the assistant with the durable cache.
func newAssistant() (*muse.Assistant, error) {
	path := cachePath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".muse", "cache.db")
	}
	return muse.New(muse.WithCachePath(path))
}

// loadNotes reads the current snapshot from the vault.
func loadNotes(ctx context.Context) ([]muse.Note, error) {
	dir := vaultPath
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = wd
	}

	v, err := vault.New(dir)
	if err != nil {
		return nil, err
	}
	return v.Notes(ctx)
}
