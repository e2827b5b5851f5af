package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/musenotes/muse/pkg/adapters/vault"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Refresh topic suggestions whenever the vault changes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assistant, err := newAssistant()
		if err != nil {
			fatal("Error initializing assistant", err)
		}

		dir := vaultPath
		if dir == "" {
			if dir, err = os.Getwd(); err != nil {
				fatal("Error resolving vault path", err)
			}
		}
		v, err := vault.New(dir)
		if err != nil {
			fatal("Error opening vault", err)
		}

		events, err := v.Watch(ctx)
		if err != nil {
			fatal("Error watching vault", err)
		}

		source := vault.NewLifecycleSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Error starting watcher", err)
		}

		printTopics := func() {
			notes, err := v.Notes(ctx)
			if err != nil {
				slog.Warn("failed to read vault", "error", err)
				return
			}
			for _, topic := range assistant.Topics(ctx, notes) {
				fmt.Printf(" - %s\n", topic)
			}
		}

		fmt.Printf("Watching %s\n", dir)
		printTopics()

		for ev := range source.Events() {
			fmt.Printf("\n%s\n", ev)
			printTopics()
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
