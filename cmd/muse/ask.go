package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Ask a question about your notes",
	Long:  `Ask answers a free-text question from the current note snapshot. Repeated identical questions on the same day are served from the cache.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assistant, err := newAssistant()
		if err != nil {
			fatal("Error initializing assistant", err)
		}

		notes, err := loadNotes(ctx)
		if err != nil {
			fatal("Error loading notes", err)
		}

		result, err := assistant.Search(ctx, notes, args[0])
		if err != nil {
			fatal("Error searching notes", err)
		}

		fmt.Println(result)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
