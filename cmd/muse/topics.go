package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Suggest search topics from your notes",
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

		topics := assistant.Topics(ctx, notes)
		if len(topics) == 0 {
			fmt.Println("No suggestions available")
			return
		}
		for _, topic := range topics {
			fmt.Println(topic)
		}
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
