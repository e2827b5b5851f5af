package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var welcomeCmd = &cobra.Command{
	Use:   "welcome [name]",
	Short: "Print the greeting of the day",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		if name == "" {
			name = os.Getenv("USER")
		}
		if name == "" {
			name = "there"
		}

		assistant, err := newAssistant()
		if err != nil {
			fatal("Error initializing assistant", err)
		}

		fmt.Println(assistant.Welcome(ctx, name))
	},
}

func init() {
	rootCmd.AddCommand(welcomeCmd)
}
