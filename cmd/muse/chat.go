package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/musenotes/muse"
)

var chatCmd = &cobra.Command{
	Use:   "chat [query]",
	Short: "Start a follow-up conversation from a search",
	Long: `Chat answers the query from your notes, then offers follow-up
suggestions. Pick one by number, type your own question, or press enter
to quit.`,
	Args: cobra.ExactArgs(1),
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

		query := args[0]
		answer, err := assistant.Search(ctx, notes, query)
		if err != nil {
			fatal("Error searching notes", err)
		}

		conv := muse.NewConversation(assistant, query, answer, nil)
		conv.Begin(ctx)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			card := conv.Latest()

			fmt.Printf("\n%s\n", card.Answer)
			for _, loc := range card.Locations {
				if loc.Address != "" {
					fmt.Printf("  * %s (%s)\n", loc.Name, loc.Address)
				} else {
					fmt.Printf("  * %s\n", loc.Name)
				}
			}

			if len(card.SmartSuggestions) == 0 {
				return
			}
			fmt.Println()
			for i, s := range card.SmartSuggestions {
				fmt.Printf("  %d. %s\n", i+1, s)
			}

			fmt.Print("\n> ")
			if !scanner.Scan() {
				return
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" || input == "q" || input == "quit" {
				return
			}

			question := input
			if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(card.SmartSuggestions) {
				question = card.SmartSuggestions[n-1]
			}

			if _, err := conv.Ask(ctx, question); err != nil {
				fmt.Fprintf(os.Stderr, "Error fetching answer: %v\n", err)
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
