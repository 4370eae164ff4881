package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Start the interactive advisor session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		agent, cleanup, err := buildAgent(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("\n---------------------------------------------------------")
		fmt.Println("Stratkit Advisor Initialized. Ready for commands.")
		fmt.Println("Example: 'Cluster the keywords in data/keywords.csv'")
		fmt.Println("Example: 'Scan ./src for security problems'")
		fmt.Println("Type 'quit' or 'exit' to stop.")
		fmt.Println("---------------------------------------------------------")

		for {
			fmt.Print("\n> ")
			if !scanner.Scan() {
				break
			}
			input := scanner.Text()
			if input == "quit" || input == "exit" {
				break
			}
			if input == "" {
				continue
			}

			fmt.Print("Advisor thinking... ")
			resp, err := agent.Chat(ctx, input, func(msg string) {
				fmt.Printf("\r\033[K[Progress]: %s\nAdvisor thinking... ", msg)
			})
			fmt.Print("\r\033[K")

			if err != nil {
				fmt.Printf("Error: %v\n", err)
			} else {
				fmt.Printf("\n[Advisor]: %s\n", resp)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
