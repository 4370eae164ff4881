package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/stratkit/pkg/report"
)

var adviseCmd = &cobra.Command{
	Use:   "advise <report.json>",
	Short: "Get prioritized recommendations for a generated report",
	Long: `Sends a JSON report produced by another stratkit command (--output json) to
the configured AI provider and prints prioritized, actionable recommendations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return report.IOError(err)
		}
		if !json.Valid(data) {
			return report.ValidationErrorf("%s is not valid JSON; generate it with --output json", args[0])
		}

		ctx := context.Background()
		agent, cleanup, err := buildAgent(ctx)
		if err != nil {
			return err
		}
		defer cleanup()

		prompt := fmt.Sprintf(
			"Here is an analysis report in JSON. Review it and give me a prioritized "+
				"list of the most impactful actions, with a short rationale for each:\n\n%s",
			string(data))

		fmt.Print("Advisor thinking... ")
		resp, err := agent.Chat(ctx, prompt, func(msg string) {
			fmt.Printf("\r\033[K[Progress]: %s\nAdvisor thinking... ", msg)
		})
		fmt.Print("\r\033[K")
		if err != nil {
			return err
		}

		return report.Emit(resp+"\n", outputFile)
	},
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}
