package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/stratkit/pkg/slo"
)

var sloCmd = &cobra.Command{
	Use:   "slo <file.json>",
	Short: "Analyze SLO error budgets and burn rates",
	Long: `Reads a JSON document of SLOs (target, window, good/total event counts, and
optional recent error rates) and reports error budget consumption plus the
standard multiwindow burn-rate alerts (fast burn pages, slow burn tickets).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := slo.Load(args[0])
		if err != nil {
			return err
		}

		statuses := slo.Analyze(doc)

		header := []string{"slo", "target", "availability", "budget_consumed", "alerts", "healthy"}
		records := make([][]string, 0, len(statuses))
		for _, s := range statuses {
			records = append(records, []string{
				s.Name,
				fmt.Sprintf("%.4f", s.Target),
				fmt.Sprintf("%.4f", s.Availability),
				fmt.Sprintf("%.0f%%", s.BudgetConsumed*100),
				fmt.Sprintf("%d", len(s.Alerts)),
				fmt.Sprintf("%t", s.Healthy),
			})
		}

		return emitReport(slo.TextReport(statuses), statuses, header, records)
	},
}

func init() {
	rootCmd.AddCommand(sloCmd)
}
