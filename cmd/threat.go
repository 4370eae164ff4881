package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/threat"
)

var threatCmd = &cobra.Command{
	Use:   "threat <model.json>",
	Short: "Generate a STRIDE threat register from a system model",
	Long: `Reads a JSON system model (components and data flows) and applies a fixed
STRIDE rule table to produce a threat register: threats grouped by category
with severity and mitigation, plus a per-component risk score.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := threat.Load(args[0])
		if err != nil {
			return err
		}

		reg := threat.Analyze(model)
		logger.Debug("threat model analyzed",
			zap.String("system", reg.System),
			zap.Int("threats", len(reg.Threats)))

		header := []string{"category", "component", "severity", "condition", "mitigation"}
		records := make([][]string, 0, len(reg.Threats))
		for _, t := range reg.Threats {
			records = append(records, []string{
				t.Category, t.Component, strconv.Itoa(t.Severity), t.Condition, t.Mitigation,
			})
		}

		return emitReport(reg.TextReport(), reg, header, records)
	},
}

func init() {
	rootCmd.AddCommand(threatCmd)
}
