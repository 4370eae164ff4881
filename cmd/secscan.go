package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/report"
	"github.com/user/stratkit/pkg/secscan"
	"github.com/user/stratkit/pkg/wrappers"
)

var (
	baselinePath string
	saveBaseline bool
)

var secscanCmd = &cobra.Command{
	Use:   "secscan <path>",
	Short: "Scan source files for security anti-patterns",
	Long: `Scans a source tree for hardcoded secrets, weak cryptography, injection
patterns, and insecure transport settings. Exits with code 2 when any
critical finding is present. A baseline snapshot can be saved and diffed to
separate new findings from known ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := secscan.NewScanner(engine.NewFindingLedger())
		if err := scanner.Scan(args[0]); err != nil {
			return err
		}
		logger.Debug("scan finished",
			zap.Int("findings", len(scanner.Ledger.Findings)),
			zap.Int("critical", scanner.CriticalCount()))

		if saveBaseline {
			if err := scanner.Ledger.SaveSnapshot(baselinePath); err != nil {
				return err
			}
			fmt.Printf("Saved %d findings to baseline %s\n", len(scanner.Ledger.Findings), baselinePath)
			return nil
		}

		var text string
		if cmd.Flags().Changed("baseline") {
			baseline := engine.NewFindingLedger()
			if err := baseline.LoadSnapshot(baselinePath); err != nil {
				return err
			}
			diff := scanner.Ledger.CompareSnapshot(baseline)
			text = wrappers.FormatSnapshotDiff(baselinePath, diff)
		} else {
			text = scanner.Ledger.GetReport()
			if max := scanner.Ledger.MaxSeverity(); max > 0 {
				text += fmt.Sprintf("Highest severity: %s (%d/10)\n", report.SeverityLabel(max), max)
			}
		}

		header := []string{"subject", "category", "severity", "evidence", "rule"}
		records := make([][]string, 0, len(scanner.Ledger.Findings))
		for _, f := range scanner.Ledger.Findings {
			rule := ""
			if len(f.Tags) > 0 {
				rule = f.Tags[0]
			}
			records = append(records, []string{f.Subject, f.Category, strconv.Itoa(f.Severity), f.Evidence, rule})
		}

		if err := emitReport(text, scanner.Ledger.Findings, header, records); err != nil {
			return err
		}

		if n := scanner.CriticalCount(); n > 0 {
			return report.CriticalFindingsError(n)
		}
		return nil
	},
}

func init() {
	secscanCmd.Flags().StringVar(&baselinePath, "baseline", wrappers.DefaultSnapshotPath, "Baseline snapshot file to compare against")
	secscanCmd.Flags().BoolVar(&saveBaseline, "save-baseline", false, "Save the scan results as the baseline instead of reporting")
	rootCmd.AddCommand(secscanCmd)
}
