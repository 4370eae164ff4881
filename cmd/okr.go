package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/config"
	"github.com/user/stratkit/pkg/okr"
	"github.com/user/stratkit/pkg/report"
)

var (
	okrNoRecord  bool
	historyLimit int
)

var okrCmd = &cobra.Command{
	Use:   "okr",
	Short: "Score OKR plans and track progress over time",
}

var okrReportCmd = &cobra.Command{
	Use:   "report <file.json>",
	Short: "Score an OKR plan and record the run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := okr.Load(args[0])
		if err != nil {
			return err
		}
		okr.Score(plan)

		header := []string{"objective", "key_result", "progress", "status"}
		var records [][]string
		for _, obj := range plan.Objectives {
			for _, kr := range obj.KeyResults {
				records = append(records, []string{
					obj.Name, kr.Description, fmt.Sprintf("%.2f", kr.Progress), kr.Status,
				})
			}
		}

		if err := emitReport(plan.TextReport(), plan, header, records); err != nil {
			return err
		}

		if !okrNoRecord {
			store, err := openHistoryStore()
			if err != nil {
				logger.Warn("history store unavailable", zap.Error(err))
				return nil
			}
			defer store.Close()
			if err := store.Record(plan); err != nil {
				logger.Warn("recording run failed", zap.Error(err))
			}
		}
		return nil
	},
}

var okrHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously recorded OKR runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistoryStore()
		if err != nil {
			return report.IOError(err)
		}
		defer store.Close()

		entries, err := store.History(historyLimit)
		if err != nil {
			return report.IOError(err)
		}

		header := []string{"recorded_at", "period", "score", "objectives"}
		records := make([][]string, 0, len(entries))
		for _, e := range entries {
			records = append(records, []string{
				e.RecordedAt.Format("2006-01-02 15:04"),
				e.Period,
				fmt.Sprintf("%.2f", e.Score),
				strconv.Itoa(e.Objectives),
			})
		}

		return emitReport(historyText(entries), entries, header, records)
	},
}

func historyText(entries []okr.HistoryEntry) string {
	var sb strings.Builder
	sb.WriteString(report.Heading("OKR History") + "\n")
	if len(entries) == 0 {
		sb.WriteString("No runs recorded yet.\n")
		return sb.String()
	}
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%s  %-12s score %.2f  (%d objectives)\n",
			e.RecordedAt.Format("2006-01-02 15:04"), e.Period, e.Score, e.Objectives))
	}
	return sb.String()
}

func openHistoryStore() (*okr.Store, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return nil, err
	}
	return okr.OpenStore(filepath.Join(dir, "okr_history.db"))
}

func init() {
	okrReportCmd.Flags().BoolVar(&okrNoRecord, "no-record", false, "Do not record this run in the history database")
	okrHistoryCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	okrCmd.AddCommand(okrReportCmd)
	okrCmd.AddCommand(okrHistoryCmd)
	rootCmd.AddCommand(okrCmd)
}
