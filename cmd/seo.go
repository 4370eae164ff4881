package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/report"
	"github.com/user/stratkit/pkg/seo"
)

var seoCmd = &cobra.Command{
	Use:   "seo <page.html>",
	Short: "Audit an HTML page for on-page SEO problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := seo.LoadPage(args[0])
		if err != nil {
			return err
		}
		logger.Debug("parsed page", zap.String("file", args[0]), zap.Int("words", page.WordCount))

		res := seo.Audit(args[0], page)

		header := []string{"rule", "severity", "evidence", "recommendation"}
		records := make([][]string, 0, len(res.Findings))
		for _, f := range res.Findings {
			rule := ""
			if len(f.Tags) > 0 {
				rule = f.Tags[0]
			}
			records = append(records, []string{rule, strconv.Itoa(f.Severity), f.Evidence, f.Recommendation})
		}

		return emitReport(seoText(res), res, header, records)
	},
}

func seoText(res seo.Result) string {
	var sb strings.Builder
	sb.WriteString(report.Heading("SEO Audit: "+res.Path) + "\n")
	sb.WriteString(fmt.Sprintf("Score: %d/100 (%s)\n\n", res.Score, res.Grade))

	if len(res.Findings) == 0 {
		sb.WriteString("No problems found.\n")
		return sb.String()
	}

	for _, f := range res.Findings {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", report.SeverityLabel(f.Severity), f.Evidence))
		if f.Recommendation != "" {
			sb.WriteString(fmt.Sprintf("         fix: %s\n", f.Recommendation))
		}
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(seoCmd)
}
