package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/lint"
	"github.com/user/stratkit/pkg/report"
)

var lintCmd = &cobra.Command{
	Use:   "lint <path>",
	Short: "Scan source files for code-quality smells",
	Long: `Walks a source tree (or a single file) and flags common quality smells:
TODO/FIXME markers, overlong lines, debug printing, swallowed errors, deep
nesting, trailing whitespace, and commented-out code. Each file gets a 0-100
score with a letter grade.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := lint.Run(args[0])
		if err != nil {
			return err
		}
		logger.Debug("lint finished",
			zap.Int("files", res.FilesScanned),
			zap.Int("issues", len(res.Issues)))

		header := []string{"file", "line", "rule", "name", "severity"}
		records := make([][]string, 0, len(res.Issues))
		for _, is := range res.Issues {
			records = append(records, []string{
				is.File, strconv.Itoa(is.Line), is.RuleID, is.Name, strconv.Itoa(is.Severity),
			})
		}

		return emitReport(lintText(res), res, header, records)
	},
}

func lintText(res *lint.Result) string {
	var sb strings.Builder
	sb.WriteString(report.Heading("Code Quality: "+res.Root) + "\n")
	sb.WriteString(fmt.Sprintf("Overall: %d/100 (%s), %d files, %d issues\n\n",
		res.OverallScore, res.OverallGrade, res.FilesScanned, len(res.Issues)))

	for _, fs := range res.Files {
		sb.WriteString(fmt.Sprintf("%-50s %3d (%s), %d issues\n", fs.File, fs.Score, fs.Grade, fs.Issues))
	}
	if len(res.Files) > 0 {
		sb.WriteString("\n")
	}

	for _, is := range res.Issues {
		sb.WriteString(fmt.Sprintf("[%s] %s:%d %s\n", report.SeverityLabel(is.Severity), is.File, is.Line, is.Name))
		if is.Context != "" {
			sb.WriteString(fmt.Sprintf("         %s\n", is.Context))
		}
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
