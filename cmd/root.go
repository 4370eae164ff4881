package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/logging"
	"github.com/user/stratkit/pkg/report"
)

var rootCmd = &cobra.Command{
	Use:     "stratkit",
	Short:   "Business and engineering analysis toolkit",
	Version: "0.3.0",
	Long: `Stratkit is a suite of independent analysis tools: keyword clustering,
on-page SEO audits, code-quality linting, security pattern scanning, RACI
matrices, OKR tracking, compliance gap assessment, STRIDE threat modeling,
and SLO burn-rate analysis. An optional AI agent can orchestrate the tools
and prioritize their findings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		// --debug implies debug-level logging so agent tracing is visible.
		logger, err = logging.New(Verbose || DebugMode)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var (
	logger *zap.Logger

	outputFormat string
	outputFile   string
	Verbose      bool
	DebugMode    bool
)

// Execute runs the root command and maps errors to process exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		report.Fail(err)
	}
}

// emitReport renders the report in the selected --output format and writes it
// to stdout or --file. Commands with no tabular shape pass a nil header, which
// rejects csv and markdown with a validation error.
func emitReport(text string, jsonValue interface{}, header []string, records [][]string) error {
	format, err := report.ParseFormat(outputFormat)
	if err != nil {
		return report.ValidationError(err)
	}

	var content string
	switch format {
	case report.FormatText:
		content = text
	case report.FormatJSON:
		content, err = report.MarshalJSON(jsonValue)
		if err != nil {
			return err
		}
	case report.FormatCSV:
		if header == nil {
			return report.ValidationErrorf("csv output is not supported for this command")
		}
		content, err = report.RenderCSV(header, records)
		if err != nil {
			return err
		}
	case report.FormatMarkdown:
		if header == nil {
			return report.ValidationErrorf("markdown output is not supported for this command")
		}
		content = report.RenderMarkdownTable(header, records)
	}

	return report.Emit(content, outputFile)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, csv, markdown")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "file", "f", "", "Write the report to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&DebugMode, "debug", false, "Enable agent debug logging")
}
