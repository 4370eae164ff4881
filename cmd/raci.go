package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/stratkit/pkg/raci"
	"github.com/user/stratkit/pkg/report"
)

var raciCmd = &cobra.Command{
	Use:   "raci <file.json>",
	Short: "Validate and render a RACI responsibility matrix",
	Long: `Reads a JSON document of roles and activities with R/A/C/I assignments,
validates it (exactly one Accountable per activity, at least one Responsible,
known roles and letters), and renders the matrix with any issues found.
An invalid matrix exits with code 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := raci.Load(args[0])
		if err != nil {
			return err
		}

		res := raci.Validate(m)
		header, records := raci.Rows(m)

		if err := emitReport(res.TextReport(), res, header, records); err != nil {
			return err
		}

		if !res.Valid {
			return report.ValidationErrorf("RACI matrix has validation errors")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(raciCmd)
}
