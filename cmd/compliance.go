package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/stratkit/pkg/compliance"
	"github.com/user/stratkit/pkg/config"
	"github.com/user/stratkit/pkg/report"
)

var (
	complianceStandard string
	complianceTarget   int
	profilesDir        string
	templatesDir       string
	remediationVars    []string
)

var complianceCmd = &cobra.Command{
	Use:   "compliance",
	Short: "Assess control maturity against a compliance catalog",
}

var assessCmd = &cobra.Command{
	Use:   "assess <assessment.json>",
	Short: "Score a maturity assessment against a control catalog",
	Long: `Reads a JSON assessment mapping control IDs to maturity levels (0-5) and
scores it against a control catalog. Controls missing from the assessment
count as maturity 0. The report lists per-domain scores and the gaps below
the target maturity, ranked by weighted shortfall.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadComplianceEngine()
		if err != nil {
			return err
		}

		assessment, err := compliance.LoadAssessment(args[0])
		if err != nil {
			return err
		}

		standard := complianceStandard
		if assessment.Standard != "" && !cmd.Flags().Changed("standard") {
			standard = assessment.Standard
		}
		profile, ok := eng.GetProfile(standard)
		if !ok {
			return report.ValidationErrorf("unknown standard %q (run 'stratkit compliance standards')", standard)
		}

		target := complianceTarget
		if !cmd.Flags().Changed("target") {
			if cfg, err := config.LoadConfig(); err == nil && cfg.Analysis.TargetMaturity > 0 {
				target = cfg.Analysis.TargetMaturity
			}
		}

		res := compliance.Assess(profile, assessment, target)

		header := []string{"control", "name", "domain", "maturity", "target", "weight"}
		records := make([][]string, 0, len(res.Gaps))
		for _, g := range res.Gaps {
			records = append(records, []string{
				g.Control.ID, g.Control.Name, g.Control.Domain,
				strconv.Itoa(g.Maturity), strconv.Itoa(g.Target), strconv.Itoa(g.Control.Weight),
			})
		}

		return emitReport(res.TextReport(), res, header, records)
	},
}

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "List the available control catalogs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadComplianceEngine()
		if err != nil {
			return err
		}

		names := eng.ListStandards()
		var sb strings.Builder
		sb.WriteString(report.Heading("Available Standards") + "\n")
		records := make([][]string, 0, len(names))
		for _, name := range names {
			p, _ := eng.GetProfile(name)
			sb.WriteString(fmt.Sprintf("%-20s %s (%d controls)\n", name, p.Description, len(p.Controls)))
			records = append(records, []string{name, p.Description, strconv.Itoa(len(p.Controls))})
		}

		return emitReport(sb.String(), names, []string{"standard", "name", "controls"}, records)
	},
}

var remediationCmd = &cobra.Command{
	Use:   "remediation [template-id]",
	Short: "Render a remediation plan from a template",
	Long: `Without arguments, lists the available remediation templates. With a
template ID, renders the plan; template variables are supplied as repeated
--var key=value flags.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := compliance.NewRemediationEngine()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("templates") {
			if err := eng.LoadTemplates(templatesDir); err != nil {
				return err
			}
		}

		if len(args) == 0 {
			ids := eng.ListTemplates()
			var sb strings.Builder
			sb.WriteString(report.Heading("Remediation Templates") + "\n")
			for _, id := range ids {
				sb.WriteString("  " + id + "\n")
			}
			return emitReport(sb.String(), ids, nil, nil)
		}

		vars := make(map[string]string, len(remediationVars))
		for _, kv := range remediationVars {
			key, val, found := strings.Cut(kv, "=")
			if !found || key == "" {
				return report.ValidationErrorf("invalid --var %q (want key=value)", kv)
			}
			vars[key] = val
		}

		plan, err := eng.GeneratePlan(args[0], vars)
		if err != nil {
			return err
		}
		return report.Emit(plan, outputFile)
	},
}

func loadComplianceEngine() (*compliance.Engine, error) {
	eng, err := compliance.NewEngine()
	if err != nil {
		return nil, err
	}
	if profilesDir != "" {
		if err := eng.LoadProfiles(profilesDir); err != nil {
			return nil, err
		}
	}
	return eng, nil
}

func init() {
	assessCmd.Flags().StringVar(&complianceStandard, "standard", "ISO27001", "Control catalog to assess against")
	assessCmd.Flags().IntVar(&complianceTarget, "target", 3, "Target maturity level (0-5)")
	complianceCmd.PersistentFlags().StringVar(&profilesDir, "profiles", "", "Directory of additional catalog YAML files")
	remediationCmd.Flags().StringVar(&templatesDir, "templates", "", "Directory of additional remediation template YAML files")
	remediationCmd.Flags().StringArrayVar(&remediationVars, "var", nil, "Template variable as key=value (repeatable)")

	complianceCmd.AddCommand(assessCmd)
	complianceCmd.AddCommand(standardsCmd)
	complianceCmd.AddCommand(remediationCmd)
	rootCmd.AddCommand(complianceCmd)
}
