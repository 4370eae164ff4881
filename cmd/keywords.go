package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/user/stratkit/pkg/config"
	"github.com/user/stratkit/pkg/keywords"
	"github.com/user/stratkit/pkg/report"
)

var (
	clusterThreshold float64
	minClusterSize   int
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords <file>",
	Short: "Cluster keyword research data into topic groups",
	Long: `Reads keyword data (CSV with keyword,volume,competition,cpc columns, or a
JSON array) and groups the keywords into topic clusters by shared core terms.
Each cluster gets a pillar keyword, aggregate stats, a dominant search intent,
and a priority score.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := keywords.DefaultClusterOptions()
		if cfg, err := config.LoadConfig(); err == nil {
			if cfg.Analysis.ClusterThreshold > 0 {
				opts.Threshold = cfg.Analysis.ClusterThreshold
			}
			if cfg.Analysis.MinClusterSize > 0 {
				opts.MinClusterSize = cfg.Analysis.MinClusterSize
			}
		}
		if cmd.Flags().Changed("threshold") {
			opts.Threshold = clusterThreshold
		}
		if cmd.Flags().Changed("min-cluster-size") {
			opts.MinClusterSize = minClusterSize
		}
		if opts.Threshold <= 0 || opts.Threshold > 1 {
			return report.ValidationErrorf("threshold must be in (0, 1], got %v", opts.Threshold)
		}

		kws, err := keywords.Load(args[0])
		if err != nil {
			return err
		}
		logger.Debug("loaded keywords", zap.Int("count", len(kws)), zap.String("file", args[0]))

		clusters := keywords.BuildClusters(kws, opts)

		header := []string{"cluster", "pillar", "keywords", "total_volume", "avg_competition", "intent", "priority"}
		records := make([][]string, 0, len(clusters))
		for _, c := range clusters {
			records = append(records, []string{
				c.Name,
				c.Pillar,
				strconv.Itoa(len(c.Members)),
				strconv.Itoa(c.TotalVolume),
				fmt.Sprintf("%.2f", c.AvgCompetition),
				string(c.DominantIntent),
				fmt.Sprintf("%.1f", c.Priority),
			})
		}

		return emitReport(clustersText(clusters, len(kws)), clusters, header, records)
	},
}

func clustersText(clusters []keywords.Cluster, total int) string {
	var sb strings.Builder
	sb.WriteString(report.Heading("Keyword Clusters") + "\n")
	sb.WriteString(fmt.Sprintf("%d keywords in %d clusters\n\n", total, len(clusters)))

	for _, c := range clusters {
		sb.WriteString(fmt.Sprintf("%s  (priority %.1f)\n", c.Name, c.Priority))
		sb.WriteString(fmt.Sprintf("  Pillar:      %s\n", c.Pillar))
		sb.WriteString(fmt.Sprintf("  Volume:      %d total, %.0f avg\n", c.TotalVolume, c.AvgVolume))
		sb.WriteString(fmt.Sprintf("  Competition: %.2f avg\n", c.AvgCompetition))
		sb.WriteString(fmt.Sprintf("  Intent:      %s\n", c.DominantIntent))
		if len(c.Terms) > 0 {
			sb.WriteString(fmt.Sprintf("  Terms:       %s\n", strings.Join(c.Terms, ", ")))
		}
		for _, m := range c.Members {
			sb.WriteString(fmt.Sprintf("    - %-40s vol=%-8d %s (%.1f)\n", m.Keyword.Keyword, m.Volume, m.Intent, m.Priority))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func init() {
	keywordsCmd.Flags().Float64Var(&clusterThreshold, "threshold", 0.3, "Jaccard similarity threshold for joining a cluster")
	keywordsCmd.Flags().IntVar(&minClusterSize, "min-cluster-size", 2, "Clusters smaller than this are dissolved into the catch-all")
	rootCmd.AddCommand(keywordsCmd)
}
