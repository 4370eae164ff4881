package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/stratkit/pkg/keywords"
)

// KeywordResearchWrapper exposes keyword clustering as an agent tool.
type KeywordResearchWrapper struct {
	Options keywords.ClusterOptions
}

func (k *KeywordResearchWrapper) Name() string {
	return "KeywordResearch"
}

func (k *KeywordResearchWrapper) Description() string {
	return "Clusters keywords from a CSV or JSON file into topic clusters and ranks them by priority."
}

func (k *KeywordResearchWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file": map[string]interface{}{
				"type":        "string",
				"description": "Path to the keyword CSV or JSON file",
			},
		},
		"required": []string{"file"},
	}
}

func (k *KeywordResearchWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	path, _ := args["file"].(string)
	if path == "" {
		return "Error: 'file' argument is required.", nil
	}

	progress(fmt.Sprintf("Loading keywords from %s", path))
	kws, err := keywords.Load(path)
	if err != nil {
		return fmt.Sprintf("Error loading keywords: %v", err), nil
	}

	opts := k.Options
	if opts.Threshold <= 0 {
		opts = keywords.DefaultClusterOptions()
	}
	clusters := keywords.BuildClusters(kws, opts)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Clustered %d keywords into %d clusters:\n", len(kws), len(clusters)))
	for _, c := range clusters {
		sb.WriteString(fmt.Sprintf("- %q (priority %.1f): pillar %q, %d keywords, volume %d, intent %s\n",
			c.Name, c.Priority, c.Pillar, len(c.Members), c.TotalVolume, c.DominantIntent))
	}
	return sb.String(), nil
}
