package wrappers

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/stratkit/pkg/compliance"
)

// ComplianceWrapper exposes control-catalog gap assessment as an agent tool.
type ComplianceWrapper struct {
	Engine         *compliance.Engine
	TargetMaturity int
}

func (c *ComplianceWrapper) Name() string {
	return "ComplianceAssessment"
}

func (c *ComplianceWrapper) Description() string {
	return "Assesses a control maturity JSON file against a loaded standard and reports the gaps."
}

func (c *ComplianceWrapper) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"file": map[string]interface{}{
				"type":        "string",
				"description": "Path to the assessment JSON file",
			},
			"standard": map[string]interface{}{
				"type":        "string",
				"description": "Standard to assess against (default ISO27001)",
			},
		},
		"required": []string{"file"},
	}
}

func (c *ComplianceWrapper) Execute(ctx context.Context, args map[string]interface{}, progress func(string)) (string, error) {
	if c.Engine == nil {
		return "Error: compliance engine not initialized.", nil
	}

	path, _ := args["file"].(string)
	if path == "" {
		return "Error: 'file' argument is required.", nil
	}
	standard, _ := args["standard"].(string)
	if standard == "" {
		standard = "ISO27001"
	}

	profile, ok := c.Engine.GetProfile(standard)
	if !ok {
		return fmt.Sprintf("Error: unknown standard %q. Loaded: %s", standard, strings.Join(c.Engine.ListStandards(), ", ")), nil
	}

	progress(fmt.Sprintf("Assessing %s against %s", path, standard))
	assessment, err := compliance.LoadAssessment(path)
	if err != nil {
		return fmt.Sprintf("Error loading assessment: %v", err), nil
	}

	res := compliance.Assess(profile, assessment, c.TargetMaturity)
	return res.TextReport(), nil
}
