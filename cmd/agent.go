package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/user/stratkit/pkg/adk"
	"github.com/user/stratkit/pkg/compliance"
	"github.com/user/stratkit/pkg/config"
	"github.com/user/stratkit/pkg/engine"
	"github.com/user/stratkit/pkg/wrappers"
)

// buildAgent connects to the configured AI provider and returns an agent with
// the full analysis toolset registered.
func buildAgent(ctx context.Context) (*adk.Agent, func(), error) {
	adk.DebugEnabled = DebugMode
	adk.SetLogger(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	providerName := cfg.SelectedProvider
	if providerName == "" {
		providerName = "gemini"
	}

	apiKey := cfg.GetAPIKey(providerName)
	if apiKey == "" && providerName == "gemini" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("no API key for provider %q; run 'stratkit config setup'", providerName)
	}

	provider, err := adk.NewProvider(ctx, providerName, apiKey, cfg.SelectedModel)
	if err != nil {
		return nil, nil, fmt.Errorf("creating AI provider: %w", err)
	}

	cleanup := func() {}
	if closer, ok := provider.(interface{ Close() }); ok {
		cleanup = closer.Close
	}

	agent := adk.NewAgent(provider)
	ledger := engine.NewFindingLedger()

	complianceEng, err := compliance.NewEngine()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading compliance catalogs: %w", err)
	}

	agent.RegisterTool(&wrappers.KeywordResearchWrapper{})
	agent.RegisterTool(&wrappers.ComplianceWrapper{Engine: complianceEng, TargetMaturity: cfg.Analysis.TargetMaturity})
	agent.RegisterTool(&wrappers.SecScanWrapper{Ledger: ledger})
	agent.RegisterTool(&wrappers.LintWrapper{Ledger: ledger})
	agent.RegisterTool(&wrappers.LedgerViewerWrapper{Ledger: ledger})
	agent.RegisterTool(&wrappers.SaveSnapshotWrapper{Ledger: ledger})
	agent.RegisterTool(&wrappers.DiffSnapshotWrapper{Ledger: ledger})

	agent.SetSystemPrompt(adk.GetSystemPrompt())

	return agent, cleanup, nil
}
