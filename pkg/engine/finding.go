package engine

import "github.com/google/uuid"

// Finding represents a normalized analysis finding from any tool
type Finding struct {
	ID             string   `json:"id"`
	SourceTool     string   `json:"source_tool"`
	Category       string   `json:"category"` // security / quality / seo / compliance / process
	Severity       int      `json:"severity"` // normalized 1-10
	Confidence     string   `json:"confidence"`
	Subject        string   `json:"subject"` // file:line / keyword / control id / activity
	Evidence       string   `json:"evidence"`
	Recommendation string   `json:"recommendation"`
	Tags           []string `json:"tags,omitempty"`
}

// NewFinding builds a finding with a generated ID and the severity clamped to [1,10].
func NewFinding(tool, category, subject, evidence string, severity int) Finding {
	if severity < 1 {
		severity = 1
	}
	if severity > 10 {
		severity = 10
	}
	return Finding{
		ID:         uuid.NewString(),
		SourceTool: tool,
		Category:   category,
		Subject:    subject,
		Evidence:   evidence,
		Severity:   severity,
	}
}
