// Package threat generates a STRIDE threat register from a declarative system
// model (components plus data flows). STRIDE is a fixed lookup taxonomy:
// Spoofing, Tampering, Repudiation, Information Disclosure, Denial of
// Service, Elevation of Privilege.
package threat

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/user/stratkit/pkg/report"
)

// STRIDE categories.
const (
	Spoofing              = "Spoofing"
	Tampering             = "Tampering"
	Repudiation           = "Repudiation"
	InformationDisclosure = "Information Disclosure"
	DenialOfService       = "Denial of Service"
	ElevationOfPrivilege  = "Elevation of Privilege"
)

// Component is one element of the modeled system.
type Component struct {
	Name               string `json:"name"`
	Type               string `json:"type"` // service / datastore / queue / gateway / client
	InternetFacing     bool   `json:"internet_facing"`
	StoresPII          bool   `json:"stores_pii"`
	AuthenticatesUsers bool   `json:"authenticates_users"`
	AuditLogging       bool   `json:"audit_logging"`
	RateLimited        bool   `json:"rate_limited"`
}

// DataFlow is one connection between components.
type DataFlow struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Protocol      string `json:"protocol"`
	Encrypted     bool   `json:"encrypted"`
	Authenticated bool   `json:"authenticated"`
}

// Model is the parsed input document.
type Model struct {
	System     string      `json:"system"`
	Components []Component `json:"components"`
	DataFlows  []DataFlow  `json:"data_flows"`
}

// Threat is one entry in the register.
type Threat struct {
	Category   string `json:"category"`
	Component  string `json:"component"`
	Severity   int    `json:"severity"` // 1-10
	Condition  string `json:"condition"`
	Mitigation string `json:"mitigation"`
}

// Register is the generated threat register.
type Register struct {
	System  string   `json:"system"`
	Threats []Threat `json:"threats"`
	// RiskByComponent sums the severities per component.
	RiskByComponent map[string]int `json:"risk_by_component"`
}

// Load parses a system model from JSON.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, report.IOError(err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, report.ValidationErrorf("parsing threat model JSON: %v", err)
	}
	if len(m.Components) == 0 {
		return nil, report.ValidationErrorf("threat model defines no components")
	}

	names := map[string]bool{}
	for _, c := range m.Components {
		names[c.Name] = true
	}
	for _, f := range m.DataFlows {
		if !names[f.From] || !names[f.To] {
			return nil, report.ValidationErrorf("data flow %s -> %s references an unknown component", f.From, f.To)
		}
	}
	return &m, nil
}

// componentRule maps a component attribute combination to a threat.
type componentRule struct {
	Category   string
	Severity   int
	Condition  string
	Mitigation string
	Applies    func(Component) bool
}

var componentRules = []componentRule{
	{
		Category: Spoofing, Severity: 8,
		Condition:  "internet-facing component authenticates users",
		Mitigation: "enforce MFA and credential stuffing protections",
		Applies:    func(c Component) bool { return c.InternetFacing && c.AuthenticatesUsers },
	},
	{
		Category: InformationDisclosure, Severity: 9,
		Condition:  "internet-facing component stores PII",
		Mitigation: "encrypt at rest, minimize retained fields, restrict access",
		Applies:    func(c Component) bool { return c.InternetFacing && c.StoresPII },
	},
	{
		Category: InformationDisclosure, Severity: 6,
		Condition:  "datastore holds PII",
		Mitigation: "encrypt at rest and audit access paths",
		Applies:    func(c Component) bool { return !c.InternetFacing && c.StoresPII },
	},
	{
		Category: Repudiation, Severity: 5,
		Condition:  "component lacks audit logging",
		Mitigation: "emit tamper-evident audit events for sensitive operations",
		Applies:    func(c Component) bool { return !c.AuditLogging && (c.AuthenticatesUsers || c.StoresPII) },
	},
	{
		Category: DenialOfService, Severity: 7,
		Condition:  "internet-facing component has no rate limiting",
		Mitigation: "add rate limiting and request quotas at the edge",
		Applies:    func(c Component) bool { return c.InternetFacing && !c.RateLimited },
	},
	{
		Category: ElevationOfPrivilege, Severity: 7,
		Condition:  "gateway fronts internal services",
		Mitigation: "validate authorization on every hop, not just the edge",
		Applies:    func(c Component) bool { return strings.EqualFold(c.Type, "gateway") },
	},
}

// Analyze applies the rule table to the model.
func Analyze(m *Model) *Register {
	reg := &Register{System: m.System, RiskByComponent: map[string]int{}}

	for _, c := range m.Components {
		for _, r := range componentRules {
			if r.Applies(c) {
				reg.Threats = append(reg.Threats, Threat{
					Category:   r.Category,
					Component:  c.Name,
					Severity:   r.Severity,
					Condition:  r.Condition,
					Mitigation: r.Mitigation,
				})
			}
		}
	}

	for _, f := range m.DataFlows {
		subject := fmt.Sprintf("%s -> %s", f.From, f.To)
		if !f.Encrypted {
			reg.Threats = append(reg.Threats, Threat{
				Category:   InformationDisclosure,
				Component:  subject,
				Severity:   8,
				Condition:  "data flow is unencrypted",
				Mitigation: "use TLS on the connection",
			})
			reg.Threats = append(reg.Threats, Threat{
				Category:   Tampering,
				Component:  subject,
				Severity:   7,
				Condition:  "unencrypted flow can be modified in transit",
				Mitigation: "use TLS with integrity protection",
			})
		}
		if !f.Authenticated {
			reg.Threats = append(reg.Threats, Threat{
				Category:   Spoofing,
				Component:  subject,
				Severity:   7,
				Condition:  "data flow is unauthenticated",
				Mitigation: "authenticate the client side of the flow (mTLS or signed tokens)",
			})
		}
	}

	for _, t := range reg.Threats {
		reg.RiskByComponent[t.Component] += t.Severity
	}
	sort.SliceStable(reg.Threats, func(i, j int) bool {
		return reg.Threats[i].Severity > reg.Threats[j].Severity
	})
	return reg
}

// TextReport renders the register grouped by STRIDE category.
func (r *Register) TextReport() string {
	var sb strings.Builder
	if r.System != "" {
		sb.WriteString(fmt.Sprintf("Threat Register: %s\n", r.System))
	} else {
		sb.WriteString("Threat Register\n")
	}
	sb.WriteString("--------------------------------------------------\n")

	order := []string{Spoofing, Tampering, Repudiation, InformationDisclosure, DenialOfService, ElevationOfPrivilege}
	for _, cat := range order {
		var inCat []Threat
		for _, t := range r.Threats {
			if t.Category == cat {
				inCat = append(inCat, t)
			}
		}
		if len(inCat) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s (%d):\n", cat, len(inCat)))
		for _, t := range inCat {
			sb.WriteString(fmt.Sprintf("  [%d/10] %s: %s\n", t.Severity, t.Component, t.Condition))
			sb.WriteString(fmt.Sprintf("          Mitigation: %s\n", t.Mitigation))
		}
	}

	sb.WriteString("\nRisk by component:\n")
	comps := make([]string, 0, len(r.RiskByComponent))
	for c := range r.RiskByComponent {
		comps = append(comps, c)
	}
	sort.Slice(comps, func(i, j int) bool {
		return r.RiskByComponent[comps[i]] > r.RiskByComponent[comps[j]]
	})
	for _, c := range comps {
		sb.WriteString(fmt.Sprintf("  %-30s %d\n", c, r.RiskByComponent[c]))
	}
	return sb.String()
}
