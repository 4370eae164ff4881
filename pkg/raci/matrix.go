// Package raci validates and renders RACI responsibility matrices
// (Responsible / Accountable / Consulted / Informed).
package raci

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/user/stratkit/pkg/report"
)

// Assignment letters.
const (
	Responsible = "R"
	Accountable = "A"
	Consulted   = "C"
	Informed    = "I"
)

var validLetters = map[string]bool{
	Responsible: true, Accountable: true, Consulted: true, Informed: true,
}

// Activity is one row of the matrix.
type Activity struct {
	Name        string            `json:"name"`
	Assignments map[string]string `json:"assignments"` // role -> letter(s), e.g. "A" or "R,A"
}

// Matrix is the parsed input document.
type Matrix struct {
	Project    string     `json:"project"`
	Roles      []string   `json:"roles"`
	Activities []Activity `json:"activities"`
}

// Issue is one validation problem.
type Issue struct {
	Level    string `json:"level"` // error / warning
	Activity string `json:"activity,omitempty"`
	Role     string `json:"role,omitempty"`
	Message  string `json:"message"`
}

// Result is a validated matrix plus its issues.
type Result struct {
	Matrix *Matrix `json:"matrix"`
	Issues []Issue `json:"issues"`
	Valid  bool    `json:"valid"`
}

// Load parses a RACI matrix from a JSON file.
func Load(path string) (*Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, report.IOError(err)
	}

	var m Matrix
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, report.ValidationErrorf("parsing RACI JSON: %v", err)
	}
	if len(m.Roles) == 0 {
		return nil, report.ValidationErrorf("RACI matrix defines no roles")
	}
	if len(m.Activities) == 0 {
		return nil, report.ValidationErrorf("RACI matrix defines no activities")
	}
	return &m, nil
}

// letters splits an assignment cell ("R,A") into individual letters.
func letters(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate applies the RACI structural rules:
// exactly one Accountable and at least one Responsible per activity (errors),
// unknown roles and letters (errors), and role overload where a single role
// carries A or R on more than half the activities (warning).
func Validate(m *Matrix) *Result {
	res := &Result{Matrix: m}
	roleSet := map[string]bool{}
	for _, r := range m.Roles {
		roleSet[r] = true
	}

	heavy := map[string]int{} // role -> count of A/R assignments

	for _, act := range m.Activities {
		accountable := 0
		responsible := 0

		for role, cell := range act.Assignments {
			if !roleSet[role] {
				res.Issues = append(res.Issues, Issue{
					Level: "error", Activity: act.Name, Role: role,
					Message: fmt.Sprintf("assignment references unknown role %q", role),
				})
				continue
			}
			for _, l := range letters(cell) {
				if !validLetters[l] {
					res.Issues = append(res.Issues, Issue{
						Level: "error", Activity: act.Name, Role: role,
						Message: fmt.Sprintf("invalid assignment letter %q (want R, A, C, or I)", l),
					})
					continue
				}
				switch l {
				case Accountable:
					accountable++
					heavy[role]++
				case Responsible:
					responsible++
					heavy[role]++
				}
			}
		}

		if accountable == 0 {
			res.Issues = append(res.Issues, Issue{
				Level: "error", Activity: act.Name,
				Message: "no Accountable role assigned (exactly one required)",
			})
		} else if accountable > 1 {
			res.Issues = append(res.Issues, Issue{
				Level: "error", Activity: act.Name,
				Message: fmt.Sprintf("%d Accountable roles assigned (exactly one required)", accountable),
			})
		}
		if responsible == 0 {
			res.Issues = append(res.Issues, Issue{
				Level: "error", Activity: act.Name,
				Message: "no Responsible role assigned (at least one required)",
			})
		}
	}

	half := len(m.Activities) / 2
	for _, role := range m.Roles {
		if len(m.Activities) >= 4 && heavy[role] > half {
			res.Issues = append(res.Issues, Issue{
				Level: "warning", Role: role,
				Message: fmt.Sprintf("role carries A/R on %d of %d activities; consider rebalancing", heavy[role], len(m.Activities)),
			})
		}
	}

	res.Valid = true
	for _, is := range res.Issues {
		if is.Level == "error" {
			res.Valid = false
			break
		}
	}
	return res
}

// Cell returns the normalized assignment for an activity/role pair.
func Cell(act Activity, role string) string {
	return strings.Join(letters(act.Assignments[role]), ",")
}

// Rows renders the matrix as table rows (activity, then one cell per role),
// shared by the CSV and Markdown renderers.
func Rows(m *Matrix) ([]string, [][]string) {
	header := append([]string{"Activity"}, m.Roles...)
	var records [][]string
	for _, act := range m.Activities {
		row := []string{act.Name}
		for _, role := range m.Roles {
			row = append(row, Cell(act, role))
		}
		records = append(records, row)
	}
	return header, records
}

// TextReport renders the matrix and its issues as a plain-text report.
func (r *Result) TextReport() string {
	var sb strings.Builder
	m := r.Matrix
	if m.Project != "" {
		sb.WriteString(fmt.Sprintf("RACI Matrix: %s\n", m.Project))
	} else {
		sb.WriteString("RACI Matrix\n")
	}
	sb.WriteString("--------------------------------------------------\n")

	width := 12
	for _, act := range m.Activities {
		if len(act.Name) > width {
			width = len(act.Name)
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s", width+2, "Activity"))
	for _, role := range m.Roles {
		sb.WriteString(fmt.Sprintf("%-12s", role))
	}
	sb.WriteString("\n")
	for _, act := range m.Activities {
		sb.WriteString(fmt.Sprintf("%-*s", width+2, act.Name))
		for _, role := range m.Roles {
			cell := Cell(act, role)
			if cell == "" {
				cell = "-"
			}
			sb.WriteString(fmt.Sprintf("%-12s", cell))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if len(r.Issues) == 0 {
		sb.WriteString("No issues found.\n")
		return sb.String()
	}

	sorted := make([]Issue, len(r.Issues))
	copy(sorted, r.Issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Level == "error" && sorted[j].Level != "error"
	})
	sb.WriteString(fmt.Sprintf("Issues (%d):\n", len(sorted)))
	for _, is := range sorted {
		loc := is.Activity
		if loc == "" {
			loc = is.Role
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s: %s\n", strings.ToUpper(is.Level), loc, is.Message))
	}
	return sb.String()
}
