package compliance

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var builtinTemplates embed.FS

// RemediationTemplate describes how to close one class of control gap.
type RemediationTemplate struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Issue       string   `yaml:"issue"`
	Risk        string   `yaml:"risk"`
	Standard    string   `yaml:"standard"`
	Description string   `yaml:"description"`
	Steps       string   `yaml:"steps"`
	Validation  string   `yaml:"validation"`
	Variables   []string `yaml:"variables"`
}

// RemediationEngine manages remediation templates.
type RemediationEngine struct {
	Templates map[string]RemediationTemplate
}

// NewRemediationEngine creates an engine preloaded with the built-in
// templates. LoadTemplates can add or override from a directory.
func NewRemediationEngine() (*RemediationEngine, error) {
	e := &RemediationEngine{
		Templates: make(map[string]RemediationTemplate),
	}

	entries, err := builtinTemplates.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		data, err := builtinTemplates.ReadFile("templates/" + entry.Name())
		if err != nil {
			return nil, err
		}
		var t RemediationTemplate
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("failed to parse builtin template %s: %v", entry.Name(), err)
		}
		e.Templates[t.ID] = t
	}
	return e, nil
}

// LoadTemplates reads YAML templates from a directory.
func (e *RemediationEngine) LoadTemplates(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}

		var t RemediationTemplate
		if err := yaml.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %v", entry.Name(), err)
		}
		e.Templates[t.ID] = t
	}
	return nil
}

// ListTemplates returns the available template IDs and names.
func (e *RemediationEngine) ListTemplates() []string {
	var list []string
	for _, t := range e.Templates {
		list = append(list, fmt.Sprintf("%s: %s", t.ID, t.Name))
	}
	return list
}

// GeneratePlan renders a remediation plan from a template and variables.
func (e *RemediationEngine) GeneratePlan(id string, vars map[string]string) (string, error) {
	tmpl, ok := e.Templates[id]
	if !ok {
		return "", fmt.Errorf("template not found: %s", id)
	}

	for _, requiredVar := range tmpl.Variables {
		if _, exists := vars[requiredVar]; !exists {
			return "", fmt.Errorf("missing required variable: %s", requiredVar)
		}
	}

	steps, err := renderString("steps", tmpl.Steps, vars)
	if err != nil {
		return "", err
	}
	validation, err := renderString("validation", tmpl.Validation, vars)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("[REMEDIATION PLAN]\n")
	sb.WriteString(fmt.Sprintf("Issue: %s\n", tmpl.Issue))
	sb.WriteString(fmt.Sprintf("Risk: %s\n", tmpl.Risk))
	sb.WriteString(fmt.Sprintf("Standard: %s\n\n", tmpl.Standard))

	sb.WriteString("Steps:\n")
	sb.WriteString(steps + "\n\n")

	sb.WriteString("Validation:\n")
	sb.WriteString(validation + "\n")

	return sb.String(), nil
}

func renderString(name, tmplStr string, vars map[string]string) (string, error) {
	t, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %v", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %v", name, err)
	}
	return buf.String(), nil
}
