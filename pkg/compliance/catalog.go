// Package compliance assesses control implementation maturity against YAML
// control catalogs and produces gap reports.
package compliance

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Control is a single catalog entry.
type Control struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Domain      string `yaml:"domain" json:"domain"`
	Weight      int    `yaml:"weight" json:"weight"` // relative importance, defaults to 1
	Remediation string `yaml:"remediation" json:"remediation"`
}

// Profile is a control catalog for one standard.
type Profile struct {
	Standard    string    `yaml:"standard" json:"standard"`
	Description string    `yaml:"description" json:"description"`
	Controls    []Control `yaml:"controls" json:"controls"`
}

//go:embed catalogs/iso27001.yaml
var iso27001Catalog []byte

// Engine manages loaded control catalogs.
type Engine struct {
	Profiles map[string]Profile
}

// NewEngine creates an engine preloaded with the embedded catalogs.
func NewEngine() (*Engine, error) {
	e := &Engine{Profiles: make(map[string]Profile)}

	var iso Profile
	if err := yaml.Unmarshal(iso27001Catalog, &iso); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	e.add(iso)
	return e, nil
}

func (e *Engine) add(p Profile) {
	for i := range p.Controls {
		if p.Controls[i].Weight <= 0 {
			p.Controls[i].Weight = 1
		}
	}
	e.Profiles[p.Standard] = p
}

// LoadProfiles reads additional YAML catalogs from a directory. Files loaded
// here override embedded catalogs with the same standard name.
func (e *Engine) LoadProfiles(dir string) error {
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

		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			return fmt.Errorf("failed to parse %s: %v", entry.Name(), err)
		}
		e.add(p)
	}
	return nil
}

// ListStandards returns the names of loaded standards.
func (e *Engine) ListStandards() []string {
	keys := make([]string, 0, len(e.Profiles))
	for k := range e.Profiles {
		keys = append(keys, k)
	}
	return keys
}

// GetProfile retrieves a profile by name.
func (e *Engine) GetProfile(name string) (Profile, bool) {
	p, ok := e.Profiles[name]
	return p, ok
}
