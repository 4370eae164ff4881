package raci

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMatrix() *Matrix {
	return &Matrix{
		Project: "Launch",
		Roles:   []string{"PM", "Eng", "QA"},
		Activities: []Activity{
			{Name: "Plan", Assignments: map[string]string{"PM": "A,R", "Eng": "C"}},
			{Name: "Build", Assignments: map[string]string{"PM": "A", "Eng": "R", "QA": "I"}},
		},
	}
}

func TestValidateCleanMatrix(t *testing.T) {
	res := Validate(validMatrix())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Issues)
}

func TestValidateMissingAccountable(t *testing.T) {
	m := validMatrix()
	m.Activities[0].Assignments = map[string]string{"Eng": "R"}

	res := Validate(m)
	assert.False(t, res.Valid)
	found := false
	for _, is := range res.Issues {
		if is.Level == "error" && is.Activity == "Plan" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateDuplicateAccountable(t *testing.T) {
	m := validMatrix()
	m.Activities[1].Assignments = map[string]string{"PM": "A", "Eng": "A,R"}

	res := Validate(m)
	assert.False(t, res.Valid)
}

func TestValidateUnknownRoleAndLetter(t *testing.T) {
	m := validMatrix()
	m.Activities[0].Assignments["Ghost"] = "R"
	m.Activities[1].Assignments["QA"] = "X"

	res := Validate(m)
	assert.False(t, res.Valid)

	hasGhost, hasLetter := false, false
	for _, is := range res.Issues {
		if strings.Contains(is.Message, "unknown role") {
			hasGhost = true
		}
		if strings.Contains(is.Message, "invalid assignment letter") {
			hasLetter = true
		}
	}
	assert.True(t, hasGhost)
	assert.True(t, hasLetter)
}

func TestValidateOverloadWarning(t *testing.T) {
	m := &Matrix{
		Roles: []string{"PM", "Eng"},
		Activities: []Activity{
			{Name: "a1", Assignments: map[string]string{"PM": "A,R"}},
			{Name: "a2", Assignments: map[string]string{"PM": "A,R"}},
			{Name: "a3", Assignments: map[string]string{"PM": "A,R"}},
			{Name: "a4", Assignments: map[string]string{"PM": "A", "Eng": "R"}},
		},
	}

	res := Validate(m)
	warned := false
	for _, is := range res.Issues {
		if is.Level == "warning" && is.Role == "PM" {
			warned = true
		}
	}
	assert.True(t, warned)
	// Overload is a warning, not an error.
	assert.True(t, res.Valid)
}

func TestLoadRejectsEmptyMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raci.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"roles":[],"activities":[]}`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	header, records := Rows(validMatrix())
	assert.Equal(t, []string{"Activity", "PM", "Eng", "QA"}, header)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"Plan", "A,R", "C", ""}, records[0])
}

func TestTextReport(t *testing.T) {
	res := Validate(validMatrix())
	out := res.TextReport()
	assert.Contains(t, out, "Launch")
	assert.Contains(t, out, "No issues found.")
}
