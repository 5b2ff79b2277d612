package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecalc/domain"
)

func TestRun_ExampleScenario(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-scenario", "scenario.example.yaml"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	for _, c := range domain.Calculators() {
		if c.Available {
			assert.Contains(t, out, c.Title)
		}
	}
	assert.Contains(t, out, "$1,516.96")
	assert.Contains(t, out, "Estimated value")
}

func TestRun_Only(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-scenario", "testdata/partial.yaml", "-only", "property-tax"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Property Tax Calculator")
	assert.NotContains(t, stdout.String(), "Mortgage Calculator")
	assert.Contains(t, stdout.String(), "$1,440")
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-scenario", "testdata/partial.yaml", "-json"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var sections []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &sections))
	require.Len(t, sections, 2)
	assert.Equal(t, "mortgage", sections[0]["kind"])
	assert.Equal(t, "property-tax", sections[1]["kind"])
	assert.Equal(t, "$1,516.96", sections[0]["display"].(map[string]any)["monthlyPayment"])
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing file", []string{"-scenario", "testdata/nope.yaml"}, 1},
		{"unknown field", []string{"-scenario", "testdata/unknown_field.yaml"}, 1},
		{"calculation error", []string{"-scenario", "testdata/invalid.yaml"}, 1},
		{"unknown slug", []string{"-scenario", "testdata/partial.yaml", "-only", "yacht"}, 2},
		{"bad flag", []string{"-nope"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tt.code, run(tt.args, &stdout, &stderr))
		})
	}
}

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(`
home-value:
  baseValue: 250000
  adjustments:
    - kind: market
      value: -5
`))
	require.NoError(t, err)
	require.NotNil(t, s.HomeValue)
	assert.Nil(t, s.Mortgage)
	assert.Equal(t, domain.AdjustMarket, s.HomeValue.Adjustments[0].Kind)

	_, err = ParseScenario([]byte("{}"))
	assert.ErrorIs(t, err, errEmptyScenario)

	_, err = ParseScenario([]byte("home-value:\n  adjustments:\n    - kind: view\n"))
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Monthly payment", label("monthlyPayment"))
	assert.Equal(t, "Projected future equity", label("projected.futureEquity"))
	assert.Equal(t, "Breakdown[1] amount", label("breakdown[1].amount"))
}
