package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/stretchr/testify/require"
)

func TestParseAnswers_YAML(t *testing.T) {
	d, err := parseAnswers([]byte(`
budget:
  min: 900
  max: 1400
primaryUse: [gaming]
gamingPerformance:
  targetFPS: 144
  resolution: 1440p
preferredBrands:
  gpu: [NVIDIA]
upgradePath: false
email: gamer@example.com
`))
	require.NoError(t, err)
	require.Equal(t, &buildform.Budget{Min: 900, Max: 1400}, d.Budget)
	require.Equal(t, []string{buildform.UseGaming}, d.PrimaryUse)
	require.Equal(t, 144, *d.GamingPerformance.TargetFPS)
	require.Equal(t, buildform.Resolution1440p, d.GamingPerformance.Resolution)
	require.Equal(t, []string{"NVIDIA"}, d.PreferredBrands[buildform.CategoryGPU])
	require.False(t, *d.UpgradePath)
	require.Equal(t, "gamer@example.com", buildform.Text(d.Email))
}

func TestParseAnswers_JSONAndEmpty(t *testing.T) {
	d, err := parseAnswers([]byte(`{"experienceLevel": "beginner"}`))
	require.NoError(t, err)
	require.Equal(t, buildform.ExperienceBeginner, *d.ExperienceLevel)

	d, err = parseAnswers(nil)
	require.NoError(t, err)
	require.True(t, d.IsEmpty())
}

func TestParseAnswers_Invalid(t *testing.T) {
	_, err := parseAnswers([]byte("budget: [unclosed"))
	require.ErrorContains(t, err, "parsing answers")

	_, err = parseAnswers([]byte("budget: lots"))
	require.ErrorContains(t, err, "parsing answers")
}

func TestReadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yml")
	require.NoError(t, os.WriteFile(path, []byte("primaryUse: [office-work]\n"), 0644))

	d, err := readAnswers(path, nil)
	require.NoError(t, err)
	require.Equal(t, []string{buildform.UseOfficeWork}, d.PrimaryUse)

	d, err = readAnswers("-", strings.NewReader("primaryUse: [streaming]\n"))
	require.NoError(t, err)
	require.Equal(t, []string{buildform.UseStreaming}, d.PrimaryUse)

	_, err = readAnswers(filepath.Join(t.TempDir(), "missing.yml"), nil)
	require.ErrorContains(t, err, "reading answers")
}

func TestPrettyDraft(t *testing.T) {
	out, err := prettyDraft(buildform.Draft{Budget: &buildform.Budget{Min: 800, Max: 1500}})
	require.NoError(t, err)
	require.Equal(t, "{\n  \"budget\": {\n    \"min\": 800,\n    \"max\": 1500\n  }\n}\n", out)

	out, err = prettyDraft(buildform.Draft{})
	require.NoError(t, err)
	require.Equal(t, "{}\n", out)
}
