package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"gopkg.in/yaml.v3"
)

// readAnswers loads a partial draft from a YAML or JSON file using the
// intake form's field names. "-" reads from stdin.
func readAnswers(path string, stdin io.Reader) (buildform.Draft, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return buildform.Draft{}, fmt.Errorf("reading answers: %w", err)
	}
	return parseAnswers(data)
}

// parseAnswers decodes YAML (JSON is a subset) into a draft. The document is
// re-encoded as JSON so the draft's JSON field names apply.
func parseAnswers(data []byte) (buildform.Draft, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return buildform.Draft{}, fmt.Errorf("parsing answers: %w", err)
	}
	if doc == nil {
		return buildform.Draft{}, nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return buildform.Draft{}, fmt.Errorf("parsing answers: %w", err)
	}
	d, err := buildform.Unmarshal(raw)
	if err != nil {
		return buildform.Draft{}, fmt.Errorf("parsing answers: %w", err)
	}
	return d, nil
}

// prettyDraft renders d as indented JSON.
func prettyDraft(d buildform.Draft) (string, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling draft: %w", err)
	}
	return string(out) + "\n", nil
}
