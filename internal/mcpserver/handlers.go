package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/validate"
	"github.com/mark3labs/rigwizard/internal/wizard"
)

// stateView is the JSON shape returned by the state-changing tools.
type stateView struct {
	CurrentStep int             `json:"currentStep"`
	TotalSteps  int             `json:"totalSteps"`
	Progress    float64         `json:"progress"`
	Steps       []wizard.Step   `json:"steps"`
	Submitting  bool            `json:"submitting"`
	Draft       buildform.Draft `json:"draft"`
	Errors      validate.Errors `json:"errors,omitempty"`
}

func (s *Server) state() stateView {
	return stateView{
		CurrentStep: s.ctrl.CurrentStep(),
		TotalSteps:  s.ctrl.TotalSteps(),
		Progress:    s.ctrl.Progress(),
		Steps:       s.ctrl.Steps(),
		Submitting:  s.ctrl.Submitting(),
		Draft:       s.ctrl.Snapshot(),
		Errors:      s.ctrl.Errors(),
	}
}

// stateResult renders the controller state plus any pending notifications.
func (s *Server) stateResult() *mcp.CallToolResult {
	data, err := json.MarshalIndent(s.state(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal state: %v", err))
	}
	return mcp.NewToolResultText(s.withNotes(string(data)))
}

// withNotes appends the notifications raised since the last tool call.
func (s *Server) withNotes(text string) string {
	if s.notes == nil {
		return text
	}
	ns := s.notes.Drain()
	if len(ns) == 0 {
		return text
	}
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\nNotifications:\n")
	for _, n := range ns {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", n.Kind, n.Title, n.Message)
	}
	return strings.TrimRight(b.String(), "\n")
}

// errorResult turns a controller error into a tool error.
func (s *Server) errorResult(err error) *mcp.CallToolResult {
	var errs validate.Errors
	if errors.As(err, &errs) {
		var b strings.Builder
		b.WriteString("validation failed:")
		for _, e := range errs {
			fmt.Fprintf(&b, "\n- %s: %s", e.Field, e.Message)
		}
		return mcp.NewToolResultError(s.withNotes(b.String()))
	}
	return mcp.NewToolResultError(s.withNotes(err.Error()))
}

func (s *Server) handleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.stateResult(), nil
}

// handleUpdate merges the draft argument into the controller's draft.
func (s *Server) handleUpdate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}

	raw, ok := args["draft"]
	if !ok {
		return mcp.NewToolResultError("missing 'draft' parameter"), nil
	}
	if _, ok := raw.(map[string]any); !ok {
		return mcp.NewToolResultError("'draft' is not an object"), nil
	}

	// Round-trip through JSON so field names and enum values match the
	// persisted form.
	data, err := json.Marshal(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid draft: %v", err)), nil
	}
	partial, err := buildform.Unmarshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid draft: %v", err)), nil
	}
	if partial.IsEmpty() {
		return mcp.NewToolResultError("draft contains no known fields"), nil
	}

	if s.ctrl.Submitting() {
		return s.errorResult(wizard.ErrSubmitting), nil
	}
	s.ctrl.UpdateDraft(partial)
	return s.stateResult(), nil
}

func (s *Server) handleDefaults(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defaults := buildform.StepDefaults(s.ctrl.CurrentStep(), s.ctrl.Snapshot())
	if !defaults.IsEmpty() {
		s.ctrl.UpdateDraft(defaults)
	}
	return s.stateResult(), nil
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.ctrl.Advance(); err != nil {
		return s.errorResult(err), nil
	}
	return s.stateResult(), nil
}

func (s *Server) handleRetreat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.ctrl.Retreat(); err != nil {
		return s.errorResult(err), nil
	}
	return s.stateResult(), nil
}

func (s *Server) handleSubmit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.ctrl.Submit(ctx); err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText(s.withNotes("Build submitted. The wizard has been reset.")), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.ctrl.Reset(ctx); err != nil {
		return s.errorResult(err), nil
	}
	return s.stateResult(), nil
}

// handleCatalog lists the options offered by a step.
func (s *Server) handleCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	step := request.GetInt("step", s.ctrl.CurrentStep())
	if step < 1 || step > s.ctrl.TotalSteps() {
		return mcp.NewToolResultError(fmt.Sprintf("step must be between 1 and %d", s.ctrl.TotalSteps())), nil
	}

	data, err := json.MarshalIndent(Catalog(step), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal catalog: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(buildform.Summary(s.ctrl.Snapshot())), nil
}

// Catalog returns the option lists of a step keyed by the draft field they
// fill.
func Catalog(step int) map[string]any {
	switch step {
	case validate.StepBudgetAndUse:
		return map[string]any{
			"budgetPresets": buildform.BudgetPresets,
			"budgetSlider": map[string]int{
				"min":  buildform.BudgetSliderMin,
				"max":  buildform.BudgetSliderMax,
				"step": buildform.BudgetSliderStep,
			},
			"primaryUse": buildform.UseCaseOptions,
		}
	case validate.StepPerformance:
		return map[string]any{
			"targetFPS": map[string]int{
				"min":  buildform.FPSSliderMin,
				"max":  buildform.FPSSliderMax,
				"step": buildform.FPSSliderStep,
			},
			"resolution": buildform.ResolutionOptions,
			"games":      buildform.PopularGames,
			"software":   buildform.WorkloadSoftware,
		}
	case validate.StepPreferences:
		return map[string]any{
			"preferredBrands": buildform.BrandOptions,
			"formFactor":      buildform.FormFactorOptions,
			"noiseLevel":      buildform.NoiseLevelOptions,
			"powerEfficiency": buildform.PowerEfficiencyOptions,
			"rgbLighting":     buildform.RGBOptions,
		}
	case validate.StepPeripherals:
		return map[string]any{
			"peripheralNeeds":     buildform.PeripheralOptions,
			"specialRequirements": buildform.SpecialRequirementOptions,
		}
	case validate.StepSummary:
		return map[string]any{
			"experienceLevel": buildform.ExperienceLevelOptions,
		}
	}
	return map[string]any{}
}
