package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	HeaderMeta  lipgloss.Style

	// Step indicator
	StepActive    lipgloss.Style
	StepCompleted lipgloss.Style
	StepPending   lipgloss.Style
	StepConnector lipgloss.Style

	StepTitle       lipgloss.Style
	StepDescription lipgloss.Style

	// Form fields
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	FieldValue        lipgloss.Style
	FieldMuted        lipgloss.Style
	FieldCursor       lipgloss.Style
	FieldSelected     lipgloss.Style
	FieldError        lipgloss.Style

	// Hints
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Toasts
	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	Success lipgloss.Style
}
