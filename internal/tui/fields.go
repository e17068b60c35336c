package tui

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/tui/theme"
)

// field is one editable answer on a step. Update returns the partial draft
// to merge, or nil when the key changed nothing.
type field interface {
	Key() string
	Label() string
	View(d buildform.Draft, focused bool, width int) string
	Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd)
}

// focusable fields own a widget that needs focus and blur.
type focusable interface {
	Focus() tea.Cmd
	Blur()
}

func labelView(f field, focused bool) string {
	s := theme.Current().S()
	if focused {
		return s.FieldCursor.Render("▸ ") + s.FieldLabelFocused.Render(f.Label())
	}
	return "  " + s.FieldLabel.Render(f.Label())
}

func isLeft(k string) bool  { return k == "left" || k == "h" }
func isRight(k string) bool { return k == "right" || k == "l" }
func isToggle(k string) bool {
	return k == "space" || k == " " || k == "enter" || k == "x"
}

// sliderField adjusts an integer within bounds.
type sliderField struct {
	key, label     string
	min, max, step int
	get            func(buildform.Draft) int
	set            func(buildform.Draft, int) buildform.Draft
	format         func(int) string
}

func (f *sliderField) Key() string   { return f.key }
func (f *sliderField) Label() string { return f.label }

func (f *sliderField) View(d buildform.Draft, focused bool, width int) string {
	s := theme.Current().S()
	v := f.get(d)

	barWidth := min(40, max(10, width-30))
	pos := 0
	if f.max > f.min {
		pos = (clamp(v, f.min, f.max) - f.min) * (barWidth - 1) / (f.max - f.min)
	}
	bar := s.FieldMuted.Render(strings.Repeat("─", pos)) +
		s.FieldCursor.Render("●") +
		s.FieldMuted.Render(strings.Repeat("─", barWidth-1-pos))

	return labelView(f, focused) + "\n    " + bar + "  " + s.FieldValue.Render(f.format(v))
}

func (f *sliderField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	v := f.get(d)
	switch k := msg.String(); {
	case isLeft(k):
		v -= f.step
	case isRight(k):
		v += f.step
	case k == "home":
		v = f.min
	case k == "end":
		v = f.max
	default:
		return nil, nil
	}
	p := f.set(d, clamp(v, f.min, f.max))
	return &p, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// choiceField picks one option; left and right cycle through them.
type choiceField struct {
	key, label string
	options    []buildform.Option
	get        func(buildform.Draft) string
	set        func(buildform.Draft, string) buildform.Draft
}

func (f *choiceField) Key() string   { return f.key }
func (f *choiceField) Label() string { return f.label }

func (f *choiceField) View(d buildform.Draft, focused bool, width int) string {
	s := theme.Current().S()
	cur := f.get(d)
	i := slices.IndexFunc(f.options, func(o buildform.Option) bool { return o.Value == cur })

	value := s.FieldMuted.Render("not set")
	desc := ""
	if i >= 0 {
		value = s.FieldValue.Render(f.options[i].Label)
		desc = f.options[i].Description
	}
	if focused {
		value = s.FieldCursor.Render("‹ ") + value + s.FieldCursor.Render(" ›")
	}
	out := labelView(f, focused) + "  " + value
	if desc != "" {
		out += "  " + s.FieldMuted.Render(desc)
	}
	return out
}

func (f *choiceField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	cur := f.get(d)
	i := slices.IndexFunc(f.options, func(o buildform.Option) bool { return o.Value == cur })
	n := len(f.options)
	switch k := msg.String(); {
	case isRight(k), k == "space", k == " ":
		i = (i + 1) % n
	case isLeft(k):
		if i < 0 {
			i = 0
		}
		i = (i - 1 + n) % n
	default:
		return nil, nil
	}
	p := f.set(d, f.options[i].Value)
	return &p, nil
}

// multiField toggles items of a list; left and right move the cursor.
type multiField struct {
	key, label string
	options    []buildform.Option
	cursor     *int
	get        func(buildform.Draft) []string
	set        func(buildform.Draft, []string) buildform.Draft
}

func (f *multiField) Key() string   { return f.key }
func (f *multiField) Label() string { return f.label }

func (f *multiField) View(d buildform.Draft, focused bool, width int) string {
	s := theme.Current().S()
	selected := f.get(d)

	var lines []string
	line := "   "
	for i, o := range f.options {
		mark := "[ ]"
		style := s.FieldValue
		if slices.Contains(selected, o.Value) {
			mark = "[x]"
			style = s.FieldSelected
		}
		chip := style.Render(mark + " " + o.Label)
		if focused && i == *f.cursor {
			chip = s.FieldCursor.Render(mark + " " + o.Label)
		}
		if lipgloss.Width(line)+lipgloss.Width(chip)+2 > width && line != "   " {
			lines = append(lines, line)
			line = "   "
		}
		line += " " + chip + " "
	}
	lines = append(lines, line)

	out := labelView(f, focused) + "\n" + strings.Join(lines, "\n")
	if focused && *f.cursor < len(f.options) && f.options[*f.cursor].Description != "" {
		out += "\n    " + s.FieldMuted.Render(f.options[*f.cursor].Description)
	}
	return out
}

func (f *multiField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	n := len(f.options)
	switch k := msg.String(); {
	case isLeft(k):
		*f.cursor = (*f.cursor - 1 + n) % n
		return nil, nil
	case isRight(k):
		*f.cursor = (*f.cursor + 1) % n
		return nil, nil
	case isToggle(k):
		p := f.set(d, buildform.Toggle(f.get(d), f.options[*f.cursor].Value))
		return &p, nil
	}
	return nil, nil
}

// presetField applies one of the budget presets.
type presetField struct {
	cursor *int
}

func (f *presetField) Key() string   { return "budget" }
func (f *presetField) Label() string { return "Budget Presets" }

func (f *presetField) View(d buildform.Draft, focused bool, width int) string {
	s := theme.Current().S()
	var chips []string
	for i, p := range buildform.BudgetPresets {
		text := fmt.Sprintf("%s ($%d-$%d)", p.Label, p.Min, p.Max)
		switch {
		case focused && i == *f.cursor:
			chips = append(chips, s.FieldCursor.Render(text))
		case d.Budget != nil && d.Budget.Min == p.Min && d.Budget.Max == p.Max:
			chips = append(chips, s.FieldSelected.Render(text))
		default:
			chips = append(chips, s.FieldMuted.Render(text))
		}
	}
	return labelView(f, focused) + "\n    " + lipgloss.NewStyle().Width(max(20, width-4)).Render(strings.Join(chips, "  "))
}

func (f *presetField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	n := len(buildform.BudgetPresets)
	switch k := msg.String(); {
	case isLeft(k):
		*f.cursor = (*f.cursor - 1 + n) % n
	case isRight(k):
		*f.cursor = (*f.cursor + 1) % n
	case isToggle(k):
		p := buildform.BudgetPresets[*f.cursor]
		return &buildform.Draft{Budget: &buildform.Budget{Min: p.Min, Max: p.Max}}, nil
	}
	return nil, nil
}

// toggleField flips a boolean.
type toggleField struct {
	key, label string
	get        func(buildform.Draft) bool
	set        func(buildform.Draft, bool) buildform.Draft
}

func (f *toggleField) Key() string   { return f.key }
func (f *toggleField) Label() string { return f.label }

func (f *toggleField) View(d buildform.Draft, focused bool, width int) string {
	s := theme.Current().S()
	value := s.FieldMuted.Render("[ ] No")
	if f.get(d) {
		value = s.FieldSelected.Render("[x] Yes")
	}
	return labelView(f, focused) + "  " + value
}

func (f *toggleField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	if k := msg.String(); isToggle(k) || isLeft(k) || isRight(k) {
		p := f.set(d, !f.get(d))
		return &p, nil
	}
	return nil, nil
}

// textField edits a single-line string with a text input.
type textField struct {
	key, label string
	input      textinput.Model
	get        func(buildform.Draft) string
	set        func(string) buildform.Draft
}

func newTextField(key, label, placeholder string, get func(buildform.Draft) string, set func(string) buildform.Draft) *textField {
	th := theme.Current()
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(th.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(th.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	return &textField{key: key, label: label, input: input, get: get, set: set}
}

func (f *textField) Key() string   { return f.key }
func (f *textField) Label() string { return f.label }

func (f *textField) Focus() tea.Cmd { return f.input.Focus() }
func (f *textField) Blur()          { f.input.Blur() }

func (f *textField) View(d buildform.Draft, focused bool, width int) string {
	if !f.input.Focused() && f.input.Value() != f.get(d) {
		f.input.SetValue(f.get(d))
	}
	return labelView(f, focused) + "\n    " + f.input.View()
}

func (f *textField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() == before {
		return nil, cmd
	}
	p := f.set(f.input.Value())
	return &p, cmd
}

// notesField shows the free-text notes; enter opens them in $EDITOR.
type notesField struct{}

func (notesField) Key() string   { return "additionalNotes" }
func (notesField) Label() string { return "Additional Notes" }

func (f notesField) View(d buildform.Draft, focused bool, width int) string {
	s := theme.Current().S()
	notes := buildform.Text(d.AdditionalNotes)
	body := s.FieldMuted.Render("none")
	if notes != "" {
		body = lipgloss.NewStyle().Width(max(20, width-6)).MaxHeight(4).Render(s.FieldValue.Render(notes))
	}
	out := labelView(f, focused) + "\n    " + strings.ReplaceAll(body, "\n", "\n    ")
	if focused {
		out += "\n    " + RenderHint(KeyEnter+"/"+KeyCtrlE, "edit in $EDITOR")
	}
	return out
}

func (notesField) Update(msg tea.KeyPressMsg, d buildform.Draft) (*buildform.Draft, tea.Cmd) {
	if k := msg.String(); k == "enter" || k == "ctrl+e" {
		return nil, editNotes(buildform.Text(d.AdditionalNotes))
	}
	return nil, nil
}

func stringOptions(values []string) []buildform.Option {
	out := make([]buildform.Option, len(values))
	for i, v := range values {
		out[i] = buildform.Option{Value: v, Label: v}
	}
	return out
}
