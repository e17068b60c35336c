package wizard

// StepDef is the static description of one wizard step.
type StepDef struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Step is a StepDef with its position relative to the current step.
type Step struct {
	StepDef
	IsCompleted bool `json:"isCompleted"`
	IsActive    bool `json:"isActive"`
}

// DefaultSteps is the canonical five-step intake.
var DefaultSteps = []StepDef{
	{ID: 1, Title: "Budget & Use", Description: "Budget and primary use cases"},
	{ID: 2, Title: "Performance", Description: "Performance requirements"},
	{ID: 3, Title: "Preferences", Description: "Component preferences"},
	{ID: 4, Title: "Peripherals", Description: "Accessories and extras"},
	{ID: 5, Title: "Summary", Description: "Review and submit"},
}

// TotalSteps is the length of DefaultSteps.
const TotalSteps = 5

// DeriveSteps marks each step active when it is current and completed when
// it comes before current.
func DeriveSteps(defs []StepDef, current int) []Step {
	steps := make([]Step, len(defs))
	for i, def := range defs {
		steps[i] = Step{
			StepDef:     def,
			IsActive:    def.ID == current,
			IsCompleted: def.ID < current,
		}
	}
	return steps
}

// ProgressPercent returns current/total as a percentage.
func ProgressPercent(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(current) / float64(total) * 100
}
