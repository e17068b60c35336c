package tui

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mark3labs/rigwizard/internal/buildform"
	"github.com/mark3labs/rigwizard/internal/validate"
)

// formState is the widget state that survives rebuilding a step's fields.
type formState struct {
	cursors map[string]*int
	email   *textField
}

func newFormState() *formState {
	return &formState{
		cursors: make(map[string]*int),
		email: newTextField("email", "Email (optional)", "you@example.com",
			func(d buildform.Draft) string { return buildform.Text(d.Email) },
			func(v string) buildform.Draft { return buildform.Draft{Email: buildform.Ptr(v)} },
		),
	}
}

func (fs *formState) cursor(key string) *int {
	c, ok := fs.cursors[key]
	if !ok {
		c = new(int)
		fs.cursors[key] = c
	}
	return c
}

func dollars(v int) string { return fmt.Sprintf("$%d", v) }

// buildFields returns the fields shown on step for draft d.
func buildFields(step int, d buildform.Draft, fs *formState) []field {
	switch step {
	case validate.StepBudgetAndUse:
		return budgetAndUseFields(fs)
	case validate.StepPerformance:
		return performanceFields(d, fs)
	case validate.StepPreferences:
		return preferenceFields()
	case validate.StepPeripherals:
		return peripheralFields(fs)
	case validate.StepSummary:
		return []field{
			fs.email,
			&choiceField{
				key:     "experienceLevel",
				label:   "PC Building Experience",
				options: buildform.ExperienceLevelOptions,
				get:     func(d buildform.Draft) string { return buildform.Text(d.ExperienceLevel) },
				set: func(_ buildform.Draft, v string) buildform.Draft {
					return buildform.Draft{ExperienceLevel: buildform.Ptr(buildform.ExperienceLevel(v))}
				},
			},
		}
	}
	return nil
}

func budgetOf(d buildform.Draft) buildform.Budget {
	if d.Budget == nil {
		return buildform.Budget{Min: buildform.DefaultBudgetMin, Max: buildform.DefaultBudgetMax}
	}
	return *d.Budget
}

func budgetAndUseFields(fs *formState) []field {
	return []field{
		&presetField{cursor: fs.cursor("budgetPreset")},
		&sliderField{
			key:   "budget.min",
			label: "Minimum Budget",
			min:   buildform.BudgetSliderMin,
			max:   buildform.BudgetSliderMax,
			step:  buildform.BudgetSliderStep,
			get:   func(d buildform.Draft) int { return budgetOf(d).Min },
			set: func(d buildform.Draft, v int) buildform.Draft {
				b := budgetOf(d)
				b.Min = v
				return buildform.Draft{Budget: &b}
			},
			format: dollars,
		},
		&sliderField{
			key:   "budget.max",
			label: "Maximum Budget",
			min:   buildform.BudgetSliderMin,
			max:   buildform.BudgetSliderMax,
			step:  buildform.BudgetSliderStep,
			get:   func(d buildform.Draft) int { return budgetOf(d).Max },
			set: func(d buildform.Draft, v int) buildform.Draft {
				b := budgetOf(d)
				b.Max = v
				return buildform.Draft{Budget: &b}
			},
			format: dollars,
		},
		&multiField{
			key:     "primaryUse",
			label:   "Primary Use Cases",
			options: buildform.UseCaseOptions,
			cursor:  fs.cursor("primaryUse"),
			get:     func(d buildform.Draft) []string { return d.PrimaryUse },
			set: func(_ buildform.Draft, v []string) buildform.Draft {
				return buildform.Draft{PrimaryUse: v}
			},
		},
	}
}

func gamingOf(d buildform.Draft) buildform.GamingPerformance {
	if d.GamingPerformance == nil {
		return buildform.GamingPerformance{TargetFPS: buildform.Ptr(buildform.DefaultTargetFPS), Resolution: buildform.DefaultResolution}
	}
	g := *d.GamingPerformance
	g.Games = slices.Clone(g.Games)
	return g
}

func workloadOf(d buildform.Draft) buildform.WorkloadRequirements {
	if d.WorkloadRequirements == nil {
		return buildform.WorkloadRequirements{}
	}
	w := *d.WorkloadRequirements
	w.Software = slices.Clone(w.Software)
	return w
}

func performanceFields(d buildform.Draft, fs *formState) []field {
	var out []field
	if d.NeedsGaming() {
		out = append(out,
			&sliderField{
				key:   "gamingPerformance.targetFPS",
				label: "Target FPS",
				min:   buildform.FPSSliderMin,
				max:   buildform.FPSSliderMax,
				step:  buildform.FPSSliderStep,
				get:   func(d buildform.Draft) int { return gamingOf(d).FPS() },
				set: func(d buildform.Draft, v int) buildform.Draft {
					g := gamingOf(d)
					g.TargetFPS = buildform.Ptr(v)
					return buildform.Draft{GamingPerformance: &g}
				},
				format: func(v int) string { return fmt.Sprintf("%d FPS", v) },
			},
			&choiceField{
				key:     "gamingPerformance",
				label:   "Resolution",
				options: buildform.ResolutionOptions,
				get:     func(d buildform.Draft) string { return string(gamingOf(d).Resolution) },
				set: func(d buildform.Draft, v string) buildform.Draft {
					g := gamingOf(d)
					g.Resolution = buildform.Resolution(v)
					return buildform.Draft{GamingPerformance: &g}
				},
			},
			&multiField{
				key:     "gamingPerformance.games",
				label:   "Games You Play",
				options: stringOptions(buildform.PopularGames),
				cursor:  fs.cursor("games"),
				get:     func(d buildform.Draft) []string { return gamingOf(d).Games },
				set: func(d buildform.Draft, v []string) buildform.Draft {
					g := gamingOf(d)
					g.Games = v
					return buildform.Draft{GamingPerformance: &g}
				},
			},
		)
	}
	if d.NeedsWorkload() {
		out = append(out,
			&multiField{
				key:     "workloadRequirements.software",
				label:   "Software You Use",
				options: stringOptions(buildform.WorkloadSoftware),
				cursor:  fs.cursor("software"),
				get:     func(d buildform.Draft) []string { return workloadOf(d).Software },
				set: func(d buildform.Draft, v []string) buildform.Draft {
					w := workloadOf(d)
					w.Software = v
					return buildform.Draft{WorkloadRequirements: &w}
				},
			},
			&toggleField{
				key:   "workloadRequirements.multitasking",
				label: "Heavy Multitasking",
				get:   func(d buildform.Draft) bool { return workloadOf(d).Multitasking },
				set: func(d buildform.Draft, v bool) buildform.Draft {
					w := workloadOf(d)
					w.Multitasking = v
					return buildform.Draft{WorkloadRequirements: &w}
				},
			},
			&toggleField{
				key:   "workloadRequirements.renderingNeeds",
				label: "3D Rendering / Encoding",
				get:   func(d buildform.Draft) bool { return workloadOf(d).RenderingNeeds },
				set: func(d buildform.Draft, v bool) buildform.Draft {
					w := workloadOf(d)
					w.RenderingNeeds = v
					return buildform.Draft{WorkloadRequirements: &w}
				},
			},
		)
	}
	return out
}

func preferenceFields() []field {
	var out []field
	for _, cat := range buildform.Categories {
		out = append(out, &choiceField{
			key:     "preferredBrands." + string(cat),
			label:   buildform.CategoryLabel(cat),
			options: stringOptions(buildform.BrandOptions[cat]),
			get:     func(d buildform.Draft) string { return d.PreferredBrands.Brand(cat) },
			set: func(d buildform.Draft, v string) buildform.Draft {
				return buildform.Draft{PreferredBrands: d.PreferredBrands.WithBrand(cat, v)}
			},
		})
	}
	return append(out,
		&choiceField{
			key:     "formFactor",
			label:   "Form Factor",
			options: buildform.FormFactorOptions,
			get:     func(d buildform.Draft) string { return buildform.Text(d.FormFactor) },
			set: func(_ buildform.Draft, v string) buildform.Draft {
				return buildform.Draft{FormFactor: buildform.Ptr(buildform.FormFactor(v))}
			},
		},
		&choiceField{
			key:     "noiseLevel",
			label:   "Noise Level",
			options: buildform.NoiseLevelOptions,
			get:     func(d buildform.Draft) string { return buildform.Text(d.NoiseLevel) },
			set: func(_ buildform.Draft, v string) buildform.Draft {
				return buildform.Draft{NoiseLevel: buildform.Ptr(buildform.NoiseLevel(v))}
			},
		},
		&choiceField{
			key:     "powerEfficiency",
			label:   "Power Efficiency",
			options: buildform.PowerEfficiencyOptions,
			get:     func(d buildform.Draft) string { return buildform.Text(d.PowerEfficiency) },
			set: func(_ buildform.Draft, v string) buildform.Draft {
				return buildform.Draft{PowerEfficiency: buildform.Ptr(buildform.PowerEfficiency(v))}
			},
		},
		&toggleField{
			key:   "upgradePath",
			label: "Keep An Upgrade Path",
			get:   func(d buildform.Draft) bool { return d.UpgradePath != nil && *d.UpgradePath },
			set: func(_ buildform.Draft, v bool) buildform.Draft {
				return buildform.Draft{UpgradePath: buildform.Ptr(v)}
			},
		},
		&choiceField{
			key:     "rgbLighting",
			label:   "RGB Lighting",
			options: buildform.RGBOptions,
			get:     func(d buildform.Draft) string { return buildform.Text(d.RGBLighting) },
			set: func(_ buildform.Draft, v string) buildform.Draft {
				return buildform.Draft{RGBLighting: buildform.Ptr(buildform.RGBLighting(v))}
			},
		},
	)
}

func peripheralFields(fs *formState) []field {
	return []field{
		&multiField{
			key:     "peripheralNeeds",
			label:   "Peripherals Needed",
			options: buildform.PeripheralOptions,
			cursor:  fs.cursor("peripherals"),
			get:     func(d buildform.Draft) []string { return d.PeripheralNeeds.SelectedPeripherals() },
			set: func(d buildform.Draft, selected []string) buildform.Draft {
				p := maps.Clone(d.PeripheralNeeds)
				if p == nil {
					p = make(buildform.Peripherals, len(buildform.PeripheralOptions))
				}
				for _, o := range buildform.PeripheralOptions {
					p[o.Value] = false
				}
				for _, id := range selected {
					p[id] = true
				}
				return buildform.Draft{PeripheralNeeds: p}
			},
		},
		&multiField{
			key:     "specialRequirements",
			label:   "Special Requirements",
			options: stringOptions(buildform.SpecialRequirementOptions),
			cursor:  fs.cursor("special"),
			get:     func(d buildform.Draft) []string { return d.SpecialRequirements },
			set: func(_ buildform.Draft, v []string) buildform.Draft {
				return buildform.Draft{SpecialRequirements: v}
			},
		},
		notesField{},
	}
}
