package buildform

import (
	"fmt"
	"strings"
)

const notSpecified = "Not specified"

// BudgetRange formats the budget as "$min - $max".
func (d Draft) BudgetRange() string {
	if d.Budget == nil {
		return notSpecified
	}
	return fmt.Sprintf("$%d - $%d", d.Budget.Min, d.Budget.Max)
}

// Summary renders the answers as a markdown review document.
func Summary(d Draft) string {
	var b strings.Builder

	b.WriteString("# Build Requirements Summary\n\n")

	b.WriteString("## Budget Range\n\n")
	b.WriteString(d.BudgetRange())
	b.WriteString("\n\n")

	b.WriteString("## Primary Use Cases\n\n")
	if len(d.PrimaryUse) == 0 {
		b.WriteString("None specified\n\n")
	} else {
		for _, tag := range d.PrimaryUse {
			fmt.Fprintf(&b, "- %s\n", UseCaseLabel(tag))
		}
		b.WriteString("\n")
	}

	if gp := d.GamingPerformance; gp != nil {
		b.WriteString("## Gaming Performance\n\n")
		fmt.Fprintf(&b, "- Target: %s\n", gp.FPSLabel())
		fmt.Fprintf(&b, "- Resolution: %s\n", Label(ResolutionOptions, string(gp.Resolution)))
		if len(gp.Games) > 0 {
			shown := gp.Games
			if len(shown) > 3 {
				shown = shown[:3]
			}
			games := strings.Join(shown, ", ")
			if extra := len(gp.Games) - len(shown); extra > 0 {
				games += fmt.Sprintf(" +%d more", extra)
			}
			fmt.Fprintf(&b, "- Games: %s\n", games)
		}
		b.WriteString("\n")
	}

	if wr := d.WorkloadRequirements; wr != nil {
		b.WriteString("## Workload\n\n")
		if len(wr.Software) > 0 {
			fmt.Fprintf(&b, "- Software: %s\n", strings.Join(wr.Software, ", "))
		}
		fmt.Fprintf(&b, "- Heavy multitasking: %s\n", yesNo(wr.Multitasking))
		fmt.Fprintf(&b, "- Rendering: %s\n\n", yesNo(wr.RenderingNeeds))
	}

	if d.FormFactor != nil {
		b.WriteString("## System Preferences\n\n")
		fmt.Fprintf(&b, "- Form factor: %s\n", Label(FormFactorOptions, string(*d.FormFactor)))
		if d.NoiseLevel != nil {
			fmt.Fprintf(&b, "- Noise: %s\n", Label(NoiseLevelOptions, string(*d.NoiseLevel)))
		}
		if d.RGBLighting != nil {
			fmt.Fprintf(&b, "- Lighting: %s\n", Label(RGBOptions, string(*d.RGBLighting)))
		}
		if d.PowerEfficiency != nil {
			fmt.Fprintf(&b, "- Power: %s\n", Label(PowerEfficiencyOptions, string(*d.PowerEfficiency)))
		}
		if d.UpgradePath != nil {
			fmt.Fprintf(&b, "- Upgrade path: %s\n", yesNo(*d.UpgradePath))
		}
		b.WriteString("\n")
	}

	var brands []string
	for _, c := range Categories {
		if brand := d.PreferredBrands.Brand(c); brand != NoPreference {
			brands = append(brands, fmt.Sprintf("%s: %s", CategoryLabel(c), brand))
		}
	}
	if len(brands) > 0 {
		b.WriteString("## Brand Preferences\n\n")
		for _, s := range brands {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if selected := d.PeripheralNeeds.SelectedPeripherals(); len(selected) > 0 {
		b.WriteString("## Peripheral Recommendations\n\n")
		for _, id := range selected {
			fmt.Fprintf(&b, "- %s\n", PeripheralLabel(id))
		}
		b.WriteString("\n")
	}

	if len(d.SpecialRequirements) > 0 {
		b.WriteString("## Special Requirements\n\n")
		for _, r := range d.SpecialRequirements {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\n")
	}

	if notes := Text(d.AdditionalNotes); notes != "" {
		b.WriteString("## Additional Notes\n\n")
		b.WriteString(notes)
		b.WriteString("\n\n")
	}

	if d.Email != nil || d.ExperienceLevel != nil {
		b.WriteString("## Contact\n\n")
		if email := Text(d.Email); email != "" {
			fmt.Fprintf(&b, "- Email: %s\n", email)
		}
		if d.ExperienceLevel != nil {
			fmt.Fprintf(&b, "- Experience: %s\n", Label(ExperienceLevelOptions, string(*d.ExperienceLevel)))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
