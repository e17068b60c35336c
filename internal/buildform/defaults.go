package buildform

// Initial answers offered when a step is first shown.
const (
	DefaultBudgetMin  = 1000
	DefaultBudgetMax  = 2000
	DefaultTargetFPS  = 60
	DefaultResolution = Resolution1080p
)

// StepDefaults returns the partial update a front end applies when step is
// first shown: every field the step owns that d has not answered yet,
// filled with its initial value. Answered fields are left out so merging the
// result never overwrites the user's input.
func StepDefaults(step int, d Draft) Draft {
	var p Draft
	switch step {
	case 1:
		if d.Budget == nil {
			p.Budget = &Budget{Min: DefaultBudgetMin, Max: DefaultBudgetMax}
		}
		if d.PrimaryUse == nil {
			p.PrimaryUse = []string{}
		}
	case 2:
		if d.NeedsGaming() && d.GamingPerformance == nil {
			p.GamingPerformance = &GamingPerformance{
				TargetFPS:  Ptr(DefaultTargetFPS),
				Resolution: DefaultResolution,
				Games:      []string{},
			}
		}
		if d.NeedsWorkload() && d.WorkloadRequirements == nil {
			p.WorkloadRequirements = &WorkloadRequirements{Software: []string{}}
		}
	case 3:
		if d.PreferredBrands == nil {
			p.PreferredBrands = make(Brands, len(Categories))
			for _, c := range Categories {
				p.PreferredBrands[c] = []string{}
			}
		}
		if d.FormFactor == nil {
			p.FormFactor = Ptr(FormFactorMidTower)
		}
		if d.NoiseLevel == nil {
			p.NoiseLevel = Ptr(NoiseBalanced)
		}
		if d.PowerEfficiency == nil {
			p.PowerEfficiency = Ptr(PowerBalanced)
		}
		if d.UpgradePath == nil {
			p.UpgradePath = Ptr(true)
		}
		if d.RGBLighting == nil {
			p.RGBLighting = Ptr(RGBMinimal)
		}
	case 4:
		if d.PeripheralNeeds == nil {
			p.PeripheralNeeds = make(Peripherals, len(PeripheralOptions))
			for _, o := range PeripheralOptions {
				p.PeripheralNeeds[o.Value] = false
			}
		}
		if d.SpecialRequirements == nil {
			p.SpecialRequirements = []string{}
		}
		if d.AdditionalNotes == nil {
			p.AdditionalNotes = Ptr("")
		}
	}
	return p
}
