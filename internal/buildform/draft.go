// Package buildform defines the PC build requirements collected by the intake
// wizard: the partially-filled Draft, the complete Build handed to the
// recommendation process, and the option catalogs each step offers.
package buildform

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
)

// Budget is a spending range in whole currency units. Fractional amounts
// are rounded to the nearest unit when decoded.
type Budget struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func (b *Budget) UnmarshalJSON(data []byte) error {
	var raw struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Min = int(math.Round(raw.Min))
	b.Max = int(math.Round(raw.Max))
	return nil
}

// GamingPerformance is collected only when the gaming use case is selected.
// A nil TargetFPS has not been answered.
type GamingPerformance struct {
	TargetFPS  *int       `json:"targetFPS,omitempty"`
	Resolution Resolution `json:"resolution"`
	Games      []string   `json:"games"`
}

// FPS returns the target frame rate, or DefaultTargetFPS when unanswered.
func (g GamingPerformance) FPS() int {
	if g.TargetFPS == nil {
		return DefaultTargetFPS
	}
	return *g.TargetFPS
}

// FPSLabel renders the target frame rate for display.
func (g GamingPerformance) FPSLabel() string {
	if g.TargetFPS == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d FPS", *g.TargetFPS)
}

// WorkloadRequirements is collected only when a professional workload use
// case is selected.
type WorkloadRequirements struct {
	Software       []string `json:"software"`
	Multitasking   bool     `json:"multitasking"`
	RenderingNeeds bool     `json:"renderingNeeds"`
}

// Brands maps a component category to the preferred brands.
// An empty set means "no preference".
type Brands map[Category][]string

// Peripherals maps a peripheral id (see PeripheralOptions) to whether it is wanted.
type Peripherals map[string]bool

// Draft is the accumulating record of answers. Every field is optional: nil
// means the user has not answered yet. A non-nil empty slice is an explicit
// empty answer.
type Draft struct {
	// Budget & use
	Budget     *Budget  `json:"budget,omitempty"`
	PrimaryUse []string `json:"primaryUse,omitempty"`

	// Performance
	GamingPerformance    *GamingPerformance    `json:"gamingPerformance,omitempty"`
	WorkloadRequirements *WorkloadRequirements `json:"workloadRequirements,omitempty"`

	// Preferences
	PreferredBrands Brands           `json:"preferredBrands,omitempty"`
	FormFactor      *FormFactor      `json:"formFactor,omitempty"`
	NoiseLevel      *NoiseLevel      `json:"noiseLevel,omitempty"`
	PowerEfficiency *PowerEfficiency `json:"powerEfficiency,omitempty"`
	UpgradePath     *bool            `json:"upgradePath,omitempty"`
	RGBLighting     *RGBLighting     `json:"rgbLighting,omitempty"`

	// Peripherals & extras
	PeripheralNeeds     Peripherals `json:"peripheralNeeds,omitempty"`
	SpecialRequirements []string    `json:"specialRequirements,omitempty"`
	AdditionalNotes     *string     `json:"additionalNotes,omitempty"`

	// Contact
	Email           *string          `json:"email,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experienceLevel,omitempty"`
}

// Build is a Draft accepted for submission.
type Build Draft

// Ptr returns a pointer to v. Handy for filling optional Draft fields.
func Ptr[T any](v T) *T {
	return &v
}

// HasUse reports whether tag is among the selected primary uses.
func (d Draft) HasUse(tag string) bool {
	return slices.Contains(d.PrimaryUse, tag)
}

// NeedsGaming reports whether gaming performance answers apply.
func (d Draft) NeedsGaming() bool {
	return d.HasUse(UseGaming)
}

// NeedsWorkload reports whether any professional workload tag is selected.
func (d Draft) NeedsWorkload() bool {
	for _, tag := range d.PrimaryUse {
		if IsWorkloadTag(tag) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no field has been answered.
func (d Draft) IsEmpty() bool {
	return d.Budget == nil &&
		d.PrimaryUse == nil &&
		d.GamingPerformance == nil &&
		d.WorkloadRequirements == nil &&
		d.PreferredBrands == nil &&
		d.FormFactor == nil &&
		d.NoiseLevel == nil &&
		d.PowerEfficiency == nil &&
		d.UpgradePath == nil &&
		d.RGBLighting == nil &&
		d.PeripheralNeeds == nil &&
		d.SpecialRequirements == nil &&
		d.AdditionalNotes == nil &&
		d.Email == nil &&
		d.ExperienceLevel == nil
}

// Merge returns d with every answered top-level field of partial copied over
// it. Nested objects are replaced wholesale, not merged.
func (d Draft) Merge(partial Draft) Draft {
	out := d.Clone()
	p := partial.Clone()

	if p.Budget != nil {
		out.Budget = p.Budget
	}
	if p.PrimaryUse != nil {
		out.PrimaryUse = p.PrimaryUse
	}
	if p.GamingPerformance != nil {
		out.GamingPerformance = p.GamingPerformance
	}
	if p.WorkloadRequirements != nil {
		out.WorkloadRequirements = p.WorkloadRequirements
	}
	if p.PreferredBrands != nil {
		out.PreferredBrands = p.PreferredBrands
	}
	if p.FormFactor != nil {
		out.FormFactor = p.FormFactor
	}
	if p.NoiseLevel != nil {
		out.NoiseLevel = p.NoiseLevel
	}
	if p.PowerEfficiency != nil {
		out.PowerEfficiency = p.PowerEfficiency
	}
	if p.UpgradePath != nil {
		out.UpgradePath = p.UpgradePath
	}
	if p.RGBLighting != nil {
		out.RGBLighting = p.RGBLighting
	}
	if p.PeripheralNeeds != nil {
		out.PeripheralNeeds = p.PeripheralNeeds
	}
	if p.SpecialRequirements != nil {
		out.SpecialRequirements = p.SpecialRequirements
	}
	if p.AdditionalNotes != nil {
		out.AdditionalNotes = p.AdditionalNotes
	}
	if p.Email != nil {
		out.Email = p.Email
	}
	if p.ExperienceLevel != nil {
		out.ExperienceLevel = p.ExperienceLevel
	}
	return out
}

// Clone returns a deep copy so snapshots handed to callers never alias the
// controller's own draft.
func (d Draft) Clone() Draft {
	out := Draft{
		PrimaryUse:          slices.Clone(d.PrimaryUse),
		PeripheralNeeds:     maps.Clone(d.PeripheralNeeds),
		SpecialRequirements: slices.Clone(d.SpecialRequirements),
	}
	if d.Budget != nil {
		out.Budget = Ptr(*d.Budget)
	}
	if d.GamingPerformance != nil {
		gp := *d.GamingPerformance
		gp.TargetFPS = clonePtr(gp.TargetFPS)
		gp.Games = slices.Clone(gp.Games)
		out.GamingPerformance = &gp
	}
	if d.WorkloadRequirements != nil {
		wr := *d.WorkloadRequirements
		wr.Software = slices.Clone(wr.Software)
		out.WorkloadRequirements = &wr
	}
	if d.PreferredBrands != nil {
		out.PreferredBrands = make(Brands, len(d.PreferredBrands))
		for cat, brands := range d.PreferredBrands {
			out.PreferredBrands[cat] = slices.Clone(brands)
		}
	}
	out.FormFactor = clonePtr(d.FormFactor)
	out.NoiseLevel = clonePtr(d.NoiseLevel)
	out.PowerEfficiency = clonePtr(d.PowerEfficiency)
	out.UpgradePath = clonePtr(d.UpgradePath)
	out.RGBLighting = clonePtr(d.RGBLighting)
	out.AdditionalNotes = clonePtr(d.AdditionalNotes)
	out.Email = clonePtr(d.Email)
	out.ExperienceLevel = clonePtr(d.ExperienceLevel)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Marshal encodes a draft as JSON using the field names of the intake form.
func Marshal(d Draft) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling draft: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a JSON draft.
func Unmarshal(data []byte) (Draft, error) {
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, fmt.Errorf("parsing draft: %w", err)
	}
	return d, nil
}

// Text returns the value of an optional string field, or "".
func Text[T ~string](p *T) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
