package testfixtures

import (
	"time"

	"github.com/mark3labs/rigwizard/internal/buildform"
)

// Fixed test values for consistent assertions
const (
	FixedEmail   = "builder@example.com"
	FixedProfile = "test-profile"
)

var (
	FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
)

// EmptyDraft returns a draft with nothing answered.
func EmptyDraft() buildform.Draft {
	return buildform.Draft{}
}

// OfficeDraft returns a draft that passes every step without a gaming block.
func OfficeDraft() buildform.Draft {
	return buildform.Draft{
		Budget:          &buildform.Budget{Min: 800, Max: 1200},
		PrimaryUse:      []string{buildform.UseOfficeWork},
		FormFactor:      buildform.Ptr(buildform.FormFactorMicroATX),
		NoiseLevel:      buildform.Ptr(buildform.NoiseQuiet),
		PowerEfficiency: buildform.Ptr(buildform.PowerEco),
		UpgradePath:     buildform.Ptr(true),
		RGBLighting:     buildform.Ptr(buildform.RGBNone),
		PeripheralNeeds: buildform.Peripherals{"monitor": true},
		Email:           buildform.Ptr(FixedEmail),
		ExperienceLevel: buildform.Ptr(buildform.ExperienceBeginner),
	}
}

// GamingDraft returns a gaming draft that passes every step.
func GamingDraft() buildform.Draft {
	return buildform.Draft{
		Budget:     &buildform.Budget{Min: 1500, Max: 2500},
		PrimaryUse: []string{buildform.UseGaming, buildform.UseStreaming},
		GamingPerformance: &buildform.GamingPerformance{
			TargetFPS:  buildform.Ptr(144),
			Resolution: buildform.Resolution1440p,
			Games:      []string{"Cyberpunk 2077", "Valorant"},
		},
		PreferredBrands: buildform.Brands{
			buildform.CategoryGPU: {"NVIDIA"},
		},
		FormFactor:      buildform.Ptr(buildform.FormFactorMidTower),
		NoiseLevel:      buildform.Ptr(buildform.NoiseBalanced),
		PowerEfficiency: buildform.Ptr(buildform.PowerPerformance),
		UpgradePath:     buildform.Ptr(true),
		RGBLighting:     buildform.Ptr(buildform.RGBModerate),
		PeripheralNeeds: buildform.Peripherals{"monitor": true, "keyboard": true},
		AdditionalNotes: buildform.Ptr("Prefer white parts"),
		Email:           buildform.Ptr(FixedEmail),
		ExperienceLevel: buildform.Ptr(buildform.ExperienceIntermediate),
	}
}
