package buildform

import "slices"

// Use-case tags.
const (
	UseGaming          = "gaming"
	UseContentCreation = "content-creation"
	UseProgramming     = "programming"
	UseAIML            = "ai-ml"
	UseOfficeWork      = "office-work"
	UseDesign          = "design"
	UseStreaming       = "streaming"
	UseWorkstation     = "workstation"
)

// Resolution is a gaming target resolution.
type Resolution string

const (
	Resolution1080p     Resolution = "1080p"
	Resolution1440p     Resolution = "1440p"
	Resolution4K        Resolution = "4k"
	ResolutionUltrawide Resolution = "ultrawide"
)

// FormFactor is the case size preference.
type FormFactor string

const (
	FormFactorATX      FormFactor = "atx"
	FormFactorMidTower FormFactor = "mid-tower"
	FormFactorMiniITX  FormFactor = "mini-itx"
	FormFactorMicroATX FormFactor = "micro-atx"
)

// NoiseLevel is the acoustic preference.
type NoiseLevel string

const (
	NoiseSilent      NoiseLevel = "silent"
	NoiseQuiet       NoiseLevel = "quiet"
	NoiseBalanced    NoiseLevel = "balanced"
	NoisePerformance NoiseLevel = "performance"
)

// PowerEfficiency is the power draw preference.
type PowerEfficiency string

const (
	PowerEco         PowerEfficiency = "eco"
	PowerBalanced    PowerEfficiency = "balanced"
	PowerPerformance PowerEfficiency = "performance"
)

// RGBLighting is the lighting preference.
type RGBLighting string

const (
	RGBNone     RGBLighting = "none"
	RGBMinimal  RGBLighting = "minimal"
	RGBModerate RGBLighting = "moderate"
	RGBMaximum  RGBLighting = "maximum"
)

// ExperienceLevel is the user's PC building experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// Category is a component category used for brand preferences.
type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryGPU         Category = "gpu"
	CategoryMotherboard Category = "motherboard"
	CategoryRAM         Category = "ram"
	CategoryStorage     Category = "storage"
	CategoryPSU         Category = "psu"
	CategoryCase        Category = "case"
)

// NoPreference is the brand choice that clears a category.
const NoPreference = "No Preference"

// Option is a selectable value with display text.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// BudgetPreset is a named budget range.
type BudgetPreset struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// Budget slider bounds offered by front ends.
const (
	BudgetSliderMin  = 300
	BudgetSliderMax  = 8000
	BudgetSliderStep = 50
)

// Target FPS slider bounds offered by front ends.
const (
	FPSSliderMin  = 30
	FPSSliderMax  = 240
	FPSSliderStep = 15
)

var UseCaseOptions = []Option{
	{UseGaming, "Gaming", "High-performance gaming at various resolutions"},
	{UseContentCreation, "Content Creation", "Video editing, streaming, content production"},
	{UseProgramming, "Programming", "Software development, coding, IDEs"},
	{UseAIML, "AI/Machine Learning", "Deep learning, neural networks, data science"},
	{UseOfficeWork, "Office & Productivity", "Documents, spreadsheets, web browsing"},
	{UseDesign, "3D Design & CAD", "AutoCAD, Blender, 3D modeling"},
	{UseStreaming, "Live Streaming", "Broadcasting, OBS, multi-cam setup"},
	{UseWorkstation, "Professional Workstation", "CAD, rendering, scientific computing"},
}

// workloadTags are the use cases that collect workload requirements.
var workloadTags = []string{UseContentCreation, UseAIML, UseProgramming}

// IsWorkloadTag reports whether tag is a professional workload use case.
func IsWorkloadTag(tag string) bool {
	return slices.Contains(workloadTags, tag)
}

var BudgetPresets = []BudgetPreset{
	{"Budget Build", 500, 800},
	{"Mid-Range", 800, 1500},
	{"High-End", 1500, 2500},
	{"Enthusiast", 2500, 4000},
	{"No Limits", 4000, 8000},
}

var ResolutionOptions = []Option{
	{string(Resolution1080p), "1080p (1920x1080)", "Standard HD gaming"},
	{string(Resolution1440p), "1440p (2560x1440)", "High-resolution gaming"},
	{string(Resolution4K), "4K (3840x2160)", "Ultra high-resolution"},
	{string(ResolutionUltrawide), "Ultrawide (3440x1440)", "Immersive widescreen"},
}

var PopularGames = []string{
	"Cyberpunk 2077", "Call of Duty", "Valorant", "Fortnite", "Apex Legends",
	"League of Legends", "Counter-Strike 2", "Elden Ring", "Hogwarts Legacy",
	"Microsoft Flight Simulator", "Red Dead Redemption 2", "GTA V",
}

var WorkloadSoftware = []string{
	"Adobe Premiere Pro", "Adobe After Effects", "DaVinci Resolve", "Blender",
	"AutoCAD", "SolidWorks", "Maya", "Cinema 4D", "Unity", "Unreal Engine",
	"OBS Studio", "Streamlabs", "Visual Studio", "PyTorch", "TensorFlow",
}

// Categories lists brand categories in display order.
var Categories = []Category{
	CategoryCPU, CategoryGPU, CategoryMotherboard, CategoryRAM,
	CategoryStorage, CategoryPSU, CategoryCase,
}

var BrandOptions = map[Category][]string{
	CategoryCPU:         {"Intel", "AMD", NoPreference},
	CategoryGPU:         {"NVIDIA", "AMD", NoPreference},
	CategoryMotherboard: {"ASUS", "MSI", "Gigabyte", "ASRock", NoPreference},
	CategoryRAM:         {"Corsair", "G.Skill", "Kingston", "Crucial", NoPreference},
	CategoryStorage:     {"Samsung", "Western Digital", "Seagate", "Crucial", NoPreference},
	CategoryPSU:         {"Corsair", "EVGA", "Seasonic", "be quiet!", NoPreference},
	CategoryCase:        {"Corsair", "NZXT", "Fractal Design", "Cooler Master", NoPreference},
}

// CategoryLabel returns the display name of a component category.
func CategoryLabel(c Category) string {
	switch c {
	case CategoryCPU:
		return "CPU"
	case CategoryGPU:
		return "Graphics Card"
	case CategoryMotherboard:
		return "Motherboard"
	case CategoryRAM:
		return "RAM"
	case CategoryStorage:
		return "Storage"
	case CategoryPSU:
		return "Power Supply"
	case CategoryCase:
		return "Case"
	}
	return string(c)
}

// WithBrand returns a copy of b with category set to the single brand, or
// cleared when brand is NoPreference.
func (b Brands) WithBrand(category Category, brand string) Brands {
	out := make(Brands, len(b)+1)
	for cat, brands := range b {
		out[cat] = slices.Clone(brands)
	}
	if brand == NoPreference || brand == "" {
		out[category] = []string{}
	} else {
		out[category] = []string{brand}
	}
	return out
}

// Brand returns the first preferred brand for category, or NoPreference.
func (b Brands) Brand(category Category) string {
	if brands := b[category]; len(brands) > 0 {
		return brands[0]
	}
	return NoPreference
}

var FormFactorOptions = []Option{
	{string(FormFactorATX), "ATX Full Tower", "Maximum expandability and cooling"},
	{string(FormFactorMidTower), "Mid Tower", "Best balance of size and features"},
	{string(FormFactorMiniITX), "Mini-ITX", "Compact and space-efficient"},
	{string(FormFactorMicroATX), "Micro-ATX", "Smaller with good features"},
}

var NoiseLevelOptions = []Option{
	{string(NoiseSilent), "Silent", "Prioritize quiet operation"},
	{string(NoiseQuiet), "Quiet", "Low noise levels"},
	{string(NoiseBalanced), "Balanced", "Balance between noise and performance"},
	{string(NoisePerformance), "Performance", "Maximum performance, noise acceptable"},
}

var PowerEfficiencyOptions = []Option{
	{string(PowerEco), "Eco-Friendly", "Minimize power consumption"},
	{string(PowerBalanced), "Balanced", "Good efficiency with performance"},
	{string(PowerPerformance), "Performance", "Maximum performance regardless of power"},
}

var RGBOptions = []Option{
	{string(RGBNone), "No RGB", "Clean, professional look"},
	{string(RGBMinimal), "Minimal RGB", "Subtle accent lighting"},
	{string(RGBModerate), "Moderate RGB", "Balanced RGB throughout"},
	{string(RGBMaximum), "Maximum RGB", "Full RGB light show"},
}

var PeripheralOptions = []Option{
	{"monitor", "Monitor", "Display for your new PC"},
	{"keyboard", "Keyboard", "Mechanical or membrane keyboard"},
	{"mouse", "Gaming Mouse", "High-precision gaming mouse"},
	{"headset", "Headset", "Gaming or professional headset"},
	{"speakers", "Speakers", "Desktop speakers or sound system"},
	{"webcam", "Webcam", "For streaming or video calls"},
	{"vr", "VR Headset", "Virtual reality gaming setup"},
}

var SpecialRequirementOptions = []string{
	"Silent/Quiet Operation",
	"Small Form Factor (Mini-ITX)",
	"Multiple Monitor Support (3+)",
	"VR Ready Build",
	"Streaming Setup",
	"Content Creation Focused",
	"Server/NAS Capabilities",
	"Portable/LAN Party Build",
	"Energy Efficient Build",
	"Future-Proof/Upgradeable",
	"Budget Constraint Priority",
	"Specific Color Theme",
}

var ExperienceLevelOptions = []Option{
	{string(ExperienceBeginner), "Beginner", "First build, guide me through it"},
	{string(ExperienceIntermediate), "Intermediate", "Built one or two before"},
	{string(ExperienceAdvanced), "Advanced", "Comfortable picking parts"},
	{string(ExperienceExpert), "Expert", "Just give me the parts list"},
}

// Label looks up the display label of value in options, falling back to value.
func Label(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// UseCaseLabel returns the display label of a use-case tag.
func UseCaseLabel(tag string) string {
	return Label(UseCaseOptions, tag)
}

// PeripheralLabel returns the display label of a peripheral id.
func PeripheralLabel(id string) string {
	return Label(PeripheralOptions, id)
}

// SelectedPeripherals returns wanted peripheral ids in catalog order.
func (p Peripherals) SelectedPeripherals() []string {
	var out []string
	for _, o := range PeripheralOptions {
		if p[o.Value] {
			out = append(out, o.Value)
		}
	}
	return out
}

// Toggle returns a copy of list with item added or removed.
func Toggle(list []string, item string) []string {
	if i := slices.Index(list, item); i >= 0 {
		return slices.Delete(slices.Clone(list), i, i+1)
	}
	return append(slices.Clone(list), item)
}
