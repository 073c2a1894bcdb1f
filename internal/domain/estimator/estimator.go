// Package estimator prices a 3D print job from its physical parameters.
//
// Estimate is a pure function over two immutable rate tables. Callers are
// expected to validate numeric bounds beforehand; unknown materials and
// finishes fall back to a neutral rate instead of failing.
package estimator

import "math"

const (
	Currency = "INR"

	DefaultComplexity = 1.0
	DefaultInfill     = 0.2

	MinComplexity = 0.5
	MaxComplexity = 2.0
	MinInfill     = 0.05
	MaxInfill     = 1.0

	DefaultMaterialRate     = 5.0
	DefaultFinishMultiplier = 1.0

	// Bounding-box approximation: a 2% shell is always printed, the interior
	// contributes up to 78% of the box at full infill.
	shellFraction  = 0.02
	infillFraction = 0.78

	mm3PerCM3             = 1000.0
	cm3PerMachineHour     = 8.0
	minMachineHours       = 0.5
	machineRatePerHour    = 120.0
	handlingCost          = 80.0
	skinToneColorMatchFee = 60.0
	minEstimatedCost      = 150.0
)

const (
	MaterialPLA   = "PLA"
	MaterialABS   = "ABS"
	MaterialResin = "Resin"
	MaterialNylon = "Nylon"
	MaterialPETG  = "PETG"

	FinishStandard  = "Standard"
	FinishSmooth    = "Smooth"
	FinishHighGloss = "High-Gloss"
	FinishMatte     = "Matte"
)

// INR per cm³.
var materialRates = map[string]float64{
	MaterialPLA:   4.0,
	MaterialABS:   5.0,
	MaterialResin: 12.0,
	MaterialNylon: 9.0,
	MaterialPETG:  6.0,
}

var finishMultipliers = map[string]float64{
	FinishStandard:  1.0,
	FinishSmooth:    1.15,
	FinishHighGloss: 1.3,
	FinishMatte:     1.1,
}

// Input holds the print job parameters. ModelVolumeMM3 is optional and, when
// positive, replaces the bounding-box approximation.
type Input struct {
	LengthMM       float64
	WidthMM        float64
	HeightMM       float64
	Material       string
	Finish         string
	Complexity     float64
	Infill         float64
	ModelVolumeMM3 *float64
}

type LineItems struct {
	Material           float64
	Machine            float64
	Handling           float64
	SkinToneColorMatch float64
}

type Breakdown struct {
	VolumeCM3             float64
	MaterialRateINRPerCM3 float64
	MachineTimeHours      float64
	FinishMultiplier      float64
	Complexity            float64
	LineItems             LineItems
}

type Output struct {
	Currency      string
	EstimatedCost float64
	Breakdown     Breakdown
}

// Estimate computes the price of a print job. All intermediate values keep
// full precision; only the returned figures are rounded to two decimals.
func Estimate(in Input) Output {
	volumeCM3 := volumeMM3(in) / mm3PerCM3

	rate := MaterialRate(in.Material)
	finish := FinishMultiplier(in.Finish)

	materialCost := volumeCM3 * rate
	machineHours := math.Max(minMachineHours, volumeCM3/cm3PerMachineHour)
	machineCost := machineHours * machineRatePerHour

	subtotal := (materialCost + machineCost + handlingCost + skinToneColorMatchFee) * in.Complexity
	total := math.Max(minEstimatedCost, subtotal*finish)

	return Output{
		Currency:      Currency,
		EstimatedCost: round2(total),
		Breakdown: Breakdown{
			VolumeCM3:             round2(volumeCM3),
			MaterialRateINRPerCM3: round2(rate),
			MachineTimeHours:      round2(machineHours),
			FinishMultiplier:      round2(finish),
			Complexity:            round2(in.Complexity),
			LineItems: LineItems{
				Material:           round2(materialCost),
				Machine:            round2(machineCost),
				Handling:           round2(handlingCost),
				SkinToneColorMatch: round2(skinToneColorMatchFee),
			},
		},
	}
}

func volumeMM3(in Input) float64 {
	if in.ModelVolumeMM3 != nil && *in.ModelVolumeMM3 > 0 {
		return *in.ModelVolumeMM3 * clamp(in.Infill, MinInfill, MaxInfill)
	}
	bbox := in.LengthMM * in.WidthMM * in.HeightMM
	return bbox * (shellFraction + infillFraction*in.Infill)
}

// MaterialRate returns the INR/cm³ rate of a material, DefaultMaterialRate
// when the material is unknown.
func MaterialRate(material string) float64 {
	if rate, ok := materialRates[material]; ok {
		return rate
	}
	return DefaultMaterialRate
}

// FinishMultiplier returns the price multiplier of a finish,
// DefaultFinishMultiplier when the finish is unknown.
func FinishMultiplier(finish string) float64 {
	if m, ok := finishMultipliers[finish]; ok {
		return m
	}
	return DefaultFinishMultiplier
}

// Materials lists the known materials in catalog order.
func Materials() []string {
	return []string{MaterialPLA, MaterialABS, MaterialResin, MaterialNylon, MaterialPETG}
}

// Finishes lists the known finishes in catalog order.
func Finishes() []string {
	return []string{FinishStandard, FinishSmooth, FinishHighGloss, FinishMatte}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round2 rounds half to even, so 0.625 becomes 0.62.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
