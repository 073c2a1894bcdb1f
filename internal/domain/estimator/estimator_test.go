package estimator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func volume(v float64) *float64 { return &v }

func TestEstimate_BoundingBoxPLAStandard(t *testing.T) {
	out := Estimate(Input{
		LengthMM:   100,
		WidthMM:    100,
		HeightMM:   100,
		Material:   MaterialPLA,
		Finish:     FinishStandard,
		Complexity: 1.0,
		Infill:     0.2,
	})

	assert.Equal(t, "INR", out.Currency)
	assert.InDelta(t, 3484.0, out.EstimatedCost, tolerance)

	b := out.Breakdown
	assert.InDelta(t, 176.0, b.VolumeCM3, tolerance)
	assert.InDelta(t, 4.0, b.MaterialRateINRPerCM3, tolerance)
	assert.InDelta(t, 22.0, b.MachineTimeHours, tolerance)
	assert.InDelta(t, 1.0, b.FinishMultiplier, tolerance)
	assert.InDelta(t, 1.0, b.Complexity, tolerance)
	assert.InDelta(t, 704.0, b.LineItems.Material, tolerance)
	assert.InDelta(t, 2640.0, b.LineItems.Machine, tolerance)
	assert.InDelta(t, 80.0, b.LineItems.Handling, tolerance)
	assert.InDelta(t, 60.0, b.LineItems.SkinToneColorMatch, tolerance)
}

func TestEstimate_ModelVolumeResinHighGloss(t *testing.T) {
	out := Estimate(Input{
		LengthMM:       50,
		WidthMM:        50,
		HeightMM:       50,
		Material:       MaterialResin,
		Finish:         FinishHighGloss,
		Complexity:     1.5,
		Infill:         0.5,
		ModelVolumeMM3: volume(10000),
	})

	assert.InDelta(t, 536.25, out.EstimatedCost, tolerance)

	b := out.Breakdown
	assert.InDelta(t, 5.0, b.VolumeCM3, tolerance)
	assert.InDelta(t, 12.0, b.MaterialRateINRPerCM3, tolerance)
	assert.InDelta(t, 0.62, b.MachineTimeHours, tolerance, "0.625 rounds half to even")
	assert.InDelta(t, 1.3, b.FinishMultiplier, tolerance)
	assert.InDelta(t, 1.5, b.Complexity, tolerance)
	assert.InDelta(t, 60.0, b.LineItems.Material, tolerance)
	assert.InDelta(t, 75.0, b.LineItems.Machine, tolerance)
}

func TestEstimate_PriceFloor(t *testing.T) {
	out := Estimate(Input{
		LengthMM:   1,
		WidthMM:    1,
		HeightMM:   1,
		Material:   MaterialPLA,
		Finish:     FinishStandard,
		Complexity: 0.5,
		Infill:     0.05,
	})

	assert.InDelta(t, 150.0, out.EstimatedCost, tolerance)
	assert.InDelta(t, 0.5, out.Breakdown.MachineTimeHours, tolerance)
	assert.InDelta(t, 0.0, out.Breakdown.VolumeCM3, tolerance)
}

func TestEstimate_ModelVolumeClampsInfill(t *testing.T) {
	low := Estimate(Input{Material: MaterialPLA, Complexity: 1, Infill: 0.01, ModelVolumeMM3: volume(100000)})
	high := Estimate(Input{Material: MaterialPLA, Complexity: 1, Infill: 3, ModelVolumeMM3: volume(100000)})

	assert.InDelta(t, 5.0, low.Breakdown.VolumeCM3, tolerance)
	assert.InDelta(t, 100.0, high.Breakdown.VolumeCM3, tolerance)
}

func TestEstimate_ZeroModelVolumeUsesBoundingBox(t *testing.T) {
	withZero := Estimate(Input{LengthMM: 100, WidthMM: 100, HeightMM: 100, Material: MaterialPLA, Complexity: 1, Infill: 0.2, ModelVolumeMM3: volume(0)})
	without := Estimate(Input{LengthMM: 100, WidthMM: 100, HeightMM: 100, Material: MaterialPLA, Complexity: 1, Infill: 0.2})

	assert.Equal(t, without, withZero)
}

func TestEstimate_UnknownMaterialAndFinishFallBack(t *testing.T) {
	out := Estimate(Input{LengthMM: 100, WidthMM: 100, HeightMM: 100, Material: "Unobtainium", Finish: "Chrome", Complexity: 1, Infill: 0.2})

	assert.InDelta(t, DefaultMaterialRate, out.Breakdown.MaterialRateINRPerCM3, tolerance)
	assert.InDelta(t, DefaultFinishMultiplier, out.Breakdown.FinishMultiplier, tolerance)
	assert.InDelta(t, 880.0, out.Breakdown.LineItems.Material, tolerance)

	// lookups are case-sensitive
	assert.InDelta(t, DefaultMaterialRate, MaterialRate("pla"), tolerance)
	assert.InDelta(t, DefaultFinishMultiplier, FinishMultiplier("matte"), tolerance)
}

func TestRateTables(t *testing.T) {
	rates := map[string]float64{"PLA": 4.0, "ABS": 5.0, "Resin": 12.0, "Nylon": 9.0, "PETG": 6.0}
	for _, m := range Materials() {
		assert.InDelta(t, rates[m], MaterialRate(m), tolerance, m)
	}
	assert.Len(t, Materials(), len(rates))

	multipliers := map[string]float64{"Standard": 1.0, "Smooth": 1.15, "High-Gloss": 1.3, "Matte": 1.1}
	for _, f := range Finishes() {
		assert.InDelta(t, multipliers[f], FinishMultiplier(f), tolerance, f)
	}
	assert.Len(t, Finishes(), len(multipliers))
}

// grid spans the validated input domain.
func grid() []Input {
	var inputs []Input
	dims := []float64{0.1, 1, 10, 55.5, 250}
	for _, d := range dims {
		for _, m := range append(Materials(), "Other") {
			for _, f := range append(Finishes(), "Other") {
				for _, c := range []float64{MinComplexity, 1, 1.37, MaxComplexity} {
					for _, i := range []float64{MinInfill, 0.2, 0.6, MaxInfill} {
						inputs = append(inputs, Input{LengthMM: d, WidthMM: d * 2, HeightMM: d, Material: m, Finish: f, Complexity: c, Infill: i})
					}
				}
			}
		}
	}
	return inputs
}

func TestEstimate_NeverBelowFloorAndMinimumMachineTime(t *testing.T) {
	for _, in := range grid() {
		out := Estimate(in)
		require.GreaterOrEqual(t, out.EstimatedCost, 150.0, "%+v", in)
		require.GreaterOrEqual(t, out.Breakdown.MachineTimeHours, 0.5, "%+v", in)
	}

	zero := Estimate(Input{Material: MaterialPLA, Complexity: 1, Infill: 0.2})
	assert.InDelta(t, 0.5, zero.Breakdown.MachineTimeHours, tolerance)
}

func TestEstimate_MonotonicInComplexity(t *testing.T) {
	for _, in := range grid() {
		prev := -1.0
		for c := MinComplexity; c <= MaxComplexity+tolerance; c += 0.25 {
			in.Complexity = c
			got := Estimate(in).EstimatedCost
			require.GreaterOrEqual(t, got, prev, "complexity %.2f %+v", c, in)
			prev = got
		}
	}
}

func TestEstimate_MonotonicInInfillWithoutModelVolume(t *testing.T) {
	for _, in := range grid() {
		prev := -1.0
		for i := MinInfill; i <= MaxInfill+tolerance; i += 0.05 {
			in.Infill = i
			got := Estimate(in).EstimatedCost
			require.GreaterOrEqual(t, got, prev, "infill %.2f %+v", i, in)
			prev = got
		}
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	for _, in := range grid() {
		require.Equal(t, Estimate(in), Estimate(in))
	}
}

func TestEstimate_ConcurrentCallers(t *testing.T) {
	in := Input{LengthMM: 100, WidthMM: 100, HeightMM: 100, Material: MaterialPLA, Finish: FinishStandard, Complexity: 1, Infill: 0.2}
	want := Estimate(in)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Estimate(in); got != want {
				errs <- fmt.Errorf("got %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestRound2_HalfToEven(t *testing.T) {
	assert.InDelta(t, 0.62, round2(0.625), tolerance)
	assert.InDelta(t, 0.38, round2(0.375), tolerance)
	assert.InDelta(t, 1.12, round2(1.125), tolerance)
	assert.InDelta(t, 536.25, round2(536.25), tolerance)
	assert.InDelta(t, 0.67, round2(0.666), tolerance)
}
