package response

import "chromaprint/internal/domain/estimator"

type LineItemsResponse struct {
	Material           float64 `json:"material" yaml:"material"`
	Machine            float64 `json:"machine" yaml:"machine"`
	Handling           float64 `json:"handling" yaml:"handling"`
	SkinToneColorMatch float64 `json:"skin_tone_color_match" yaml:"skin_tone_color_match"`
}

type BreakdownResponse struct {
	VolumeCM3             float64           `json:"volume_cm3" yaml:"volume_cm3"`
	MaterialRateINRPerCM3 float64           `json:"material_rate_inr_per_cm3" yaml:"material_rate_inr_per_cm3"`
	MachineTimeHours      float64           `json:"machine_time_hours" yaml:"machine_time_hours"`
	FinishMultiplier      float64           `json:"finish_multiplier" yaml:"finish_multiplier"`
	Complexity            float64           `json:"complexity" yaml:"complexity"`
	LineItems             LineItemsResponse `json:"line_items" yaml:"line_items"`
}

type EstimateResponse struct {
	Currency      string            `json:"currency" yaml:"currency"`
	EstimatedCost float64           `json:"estimated_cost" yaml:"estimated_cost"`
	Breakdown     BreakdownResponse `json:"breakdown" yaml:"breakdown"`
}

func FromEstimateOutput(out estimator.Output) EstimateResponse {
	b := out.Breakdown
	return EstimateResponse{
		Currency:      out.Currency,
		EstimatedCost: out.EstimatedCost,
		Breakdown: BreakdownResponse{
			VolumeCM3:             b.VolumeCM3,
			MaterialRateINRPerCM3: b.MaterialRateINRPerCM3,
			MachineTimeHours:      b.MachineTimeHours,
			FinishMultiplier:      b.FinishMultiplier,
			Complexity:            b.Complexity,
			LineItems: LineItemsResponse{
				Material:           b.LineItems.Material,
				Machine:            b.LineItems.Machine,
				Handling:           b.LineItems.Handling,
				SkinToneColorMatch: b.LineItems.SkinToneColorMatch,
			},
		},
	}
}
