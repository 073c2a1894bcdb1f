package request

import "chromaprint/internal/domain/estimator"

// EstimateRequest is the payload of POST /api/estimate.
//
// Optional numbers are pointers so that an explicit 0 is validated instead of
// being mistaken for an omitted field. Material and finish are pointers too:
// the keys are required but an empty value is just an unknown name.
type EstimateRequest struct {
	LengthMM       float64  `json:"length_mm" binding:"required,gt=0"`
	WidthMM        float64  `json:"width_mm" binding:"required,gt=0"`
	HeightMM       float64  `json:"height_mm" binding:"required,gt=0"`
	Material       *string  `json:"material" binding:"required"`
	Finish         *string  `json:"finish" binding:"required"`
	Complexity     *float64 `json:"complexity" binding:"omitempty,gte=0.5,lte=2"`
	Infill         *float64 `json:"infill" binding:"omitempty,gte=0.05,lte=1"`
	ModelVolumeMM3 *float64 `json:"model_volume_mm3" binding:"omitempty,gte=0"`
}

// ToInput applies the estimator defaults to omitted optional fields.
func (r EstimateRequest) ToInput() estimator.Input {
	in := estimator.Input{
		LengthMM:       r.LengthMM,
		WidthMM:        r.WidthMM,
		HeightMM:       r.HeightMM,
		Complexity:     estimator.DefaultComplexity,
		Infill:         estimator.DefaultInfill,
		ModelVolumeMM3: r.ModelVolumeMM3,
	}
	if r.Material != nil {
		in.Material = *r.Material
	}
	if r.Finish != nil {
		in.Finish = *r.Finish
	}
	if r.Complexity != nil {
		in.Complexity = *r.Complexity
	}
	if r.Infill != nil {
		in.Infill = *r.Infill
	}
	return in
}
