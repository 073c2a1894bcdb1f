package usecase

import (
	"context"
	"errors"

	"chromaprint/internal/domain/estimator"

	"go.uber.org/zap"
)

var (
	ErrInvalidDimensions  = errors.New("length, width and height must be greater than zero")
	ErrInvalidComplexity  = errors.New("complexity must be between 0.5 and 2.0")
	ErrInvalidInfill      = errors.New("infill must be between 0.05 and 1.0")
	ErrInvalidModelVolume = errors.New("model volume must not be negative")
)

// IEstimateUseCase prices a print job.
//
// The HTTP binding already rejects out-of-range payloads; Estimate checks the
// bounds again so that other callers (the CLI) get the same guarantees.

type IEstimateUseCase interface {
	Estimate(ctx context.Context, in estimator.Input) (estimator.Output, error)
}

type EstimateUseCase struct {
	log *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(log *zap.Logger) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{log: log}
}

func (u *EstimateUseCase) Estimate(_ context.Context, in estimator.Input) (estimator.Output, error) {
	if err := ValidateEstimateInput(in); err != nil {
		return estimator.Output{}, err
	}

	out := estimator.Estimate(in)
	u.log.Debug("estimate computed",
		zap.String("material", in.Material),
		zap.String("finish", in.Finish),
		zap.Float64("volume_cm3", out.Breakdown.VolumeCM3),
		zap.Float64("estimated_cost", out.EstimatedCost),
	)
	return out, nil
}

// ValidateEstimateInput checks the numeric bounds accepted by the estimator.
func ValidateEstimateInput(in estimator.Input) error {
	if in.LengthMM <= 0 || in.WidthMM <= 0 || in.HeightMM <= 0 {
		return ErrInvalidDimensions
	}
	if in.Complexity < estimator.MinComplexity || in.Complexity > estimator.MaxComplexity {
		return ErrInvalidComplexity
	}
	if in.Infill < estimator.MinInfill || in.Infill > estimator.MaxInfill {
		return ErrInvalidInfill
	}
	if in.ModelVolumeMM3 != nil && *in.ModelVolumeMM3 < 0 {
		return ErrInvalidModelVolume
	}
	return nil
}
