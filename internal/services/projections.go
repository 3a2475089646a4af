package services

import (
	"context"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/errs"
)

const maxProjectionYears = 100

// projectionService validates requests and delegates to the pure projection
// functions. It holds no state.
type projectionService struct{}

func NewProjectionService() *projectionService {
	return &projectionService{}
}

func (s *projectionService) Growth(_ context.Context, req dto.GrowthProjectionRequest) (dto.GrowthProjectionResult, error) {
	if len(req.Rates) == 0 {
		return dto.GrowthProjectionResult{}, errs.NewValidationError("rates must contain at least one annual rate")
	}
	if err := validateYears(req.Years); err != nil {
		return dto.GrowthProjectionResult{}, err
	}
	return dto.GrowthProjectionResult{
		Series: ProjectGrowth(req.CurrentValue, req.MonthlyContribution, req.Rates, req.Years),
	}, nil
}

func (s *projectionService) Sip(_ context.Context, req dto.SipProjectionRequest) (dto.SipProjectionResult, error) {
	if err := validateYears(req.Years); err != nil {
		return dto.SipProjectionResult{}, err
	}
	return dto.SipProjectionResult{
		Series: ProjectSip(req.MonthlyContribution, req.AnnualReturn, req.Years),
	}, nil
}

func validateYears(years int) error {
	if years < 0 || years > maxProjectionYears {
		return errs.NewValidationError("years must be between 0 and 100")
	}
	return nil
}
