package services

import (
	"context"
	"errors"
	"testing"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/errs"
)

func TestProjectionGrowth(t *testing.T) {
	svc := NewProjectionService()

	got, err := svc.Growth(context.Background(), dto.GrowthProjectionRequest{
		CurrentValue:        100000,
		MonthlyContribution: 5000,
		Rates:               []float64{0.08, 0.12},
		Years:               10,
	})
	if err != nil {
		t.Fatalf("Growth error: %v", err)
	}
	if len(got.Series) != 2 {
		t.Fatalf("expected two series, got %d", len(got.Series))
	}
	if len(got.Series["0.08"]) != 11 {
		t.Fatalf("expected 11 points, got %d", len(got.Series["0.08"]))
	}
}

func TestProjectionGrowthRequiresRates(t *testing.T) {
	svc := NewProjectionService()

	_, err := svc.Growth(context.Background(), dto.GrowthProjectionRequest{Years: 10})
	if err == nil {
		t.Fatal("expected error")
	}
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestProjectionGrowthRejectsYearsOutOfRange(t *testing.T) {
	svc := NewProjectionService()

	for _, years := range []int{-1, 101} {
		_, err := svc.Growth(context.Background(), dto.GrowthProjectionRequest{
			Rates: []float64{0.08},
			Years: years,
		})
		var valErr *errs.ValidationError
		if !errors.As(err, &valErr) {
			t.Fatalf("years=%d: expected ValidationError, got %v", years, err)
		}
	}
}

func TestProjectionSip(t *testing.T) {
	svc := NewProjectionService()

	got, err := svc.Sip(context.Background(), dto.SipProjectionRequest{
		MonthlyContribution: 10000,
		AnnualReturn:        0.12,
		Years:               20,
	})
	if err != nil {
		t.Fatalf("Sip error: %v", err)
	}
	if len(got.Series) != 21 {
		t.Fatalf("expected 21 points, got %d", len(got.Series))
	}
	if got.Series[20].Invested != 2400000 {
		t.Fatalf("invested mismatch: %v", got.Series[20].Invested)
	}
}

func TestProjectionSipRejectsYearsOutOfRange(t *testing.T) {
	svc := NewProjectionService()

	_, err := svc.Sip(context.Background(), dto.SipProjectionRequest{Years: 101})
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
