package services

import (
	"testing"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/models"
)

func TestDetectRecurringMonthly(t *testing.T) {
	txs := []models.Transaction{
		{Merchant: "Netflix", Category: "Entertainment", Amount: "500", Date: "2025-01-05"},
		{Merchant: "Netflix", Category: "Entertainment", Amount: "500", Date: "2025-02-05"},
		{Merchant: "Netflix", Category: "Entertainment", Amount: "500", Date: "2025-03-05"},
	}

	got := DetectRecurring(txs)

	if len(got) != 1 {
		t.Fatalf("expected one recurring expense, got %d", len(got))
	}
	if got[0].Merchant != "Netflix" {
		t.Fatalf("merchant mismatch: %q", got[0].Merchant)
	}
	if got[0].AverageAmount != 500 {
		t.Fatalf("average mismatch: %v", got[0].AverageAmount)
	}
	if got[0].Frequency != dto.FrequencyMonthly {
		t.Fatalf("expected Monthly, got %q", got[0].Frequency)
	}
	if got[0].Category != "Entertainment" {
		t.Fatalf("category mismatch: %q", got[0].Category)
	}
}

func TestDetectRecurringSingleMonthExcluded(t *testing.T) {
	// Several purchases inside one calendar month are not a recurring pattern.
	txs := []models.Transaction{
		{Merchant: "Grocer", Category: "Food", Amount: "100", Date: "2025-03-01"},
		{Merchant: "Grocer", Category: "Food", Amount: "100", Date: "2025-03-15"},
		{Merchant: "Grocer", Category: "Food", Amount: "100", Date: "2025-03-28"},
	}

	if got := DetectRecurring(txs); len(got) != 0 {
		t.Fatalf("expected no recurring expenses, got %+v", got)
	}
}

func TestDetectRecurringUnstableAmountsExcluded(t *testing.T) {
	// Spread 400 against mean 300 is well past the stability cutoff.
	txs := []models.Transaction{
		{Merchant: "Shop", Amount: "100", Date: "2025-01-10"},
		{Merchant: "Shop", Amount: "500", Date: "2025-02-10"},
	}

	if got := DetectRecurring(txs); len(got) != 0 {
		t.Fatalf("expected unstable merchant to be excluded, got %+v", got)
	}
}

func TestDetectRecurringOccasionalOnGap(t *testing.T) {
	// Three months but no two consecutive.
	txs := []models.Transaction{
		{Merchant: "Insurer", Amount: "1200", Date: "2025-01-10"},
		{Merchant: "Insurer", Amount: "1200", Date: "2025-03-10"},
		{Merchant: "Insurer", Amount: "1200", Date: "2025-05-10"},
	}

	got := DetectRecurring(txs)

	if len(got) != 1 {
		t.Fatalf("expected one recurring expense, got %d", len(got))
	}
	if got[0].Frequency != dto.FrequencyOccasional {
		t.Fatalf("expected Occasional, got %q", got[0].Frequency)
	}
}

func TestDetectRecurringTwoMonthsIsOccasional(t *testing.T) {
	txs := []models.Transaction{
		{Merchant: "Gym", Amount: "900", Date: "2025-01-02"},
		{Merchant: "Gym", Amount: "900", Date: "2025-02-02"},
	}

	got := DetectRecurring(txs)

	if len(got) != 1 {
		t.Fatalf("expected one recurring expense, got %d", len(got))
	}
	if got[0].Frequency != dto.FrequencyOccasional {
		t.Fatalf("two months should not be Monthly, got %q", got[0].Frequency)
	}
}

func TestDetectRecurringYearRollover(t *testing.T) {
	// December to January still counts as consecutive months.
	txs := []models.Transaction{
		{Merchant: "Rent", Amount: "15000", Date: "2024-11-01"},
		{Merchant: "Rent", Amount: "15000", Date: "2024-12-01"},
		{Merchant: "Rent", Amount: "15000", Date: "2025-01-01"},
	}

	got := DetectRecurring(txs)

	if len(got) != 1 || got[0].Frequency != dto.FrequencyMonthly {
		t.Fatalf("expected Monthly across the year boundary, got %+v", got)
	}
}

func TestDetectRecurringSkipsBlankMerchantAndBadDates(t *testing.T) {
	txs := []models.Transaction{
		{Merchant: "", Amount: "500", Date: "2025-01-05"},
		{Merchant: "", Amount: "500", Date: "2025-02-05"},
		{Merchant: "Spotify", Amount: "120", Date: "junk"},
		{Merchant: "Spotify", Amount: "120", Date: "2025-02-05"},
	}

	// Blank merchants never group; Spotify has one usable month.
	if got := DetectRecurring(txs); len(got) != 0 {
		t.Fatalf("expected no recurring expenses, got %+v", got)
	}
}

func TestDetectRecurringSortedByAverageDesc(t *testing.T) {
	txs := []models.Transaction{
		{Merchant: "Spotify", Amount: "119", Date: "2025-01-05"},
		{Merchant: "Spotify", Amount: "119", Date: "2025-02-05"},
		{Merchant: "Rent", Amount: "15000", Date: "2025-01-01"},
		{Merchant: "Rent", Amount: "15000", Date: "2025-02-01"},
	}

	got := DetectRecurring(txs)

	if len(got) != 2 {
		t.Fatalf("expected two recurring expenses, got %d", len(got))
	}
	if got[0].Merchant != "Rent" || got[1].Merchant != "Spotify" {
		t.Fatalf("expected highest average first, got %+v", got)
	}
}

func TestDetectRecurringZeroAverageExcluded(t *testing.T) {
	txs := []models.Transaction{
		{Merchant: "Mystery", Amount: "0", Date: "2025-01-05"},
		{Merchant: "Mystery", Amount: "0", Date: "2025-02-05"},
	}

	if got := DetectRecurring(txs); len(got) != 0 {
		t.Fatalf("expected zero-average merchant to be excluded, got %+v", got)
	}
}

func TestAmountStats(t *testing.T) {
	average, spread := amountStats([]float64{100, 110, 90})
	if average != 100 {
		t.Fatalf("average mismatch: %v", average)
	}
	if spread != 20 {
		t.Fatalf("spread mismatch: %v", spread)
	}
}

func TestConsecutiveMonthPairs(t *testing.T) {
	months := map[int]struct{}{
		2024*12 + 10: {}, // Nov 2024
		2024*12 + 11: {}, // Dec 2024
		2025*12 + 0:  {}, // Jan 2025
		2025*12 + 5:  {}, // Jun 2025
	}
	if got := consecutiveMonthPairs(months); got != 2 {
		t.Fatalf("expected 2 consecutive pairs, got %d", got)
	}
}
