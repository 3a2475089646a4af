package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/models"
)

const (
	txDateLayout = "2006-01-02"

	// uncategorized is the category assigned to transactions recorded
	// without one.
	uncategorized = "Uncategorized"

	topCategoryCount = 5
	recentWindowDays = 30
	recentKeepCount  = 10
)

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Aggregate computes the full spending aggregate for a transaction list.
// It is a pure function: the input is never mutated and the same list with
// the same reference time always yields the same result. Malformed records
// degrade rather than fail: an unparsable amount counts as zero, and an
// unparsable date keeps the transaction out of the date-keyed buckets while
// still contributing to the overall and per-category totals.
func Aggregate(txs []models.Transaction, now time.Time) dto.AggregateResult {
	result := dto.AggregateResult{
		CategoryTotals:     make(map[string]float64),
		TopCategories:      []dto.CategoryTotal{},
		MonthlyTotals:      zeroMonthTotals(),
		DayOfWeekTotals:    zeroDayTotals(),
		RecentTransactions: []models.Transaction{},
	}

	type datedTx struct {
		tx   models.Transaction
		date time.Time
	}
	var recent []datedTx
	// Parsed dates are midnight, so the cutoff must be too or a transaction
	// dated exactly 30 days ago falls out whenever now has a time-of-day.
	cutoff := truncateToDay(now).AddDate(0, 0, -recentWindowDays)
	firstSeen := make(map[string]int)

	for i, tx := range txs {
		amount := parseAmount(tx.Amount)
		category := categoryOrDefault(tx.Category)
		if _, seen := firstSeen[category]; !seen {
			firstSeen[category] = i
		}
		result.TotalSpent += amount
		result.CategoryTotals[category] += amount

		date, ok := parseTxDate(tx.Date)
		if !ok {
			continue
		}
		result.MonthlyTotals[monthLabels[date.Month()-1]] += amount
		weekday := date.Weekday()
		result.DayOfWeekTotals[dayLabels[weekday]] += amount
		if weekday == time.Saturday || weekday == time.Sunday {
			result.WeekendTotal += amount
		} else {
			result.WeekdayTotal += amount
		}
		if !date.Before(cutoff) {
			recent = append(recent, datedTx{tx: tx, date: date})
		}
	}

	ranked := make([]dto.CategoryTotal, 0, len(result.CategoryTotals))
	for category, amount := range result.CategoryTotals {
		ranked = append(ranked, dto.CategoryTotal{Category: category, Amount: amount})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return firstSeen[ranked[i].Category] < firstSeen[ranked[j].Category]
	})
	if len(ranked) > topCategoryCount {
		ranked = ranked[:topCategoryCount]
	}
	result.TopCategories = ranked

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].date.After(recent[j].date)
	})
	if len(recent) > recentKeepCount {
		recent = recent[:recentKeepCount]
	}
	for _, r := range recent {
		result.RecentTransactions = append(result.RecentTransactions, r.tx)
	}

	return result
}

func zeroMonthTotals() map[string]float64 {
	totals := make(map[string]float64, len(monthLabels))
	for _, label := range monthLabels {
		totals[label] = 0
	}
	return totals
}

func zeroDayTotals() map[string]float64 {
	totals := make(map[string]float64, len(dayLabels))
	for _, label := range dayLabels {
		totals[label] = 0
	}
	return totals
}

func categoryOrDefault(category string) string {
	if category == "" {
		return uncategorized
	}
	return category
}

// parseAmount reads a decimal amount recorded as text. Anything unparsable
// counts as zero so a single corrupt record never sinks a whole aggregate.
func parseAmount(raw string) float64 {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return amount
}

// parseTxDate reads a YYYY-MM-DD calendar date. No timezone conversion is
// applied; the recorded local calendar day is the day that counts.
func parseTxDate(raw string) (time.Time, bool) {
	date, err := time.Parse(txDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
