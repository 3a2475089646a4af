package services

import (
	"sort"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/models"
)

const (
	// A merchant's amounts are "stable" when their spread stays under this
	// fraction of the mean. Carried over from the original heuristic.
	recurringStabilityRatio = 0.2

	recurringMinMonths         = 2
	monthlyMinMonths           = 3
	monthlyMinConsecutivePairs = 2
)

type merchantGroup struct {
	category string
	amounts  []float64
	months   map[int]struct{} // linearised year*12+month index
	order    int              // first appearance in the input
}

// DetectRecurring flags merchants whose transaction pattern looks like a
// repeating obligation (subscription, rent, EMI). A merchant qualifies when
// it appears in at least two distinct calendar months and its amounts are
// stable; merchants with three or more months including two consecutive-month
// pairs are labelled Monthly, the rest Occasional. Transactions without a
// merchant or with an unparsable date are ignored. The result is sorted by
// average amount, highest first.
func DetectRecurring(txs []models.Transaction) []dto.RecurringExpense {
	groups := make(map[string]*merchantGroup)
	for i, tx := range txs {
		if tx.Merchant == "" {
			continue
		}
		date, ok := parseTxDate(tx.Date)
		if !ok {
			continue
		}
		g, exists := groups[tx.Merchant]
		if !exists {
			g = &merchantGroup{
				category: categoryOrDefault(tx.Category),
				months:   make(map[int]struct{}),
				order:    i,
			}
			groups[tx.Merchant] = g
		}
		g.amounts = append(g.amounts, parseAmount(tx.Amount))
		g.months[date.Year()*12+int(date.Month())-1] = struct{}{}
	}

	candidates := make([]dto.RecurringExpense, 0, len(groups))
	orders := make(map[string]int, len(groups))
	for merchant, g := range groups {
		if len(g.months) < recurringMinMonths {
			continue
		}
		average, spread := amountStats(g.amounts)
		if average <= 0 {
			continue
		}
		if spread/average >= recurringStabilityRatio {
			continue
		}
		frequency := dto.FrequencyOccasional
		if len(g.months) >= monthlyMinMonths && consecutiveMonthPairs(g.months) >= monthlyMinConsecutivePairs {
			frequency = dto.FrequencyMonthly
		}
		candidates = append(candidates, dto.RecurringExpense{
			Merchant:      merchant,
			AverageAmount: average,
			Category:      g.category,
			Frequency:     frequency,
		})
		orders[merchant] = g.order
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].AverageAmount != candidates[j].AverageAmount {
			return candidates[i].AverageAmount > candidates[j].AverageAmount
		}
		return orders[candidates[i].Merchant] < orders[candidates[j].Merchant]
	})
	return candidates
}

// amountStats returns the mean and the max-min spread of a non-empty list.
func amountStats(amounts []float64) (average, spread float64) {
	if len(amounts) == 0 {
		return 0, 0
	}
	sum := amounts[0]
	min, max := amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		sum += a
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return sum / float64(len(amounts)), max - min
}

// consecutiveMonthPairs counts adjacent calendar months among the observed
// set. Months are linearised as year*12+month, so a December to January step
// still counts as consecutive.
func consecutiveMonthPairs(months map[int]struct{}) int {
	indices := make([]int, 0, len(months))
	for m := range months {
		indices = append(indices, m)
	}
	sort.Ints(indices)
	pairs := 0
	for i := 1; i < len(indices); i++ {
		if indices[i]-indices[i-1] == 1 {
			pairs++
		}
	}
	return pairs
}
