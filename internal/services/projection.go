package services

import (
	"math"
	"strconv"

	"github.com/ashwkun/dred-backend/internal/dto"
)

// ProjectGrowth simulates compound growth of a lump sum plus a fixed monthly
// contribution for each of the given annual rates. Each rate yields an
// independent series keyed by the rate's decimal string. Year y applies a
// full year of contributions before compounding:
//
//	value[y] = (value[y-1] + monthly*12) * (1 + rate)
//
// A zero rate degenerates to a linear series, a zero or negative contribution
// to pure compounding of the starting value.
func ProjectGrowth(currentValue, monthlyContribution float64, rates []float64, years int) map[string][]dto.ProjectionPoint {
	if years < 0 {
		years = 0
	}
	series := make(map[string][]dto.ProjectionPoint, len(rates))
	for _, rate := range rates {
		points := make([]dto.ProjectionPoint, 0, years+1)
		total := currentValue
		for year := 0; year <= years; year++ {
			if year > 0 {
				total = (total + monthlyContribution*12) * (1 + rate)
			}
			invested := currentValue + monthlyContribution*12*float64(year)
			points = append(points, dto.ProjectionPoint{
				Period:   year,
				Invested: invested,
				Returns:  total - invested,
				Total:    total,
			})
		}
		series[rateKey(rate)] = points
	}
	return series
}

// ProjectSip simulates a systematic monthly investment at a single annual
// return. The annual rate is converted to its compound-equivalent monthly
// rate, and every month the contribution is applied first and growth second:
//
//	total = (total + contribution) * (1 + monthlyRate)
//
// Swapping that order changes long-horizon results materially, so it is part
// of the contract, not an implementation detail. Year 0 is the zero baseline
// and the series has one point per year.
func ProjectSip(monthlyContribution, annualReturn float64, years int) []dto.ProjectionPoint {
	if years < 0 {
		years = 0
	}
	monthlyRate := math.Pow(1+annualReturn, 1.0/12) - 1

	points := make([]dto.ProjectionPoint, 0, years+1)
	points = append(points, dto.ProjectionPoint{Period: 0})

	var invested, total float64
	for year := 1; year <= years; year++ {
		for month := 0; month < 12; month++ {
			invested += monthlyContribution
			total = (total + monthlyContribution) * (1 + monthlyRate)
		}
		points = append(points, dto.ProjectionPoint{
			Period:   year,
			Invested: invested,
			Returns:  total - invested,
			Total:    total,
		})
	}
	return points
}

func rateKey(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64)
}
