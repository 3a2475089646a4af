package services

import (
	"github.com/ashwkun/dred-backend/internal/dto"
)

// Persona rules are evaluated top to bottom; the first match wins. Keeping
// them as an ordered list keeps the priority auditable and lets each rule be
// tested on its own.

type spendingRule struct {
	match   func(dto.SpendingSignals) bool
	persona dto.Persona
}

var spendingRules = []spendingRule{
	{
		match: func(s dto.SpendingSignals) bool { return s.BudgetAdherence > 95 },
		persona: dto.Persona{
			Type:        "Maxed Out",
			Description: "Spending sits right at the budget ceiling. Consider a buffer before the next cycle.",
		},
	},
	{
		match: func(s dto.SpendingSignals) bool {
			return s.MonthSpend < 0.8*s.PrevMonthSpend && s.BudgetAdherence < 70
		},
		persona: dto.Persona{
			Type:        "Saver",
			Description: "Spending is well below last month and comfortably inside budget.",
		},
	},
	{
		match: func(s dto.SpendingSignals) bool {
			return ratio(s.FoodSpend, s.MonthSpend) > 0.3
		},
		persona: dto.Persona{
			Type:        "Foodie",
			Description: "Food makes up the biggest slice of this month's spending.",
		},
	},
}

var spendingDefault = dto.Persona{
	Type:        "Balanced",
	Description: "Spending is spread evenly with no single pattern dominating.",
}

// ClassifySpendingPersona labels a user's spending behaviour from
// pre-aggregated signals. It never fails: empty history falls through every
// rule to the default.
func ClassifySpendingPersona(signals dto.SpendingSignals) dto.Persona {
	for _, rule := range spendingRules {
		if rule.match(signals) {
			return rule.persona
		}
	}
	return spendingDefault
}

type investorRule struct {
	match   func(dto.InvestorSignals) bool
	persona dto.Persona
}

var investorRules = []investorRule{
	{
		match: func(s dto.InvestorSignals) bool { return s.TotalInvested > 1_000_000 },
		persona: dto.Persona{
			Type:        "Strategic Investor",
			Description: "A substantial portfolio built over time.",
		},
	},
	{
		match: func(s dto.InvestorSignals) bool { return s.InstrumentCount >= 4 },
		persona: dto.Persona{
			Type:        "Diversifier",
			Description: "Investments are spread across several instruments.",
		},
	},
	{
		match: func(s dto.InvestorSignals) bool { return s.Consistency == "High" },
		persona: dto.Persona{
			Type:        "Disciplined Investor",
			Description: "Contributions land regularly, month after month.",
		},
	},
}

var investorDefault = dto.Persona{
	Type:        "Growth Seeker",
	Description: "Early in the investing journey with room to grow.",
}

// ClassifyInvestorPersona labels a user's investing behaviour from
// pre-computed portfolio signals.
func ClassifyInvestorPersona(signals dto.InvestorSignals) dto.Persona {
	for _, rule := range investorRules {
		if rule.match(signals) {
			return rule.persona
		}
	}
	return investorDefault
}

// ratio divides guarding the zero denominator, which is treated as a zero
// ratio rather than an error so rule chains stay total.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
