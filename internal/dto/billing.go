package dto

// Billing cycle states.
const (
	BillingStateNone    = "none"
	BillingStateOpen    = "open"
	BillingStateOverdue = "overdue"
)

// BillingCycleStatus is a read-time projection of a card's current billing
// cycle. Dates are YYYY-MM-DD and empty when the card has no billing
// configuration.
type BillingCycleStatus struct {
	State      string `json:"state"` // none | open | overdue
	CycleStart string `json:"cycleStart,omitempty"`
	DueDate    string `json:"dueDate,omitempty"`
	CycleKey   string `json:"cycleKey,omitempty"` // YYYY-MM of the cycle start
}
