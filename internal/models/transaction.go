package models

import (
	"time"
)

// Transaction is one spending record as stored in Firestore. Amount and Date
// are kept as text exactly as the recording client wrote them; the insight
// engine parses both defensively and never fails on a malformed value.
type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Amount        string    `firestore:"amount" json:"amount"`               // decimal text, non-negative
	Category      string    `firestore:"category" json:"category,omitempty"` // empty = uncategorized
	Merchant      string    `firestore:"merchant" json:"merchant,omitempty"`
	Account       string    `firestore:"account" json:"account,omitempty"` // card ref, "cash" or "bank"
	Date          string    `firestore:"date" json:"date"`                 // YYYY-MM-DD
	Description   string    `firestore:"description" json:"description,omitempty"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
