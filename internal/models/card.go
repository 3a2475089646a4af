package models

import "time"

// Card holds a stored card's display fields and billing configuration.
// Sensitive fields are decrypted by the recording client before they reach
// this service; only billing metadata is read here.
type Card struct {
	CardID            string    `firestore:"cardId" json:"cardId"`
	Network           string    `firestore:"network" json:"network,omitempty"`
	MaskedNumber      string    `firestore:"maskedNumber" json:"maskedNumber,omitempty"`
	BillGenDay        int       `firestore:"billGenDay" json:"billGenDay,omitempty"`               // 1-31, 0 = not configured
	BillDueOffsetDays int       `firestore:"billDueOffsetDays" json:"billDueOffsetDays,omitempty"` // 0 = not configured
	LastPaidCycleKey  string    `firestore:"lastPaidCycleKey" json:"lastPaidCycleKey,omitempty"`   // YYYY-MM of last settled cycle
	CreatedAt         time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt" json:"updatedAt"`
}
