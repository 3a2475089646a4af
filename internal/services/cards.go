package services

import (
	"context"
	"time"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/models"
)

// cardBillingStore fetches one card's billing configuration.
type cardBillingStore interface {
	Get(ctx context.Context, uid, cardID string) (*models.Card, error)
}

type cardService struct {
	cards cardBillingStore
	now   func() time.Time
}

func NewCardService(cards cardBillingStore) *cardService {
	return &cardService{cards: cards, now: time.Now}
}

// Billing returns the card's current billing cycle status. A card without
// billing configuration yields the none state, not an error.
func (s *cardService) Billing(ctx context.Context, uid, cardID string) (dto.BillingCycleStatus, error) {
	card, err := s.cards.Get(ctx, uid, cardID)
	if err != nil {
		return dto.BillingCycleStatus{}, err
	}
	return BillingStatus(s.now(), card.BillGenDay, card.BillDueOffsetDays, card.LastPaidCycleKey), nil
}
