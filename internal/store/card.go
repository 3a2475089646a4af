package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ashwkun/dred-backend/internal/errs"
	"github.com/ashwkun/dred-backend/internal/models"
)

type cardStore struct {
	client *firestore.Client
}

func NewCardStore(client *firestore.Client) *cardStore {
	return &cardStore{client: client}
}

func (s *cardStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("cards")
}

func (s *cardStore) Get(ctx context.Context, uid, cardID string) (*models.Card, error) {
	doc, err := s.collection(uid).Doc(cardID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("card not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get card", err)
	}
	var card models.Card
	if err := doc.DataTo(&card); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse card data", err)
	}
	return &card, nil
}
