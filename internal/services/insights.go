package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashwkun/dred-backend/internal/dto"
	"github.com/ashwkun/dred-backend/internal/models"
	"github.com/ashwkun/dred-backend/pkg/logger"
)

// insightsTransactionStore streams a user's transactions from Firestore.
type insightsTransactionStore interface {
	Query(ctx context.Context, uid string, q dto.TransactionQuery, handle func(*models.Transaction) error) error
}

type insightsService struct {
	txs insightsTransactionStore
	now func() time.Time
}

func NewInsightsService(txs insightsTransactionStore) *insightsService {
	return &insightsService{txs: txs, now: time.Now}
}

// Summary loads the caller's full transaction history and computes the
// spending aggregate for it.
func (s *insightsService) Summary(ctx context.Context, uid string) (dto.SummaryResult, error) {
	txs, err := s.collect(ctx, uid)
	if err != nil {
		return dto.SummaryResult{}, err
	}
	now := s.now()
	logger.FromContext(ctx).Debug("computed spending aggregate", "transactions", len(txs))
	return dto.SummaryResult{
		AnalysisID:  uuid.New().String(),
		GeneratedAt: now.Format(time.RFC3339),
		Aggregate:   Aggregate(txs, now),
	}, nil
}

// Recurring loads the caller's history and flags likely repeating expenses.
func (s *insightsService) Recurring(ctx context.Context, uid string) (dto.RecurringResult, error) {
	txs, err := s.collect(ctx, uid)
	if err != nil {
		return dto.RecurringResult{}, err
	}
	items := DetectRecurring(txs)
	logger.FromContext(ctx).Debug("detected recurring expenses", "candidates", len(items))
	return dto.RecurringResult{
		AnalysisID:  uuid.New().String(),
		GeneratedAt: s.now().Format(time.RFC3339),
		Items:       items,
	}, nil
}

// SpendingPersona derives this month's and last month's spend from the
// caller's history and classifies it. budgetAdherence is computed by the
// budgeting layer and passed through as-is.
func (s *insightsService) SpendingPersona(ctx context.Context, uid string, budgetAdherence float64) (dto.Persona, error) {
	txs, err := s.collect(ctx, uid)
	if err != nil {
		return dto.Persona{}, err
	}
	signals := spendingSignals(txs, s.now())
	signals.BudgetAdherence = budgetAdherence
	return ClassifySpendingPersona(signals), nil
}

func (s *insightsService) collect(ctx context.Context, uid string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.txs.Query(ctx, uid, dto.TransactionQuery{}, func(tx *models.Transaction) error {
		txs = append(txs, *tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// foodCategory is the category label the recording client uses for meals.
const foodCategory = "Food"

// spendingSignals sums the current and previous calendar month plus the
// current month's food share from raw history.
func spendingSignals(txs []models.Transaction, now time.Time) dto.SpendingSignals {
	currentKey := now.Year()*12 + int(now.Month()) - 1
	var signals dto.SpendingSignals
	for _, tx := range txs {
		date, ok := parseTxDate(tx.Date)
		if !ok {
			continue
		}
		amount := parseAmount(tx.Amount)
		switch date.Year()*12 + int(date.Month()) - 1 {
		case currentKey:
			signals.MonthSpend += amount
			if categoryOrDefault(tx.Category) == foodCategory {
				signals.FoodSpend += amount
			}
		case currentKey - 1:
			signals.PrevMonthSpend += amount
		}
	}
	return signals
}
