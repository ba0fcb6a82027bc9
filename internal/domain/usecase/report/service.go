package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
)

// Reporting periods
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// RevenueSummary holds the aggregate income and expense for a period
type RevenueSummary struct {
	Period        string
	Income        string
	Expense       string
	IncomeInCents int64
	ExpenseCents  int64
}

// Service computes report aggregates over a user's transactions
type Service struct {
	transactions persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new report service
func NewService(
	transactions persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		transactions: transactions,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RevenueSummary returns the user's total income and expense for the period.
// The two aggregate queries are independent and run concurrently.
func (s *Service) RevenueSummary(ctx context.Context, period string, actor *authport.Claims) (*RevenueSummary, error) {
	from, to, err := s.periodRange(period)
	if err != nil {
		return nil, err
	}

	var incomeInCents, expenseInCents int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomeInCents, err = s.transactions.SumAmountByType(gctx, actor.UserID, entity.TypeIncome, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		expenseInCents, err = s.transactions.SumAmountByType(gctx, actor.UserID, entity.TypeExpense, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to aggregate revenue summary", map[string]any{
			"user_id": actor.UserID,
			"period":  period,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &RevenueSummary{
		Period:        period,
		Income:        entity.AmountInCentsToString(incomeInCents),
		Expense:       entity.AmountInCentsToString(expenseInCents),
		IncomeInCents: incomeInCents,
		ExpenseCents:  expenseInCents,
	}, nil
}

// periodRange converts a named period into a [from, to] time range ending now
func (s *Service) periodRange(period string) (time.Time, time.Time, error) {
	now := s.timeProvider.Now()
	switch period {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), now, nil
	case PeriodMonth:
		return now.AddDate(0, -1, 0), now, nil
	case PeriodYear:
		return now.AddDate(-1, 0, 0), now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown period %q", errs.ErrInvalidRequest, period)
	}
}
