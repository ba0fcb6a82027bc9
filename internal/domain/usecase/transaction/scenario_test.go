package transaction

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tobiadeyemi/pocketbudget/internal/domain/entity"
	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	authport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/auth"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/port/persistence"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/worker"
	"github.com/tobiadeyemi/pocketbudget/mocks/port/core"
)

// syncDispatcher routes events to their handlers synchronously and records
// push notifications instead of delivering them, so a test can follow the
// whole reconciliation chain deterministically.
type syncDispatcher struct {
	handlers map[string]func(ctx context.Context, payload any)
	pushes   []entity.PushNotification
}

func (d *syncDispatcher) Emit(handler string, payload any) {
	if handler == worker.HandlerSendPush {
		d.pushes = append(d.pushes, payload.(entity.PushNotification))
		return
	}
	if h, ok := d.handlers[handler]; ok {
		h(context.Background(), payload)
	}
}

// memBudgetRepo holds a single budget and implements the narrow progress
// mutations the way the store does: mutate, re-derive the flag, stamp the time.
type memBudgetRepo struct {
	budget *entity.Budget
}

func (r *memBudgetRepo) GetByID(ctx context.Context, id string) (*entity.Budget, error) {
	if r.budget == nil || r.budget.ID != id {
		return nil, errs.ErrBudgetNotFound
	}
	clone := *r.budget
	return &clone, nil
}

func (r *memBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	clone := *budget
	r.budget = &clone
	return nil
}

func (r *memBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	clone := *budget
	r.budget = &clone
	return nil
}

func (r *memBudgetRepo) Delete(ctx context.Context, id string) error {
	r.budget = nil
	return nil
}

func (r *memBudgetRepo) Filter(ctx context.Context, filter persistence.BudgetFilter, userID string) ([]entity.Budget, int64, error) {
	return nil, 0, nil
}

func (r *memBudgetRepo) ListOptions(ctx context.Context, userID string) ([]persistence.BudgetOption, error) {
	return nil, nil
}

func (r *memBudgetRepo) IncrementProgress(ctx context.Context, id string, deltaInCents int64, now time.Time) (*entity.Budget, error) {
	if r.budget == nil || r.budget.ID != id {
		return nil, errs.ErrBudgetNotFound
	}
	r.budget.ProgressValueInCents += deltaInCents
	r.budget.LimitExceeded = r.budget.ProgressValueInCents > r.budget.AmountInCents
	r.budget.UpdatedAt = &now
	clone := *r.budget
	return &clone, nil
}

func (r *memBudgetRepo) SetProgress(ctx context.Context, id string, totalInCents int64, now time.Time) (*entity.Budget, error) {
	if r.budget == nil || r.budget.ID != id {
		return nil, errs.ErrBudgetNotFound
	}
	r.budget.ProgressValueInCents = totalInCents
	r.budget.LimitExceeded = r.budget.ProgressValueInCents > r.budget.AmountInCents
	r.budget.UpdatedAt = &now
	clone := *r.budget
	return &clone, nil
}

// memTxnRepo is a map-backed transaction store
type memTxnRepo struct {
	txns map[string]*entity.Transaction
}

func newMemTxnRepo() *memTxnRepo {
	return &memTxnRepo{txns: make(map[string]*entity.Transaction)}
}

func (r *memTxnRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	clone := *txn
	r.txns[txn.ID] = &clone
	return nil
}

func (r *memTxnRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	txn, ok := r.txns[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	clone := *txn
	return &clone, nil
}

func (r *memTxnRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	if _, ok := r.txns[txn.ID]; !ok {
		return errs.ErrTransactionNotFound
	}
	clone := *txn
	r.txns[txn.ID] = &clone
	return nil
}

func (r *memTxnRepo) Delete(ctx context.Context, id string) (*entity.Transaction, error) {
	txn, ok := r.txns[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	delete(r.txns, id)
	return txn, nil
}

func (r *memTxnRepo) Filter(ctx context.Context, filter persistence.TransactionFilter, userID string) ([]entity.Transaction, int64, error) {
	return nil, 0, nil
}

func (r *memTxnRepo) ListForBudget(ctx context.Context, budgetID, userID string) ([]entity.Transaction, error) {
	var result []entity.Transaction
	for _, txn := range r.txns {
		if txn.BudgetID == budgetID && txn.UserID == userID {
			result = append(result, *txn)
		}
	}
	return result, nil
}

func (r *memTxnRepo) SumAmountForBudget(ctx context.Context, budgetID, userID string) (int64, error) {
	var total int64
	for _, txn := range r.txns {
		if txn.BudgetID == budgetID && txn.UserID == userID {
			total += txn.AmountInCents
		}
	}
	return total, nil
}

func (r *memTxnRepo) SumAmountByType(ctx context.Context, userID string, txType entity.TransactionType, from, to time.Time) (int64, error) {
	return 0, nil
}

// memUserRepo resolves the single budget owner
type memUserRepo struct {
	owner *entity.User
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.owner == nil || r.owner.ID != id {
		return nil, errs.ErrUserNotFound
	}
	return r.owner, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, errs.ErrUserNotFound
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	return nil
}

func (r *memUserRepo) UpdateFcmToken(ctx context.Context, id, token string, now time.Time) error {
	return nil
}

// seqIDGenerator issues tx-1, tx-2, ...
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return "tx-" + strconv.Itoa(g.n)
}

// TestBudgetLifecycleScenario follows a budget through its transactions:
// two creates walking the progress over the alert threshold, then an update
// that re-aggregates and pushes it over the ceiling.
func TestBudgetLifecycleScenario(t *testing.T) {
	fixedTime := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	ctx := context.Background()
	actor := &authport.Claims{UserID: "user-1", Username: "alice"}

	mockTimeProvider := new(core.MockTimeProvider)
	mockTimeProvider.On("Now").Return(fixedTime)
	testLogger := newTestLogger()

	budgetRepo := &memBudgetRepo{budget: &entity.Budget{
		ID:                     "budget-1",
		Title:                  "Household",
		AmountInCents:          20000,
		ReceiveAlert:           true,
		ReceiveAlertPercentage: 0.5,
		Status:                 entity.BudgetStatusActive,
		CreatedBy:              "user-1",
		CreatedAt:              fixedTime,
	}}
	txnRepo := newMemTxnRepo()
	userRepo := &memUserRepo{owner: &entity.User{ID: "user-1", FcmToken: "device-1"}}

	dispatcher := &syncDispatcher{handlers: make(map[string]func(ctx context.Context, payload any))}
	reconciler := worker.NewBudgetReconciler(budgetRepo, userRepo, dispatcher, mockTimeProvider, testLogger)
	dispatcher.handlers[worker.HandlerReconcileDelta] = reconciler.HandleDelta
	dispatcher.handlers[worker.HandlerReconcileAbsolute] = reconciler.HandleAbsolute

	service := NewService(txnRepo, dispatcher, &seqIDGenerator{}, mockTimeProvider, testLogger)

	// First transaction: 50.00 of 200.00 spent, 25% is below the 50% threshold
	txnA, err := service.Create(ctx, CreateRequest{
		Type:     "Expense",
		Amount:   "50.00",
		Currency: "USD",
		Category: "Groceries",
		BudgetID: "budget-1",
	}, actor)
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), budgetRepo.budget.ProgressValueInCents)
	assert.False(t, budgetRepo.budget.LimitExceeded)
	assert.Empty(t, dispatcher.pushes)

	// Second transaction: 110.00 of 200.00 spent, 55% crosses the threshold
	_, err = service.Create(ctx, CreateRequest{
		Type:     "Expense",
		Amount:   "60.00",
		Currency: "USD",
		Category: "Utilities",
		BudgetID: "budget-1",
	}, actor)
	assert.NoError(t, err)
	assert.Equal(t, int64(11000), budgetRepo.budget.ProgressValueInCents)
	assert.False(t, budgetRepo.budget.LimitExceeded)
	assert.Len(t, dispatcher.pushes, 1)
	assert.Equal(t, "Budget Progress Alert", dispatcher.pushes[0].Title)
	assert.Equal(t, "device-1", dispatcher.pushes[0].Token)

	// Raising the first transaction re-aggregates: 150 + 60 = 210 over a 200
	// ceiling, the exceeded alert fires with the 10.00 overspend
	_, err = service.Update(ctx, txnA.ID, UpdateRequest{
		Amount:   "150.00",
		BudgetID: "budget-1",
	}, actor)
	assert.NoError(t, err)
	assert.Equal(t, int64(21000), budgetRepo.budget.ProgressValueInCents)
	assert.True(t, budgetRepo.budget.LimitExceeded)
	assert.Len(t, dispatcher.pushes, 2)
	assert.Equal(t, "Budget Limit Exceeded", dispatcher.pushes[1].Title)
	assert.Contains(t, dispatcher.pushes[1].Body, "10.00")
}
