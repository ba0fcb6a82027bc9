package entity

import (
	"math"
	"time"

	errs "github.com/tobiadeyemi/pocketbudget/internal/domain/error"
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
)

// BudgetStatus represents the lifecycle status of a budget
type BudgetStatus string

// Budget statuses
const (
	BudgetStatusActive BudgetStatus = "Active"
	BudgetStatusClosed BudgetStatus = "Closed"
)

// Budget represents a user-defined spending ceiling tracked against the
// rolling sum of its associated transactions. ProgressValue and LimitExceeded
// are derived aggregates: they are mutated exclusively by the budget
// reconciliation worker, never directly by a user request.
type Budget struct {
	ID                     string
	Title                  string
	Description            string
	AmountInCents          int64 // target spending ceiling in cents
	Category               string
	CategoryID             string
	ReceiveAlert           bool
	ReceiveAlertPercentage float64 // fraction, e.g. 0.8 means alert at 80%
	ProgressValueInCents   int64   // cumulative spend in cents
	LimitExceeded          bool
	Status                 BudgetStatus
	CreatedBy              string // owning user id
	CreatedAt              time.Time
	UpdatedAt              *time.Time
}

// NewBudget creates a new budget owned by the given user
func NewBudget(
	id string,
	title string,
	description string,
	amount string,
	category string,
	categoryID string,
	receiveAlert bool,
	receiveAlertPercentage float64,
	createdBy string,
	timeProvider coreport.TimeProvider,
) (*Budget, error) {
	if title == "" {
		return nil, errs.ErrInvalidTitle
	}

	amountInCents, err := ValidateAndConvertAmount(amount)
	if err != nil {
		return nil, err
	}

	return &Budget{
		ID:                     id,
		Title:                  title,
		Description:            description,
		AmountInCents:          amountInCents,
		Category:               category,
		CategoryID:             categoryID,
		ReceiveAlert:           receiveAlert,
		ReceiveAlertPercentage: receiveAlertPercentage,
		ProgressValueInCents:   0,
		LimitExceeded:          false,
		Status:                 BudgetStatusActive,
		CreatedBy:              createdBy,
		CreatedAt:              timeProvider.Now(),
	}, nil
}

// GetAmount returns the budget ceiling as a two-decimal string
func (b *Budget) GetAmount() string {
	return AmountInCentsToString(b.AmountInCents)
}

// GetProgressValue returns the cumulative spend as a two-decimal string
func (b *Budget) GetProgressValue() string {
	return AmountInCentsToString(b.ProgressValueInCents)
}

// ProgressPercent returns the spend as a percentage of the budget ceiling.
// A zero-amount budget with any spend reports +Inf rather than relying on
// floating point division behavior; zero spend against a zero ceiling is 0.
func (b *Budget) ProgressPercent() float64 {
	if b.AmountInCents == 0 {
		if b.ProgressValueInCents > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(b.ProgressValueInCents) / float64(b.AmountInCents) * 100
}

// AlertThresholdPercent returns the notification threshold as a percentage
func (b *Budget) AlertThresholdPercent() float64 {
	return b.ReceiveAlertPercentage * 100
}

// OverspendInCents returns how far the spend exceeds the ceiling.
// Meaningful only when LimitExceeded is true.
func (b *Budget) OverspendInCents() int64 {
	return b.ProgressValueInCents - b.AmountInCents
}

// Recalculate re-derives LimitExceeded from the current progress and stamps
// the update time. Invariant: LimitExceeded == (progress > amount).
func (b *Budget) Recalculate(timeProvider coreport.TimeProvider) {
	b.LimitExceeded = b.ProgressValueInCents > b.AmountInCents
	now := timeProvider.Now()
	b.UpdatedAt = &now
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
}

// ApplyProgressDelta adds a signed contribution to the progress value and
// re-derives the exceeded flag
func (b *Budget) ApplyProgressDelta(deltaInCents int64, timeProvider coreport.TimeProvider) {
	b.ProgressValueInCents += deltaInCents
	b.Recalculate(timeProvider)
}

// SetProgressValue replaces the progress value with a freshly aggregated total
// and re-derives the exceeded flag
func (b *Budget) SetProgressValue(totalInCents int64, timeProvider coreport.TimeProvider) {
	b.ProgressValueInCents = totalInCents
	b.Recalculate(timeProvider)
}
