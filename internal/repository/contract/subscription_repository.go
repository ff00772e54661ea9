package contract

import (
	"context"
	"time"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CountActiveByPlan(ctx context.Context, planId uuid.UUID) (int64, error)

	// DeductSession runs the conditional decrement
	// ("remaining_sessions - 1 WHERE active AND remaining_sessions > 0")
	// and reports whether exactly one row was modified. Never clamps.
	DeductSession(ctx context.Context, id uuid.UUID) (bool, error)

	// RecreditSession returns one previously deducted session, for callers
	// that must undo a deduction after a later write failed. No-op on
	// unlimited subscriptions.
	RecreditSession(ctx context.Context, id uuid.UUID) (bool, error)

	// ActivateIfPending flips pending -> active as a compare-and-set and
	// records the paid amount. Returns false when the subscription was not
	// pending anymore.
	ActivateIfPending(ctx context.Context, id uuid.UUID, amountPaid float64) (bool, error)

	// MarkExpired sweeps stored "active" rows whose end date has passed.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)

	CountByStatus(ctx context.Context) ([]*entity.StatusCount, error)
	CountActive(ctx context.Context) (int64, error)
}
