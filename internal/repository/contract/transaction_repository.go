package contract

import (
	"context"
	"time"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// MarkRefundedIfCompleted flips completed -> refunded as a
	// compare-and-set. Returns false when the original is no longer in
	// the completed state (already refunded, disputed...).
	MarkRefundedIfCompleted(ctx context.Context, id uuid.UUID) (bool, error)

	// Report aggregates (read-only)
	GetTotalRevenue(ctx context.Context) (float64, error)
	RevenueByPlan(ctx context.Context) ([]*entity.PlanRevenue, error)
	RevenueByDay(ctx context.Context, from, to time.Time) ([]*entity.DailyRevenue, error)
}
