package contract

import (
	"context"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Create(ctx context.Context, plan *entity.SubscriptionPlan) error
	Update(ctx context.Context, plan *entity.SubscriptionPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionPlan, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SubscriptionPlan, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// RedeemDiscount bumps current_uses by one, but only while max_uses is
	// not yet reached. Returns false when the conditional update matched
	// no row.
	RedeemDiscount(ctx context.Context, discountId uuid.UUID) (bool, error)
}
