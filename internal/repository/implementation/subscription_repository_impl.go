package implementation

import (
	"context"
	"errors"
	"time"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/mapper"
	"sports-academy-be/internal/model"
	"sports-academy-be/internal/repository/contract"
	"sports-academy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubscriptionMapper
}

func NewSubscriptionRepository(db *gorm.DB) contract.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubscriptionMapper(),
	}
}

func (r *SubscriptionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscription *entity.Subscription) error {
	m := r.mapper.ToModel(subscription)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subscription = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubscriptionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error) {
	var m model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubscriptionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subscription, error) {
	var models []*model.Subscription
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Subscription, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *SubscriptionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subscription{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *SubscriptionRepositoryImpl) CountActiveByPlan(ctx context.Context, planId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("plan_id = ? AND status = ?", planId, string(entity.SubscriptionStatusActive)).
		Count(&count).Error
	return count, err
}

// DeductSession is a single conditional UPDATE, never load-then-save: two
// concurrent deductions near the last unit cannot both match the
// remaining_sessions > 0 guard.
func (r *SubscriptionRepositoryImpl) DeductSession(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND status = ? AND remaining_sessions IS NOT NULL AND remaining_sessions > 0",
			id, string(entity.SubscriptionStatusActive)).
		UpdateColumn("remaining_sessions", gorm.Expr("remaining_sessions - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) RecreditSession(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND remaining_sessions IS NOT NULL", id).
		UpdateColumn("remaining_sessions", gorm.Expr("remaining_sessions + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) ActivateIfPending(ctx context.Context, id uuid.UUID, amountPaid float64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ? AND status = ?", id, string(entity.SubscriptionStatusPending)).
		Updates(map[string]interface{}{
			"status":         string(entity.SubscriptionStatusActive),
			"payment_status": string(entity.PaymentStatusPaid),
			"amount_paid":    amountPaid,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *SubscriptionRepositoryImpl) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ? AND end_date < ?", string(entity.SubscriptionStatusActive), now).
		UpdateColumn("status", string(entity.SubscriptionStatusExpired))
	return res.RowsAffected, res.Error
}

func (r *SubscriptionRepositoryImpl) CountByStatus(ctx context.Context) ([]*entity.StatusCount, error) {
	var results []*entity.StatusCount
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	return results, err
}

func (r *SubscriptionRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ?", string(entity.SubscriptionStatusActive)).
		Count(&count).Error
	return count, err
}
