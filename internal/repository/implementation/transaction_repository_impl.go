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

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, transaction *entity.Transaction) error {
	m := r.mapper.ToModel(transaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*transaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) Update(ctx context.Context, transaction *entity.Transaction) error {
	m := r.mapper.ToModel(transaction)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*transaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error
}

func (r *TransactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	var m model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var models []*model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Transaction, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TransactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Transaction{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *TransactionRepositoryImpl) MarkRefundedIfCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(entity.TransactionStatusCompleted)).
		UpdateColumn("status", string(entity.TransactionStatusRefunded))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetTotalRevenue is completed payment volume minus completed refund volume.
func (r *TransactionRepositoryImpl) GetTotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(`COALESCE(SUM(CASE WHEN type = 'payment' THEN amount WHEN type = 'refund' THEN -amount ELSE 0 END), 0)`).
		Where("status IN ?", []string{
			string(entity.TransactionStatusCompleted),
			string(entity.TransactionStatusRefunded),
		}).
		Scan(&total).Error
	return total, err
}

func (r *TransactionRepositoryImpl) RevenueByPlan(ctx context.Context) ([]*entity.PlanRevenue, error) {
	var results []*entity.PlanRevenue
	err := r.db.WithContext(ctx).Table("transactions").
		Select(`subscription_plans.name as plan_name, COALESCE(SUM(transactions.amount), 0) as revenue, COUNT(*) as count`).
		Joins("JOIN subscriptions ON transactions.subscription_id = subscriptions.id").
		Joins("JOIN subscription_plans ON subscriptions.plan_id = subscription_plans.id").
		Where("transactions.type = ? AND transactions.status IN ?",
			string(entity.TransactionTypePayment),
			[]string{string(entity.TransactionStatusCompleted), string(entity.TransactionStatusRefunded)}).
		Group("subscription_plans.name").
		Order("revenue DESC").
		Scan(&results).Error
	return results, err
}

func (r *TransactionRepositoryImpl) RevenueByDay(ctx context.Context, from, to time.Time) ([]*entity.DailyRevenue, error) {
	var results []*entity.DailyRevenue
	err := r.db.WithContext(ctx).Table("transactions").
		Select(`DATE(created_at) as day, COALESCE(SUM(amount), 0) as revenue, COUNT(*) as count`).
		Where("type = ? AND status IN ? AND created_at >= ? AND created_at < ?",
			string(entity.TransactionTypePayment),
			[]string{string(entity.TransactionStatusCompleted), string(entity.TransactionStatusRefunded)},
			from, to).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&results).Error
	return results, err
}
