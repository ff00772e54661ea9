package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStudent filters rows owned by a student
type ByStudent struct {
	StudentID uuid.UUID
}

func (s ByStudent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentID)
}

// ByPlan filters subscriptions referencing a plan
type ByPlan struct {
	PlanID uuid.UUID
}

func (s ByPlan) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("plan_id = ?", s.PlanID)
}

// ByStatus filters by lifecycle status column
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// BySubscription filters rows owned by a subscription
type BySubscription struct {
	SubscriptionID uuid.UUID
}

func (s BySubscription) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subscription_id = ?", s.SubscriptionID)
}

// ByName filters by exact name
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByEmail filters by exact email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByTransactionCode filters transactions by the public TRX identifier
type ByTransactionCode struct {
	Code string
}

func (s ByTransactionCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transaction_id = ?", s.Code)
}

// ActiveOnly keeps rows with is_active = true
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// CreatedBetween bounds created_at, used by report queries
type CreatedBetween struct {
	From time.Time
	To   time.Time
}

func (s CreatedBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ? AND created_at < ?", s.From, s.To)
}
