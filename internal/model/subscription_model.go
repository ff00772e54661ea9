package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId          uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanId             uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate          time.Time `gorm:"not null"`
	EndDate            time.Time `gorm:"not null"`
	Status             string    `gorm:"type:varchar(50);not null;index"`
	PaymentStatus      string    `gorm:"type:varchar(50);not null"`
	PaymentMethod      string    `gorm:"type:varchar(50)"`
	AmountPaid         float64   `gorm:"type:decimal(10,2);default:0"`
	RemainingSessions  *int      // NULL = unlimited entitlement
	DiscountCode       *string   `gorm:"type:varchar(50)"`
	DiscountPercentage *float64  `gorm:"type:decimal(5,2)"`
	DiscountSaved      *float64  `gorm:"type:decimal(10,2)"`
	CancelledAt        *time.Time
	CancelReason       string    `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
