package model

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPlan struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description   string    `gorm:"type:text"`
	PriceAmount   float64   `gorm:"type:decimal(10,2);not null"`
	PriceCurrency string    `gorm:"type:varchar(3);not null;default:'USD'"`
	DurationValue int       `gorm:"not null"`
	DurationUnit  string    `gorm:"type:varchar(10);not null"` // days, weeks, months, years
	MaxSessions   *int      // NULL = unlimited
	IsActive      bool      `gorm:"default:true"`
	SortOrder     int       `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	// Relations
	DiscountCodes []*DiscountCode `gorm:"foreignKey:PlanId"`
	Categories    []*Category     `gorm:"many2many:plan_categories;joinForeignKey:plan_id;joinReferences:category_id"`
}

func (SubscriptionPlan) TableName() string {
	return "subscription_plans"
}

type DiscountCode struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Code        string     `gorm:"type:varchar(50);not null;index"`
	Percentage  float64    `gorm:"type:decimal(5,2);not null"`
	ValidUntil  *time.Time // NULL = never expires
	MaxUses     *int       // NULL = unlimited uses
	CurrentUses int        `gorm:"default:0"`
}

func (DiscountCode) TableName() string {
	return "plan_discount_codes"
}
