package model

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	Id                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubscriptionId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	TransactionId         string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	Type                  string     `gorm:"type:varchar(20);not null"` // payment, refund, adjustment
	Amount                float64    `gorm:"type:decimal(10,2);not null"`
	Currency              string     `gorm:"type:varchar(3);not null;default:'USD'"`
	PaymentMethod         string     `gorm:"type:varchar(50)"`
	Status                string     `gorm:"type:varchar(20);not null"`
	RefundedTransactionId *uuid.UUID `gorm:"type:uuid;index"`
	Reason                string     `gorm:"type:text"`
	InvoiceId             string     `gorm:"type:varchar(80)"`
	InvoiceUrl            string     `gorm:"type:varchar(255)"`
	GatewayOrderId        *string    `gorm:"type:varchar(255)"`
	CreatedAt             time.Time  `gorm:"autoCreateTime"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
