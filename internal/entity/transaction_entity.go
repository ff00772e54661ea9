package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string
type TransactionStatus string

const (
	TransactionTypePayment    TransactionType = "payment"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeAdjustment TransactionType = "adjustment"

	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
	TransactionStatusDisputed  TransactionStatus = "disputed"
)

// Transaction is an append-only ledger entry tied to a subscription.
// Refunds create new rows referencing the original instead of mutating it.
type Transaction struct {
	Id                    uuid.UUID
	SubscriptionId        uuid.UUID
	TransactionId         string // "TRX-<epochMillis>-<rand>"; unique index in storage
	Type                  TransactionType
	Amount                float64
	Currency              string
	PaymentMethod         string
	Status                TransactionStatus
	RefundedTransactionId *uuid.UUID // set on refund rows, points at the original
	Reason                string
	InvoiceId             string
	InvoiceUrl            string
	GatewayOrderId        *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// CanBeRefunded is only true for completed transactions; a refunded
// transaction is terminal and cannot be refunded twice.
func (t *Transaction) CanBeRefunded() bool {
	return t.Status == TransactionStatusCompleted
}
