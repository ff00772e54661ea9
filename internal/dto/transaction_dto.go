package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Transaction DTOs ---

type RecordPaymentRequest struct {
	SubscriptionId uuid.UUID `json:"subscription_id" validate:"required"`
	Amount         float64   `json:"amount" validate:"required,gt=0"`
	Currency       string    `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod  string    `json:"payment_method" validate:"required"`
}

type CreateTransactionRequest struct {
	SubscriptionId uuid.UUID `json:"subscription_id" validate:"required"`
	TransactionId  string    `json:"transaction_id"` // generated when absent
	Type           string    `json:"type" validate:"required,oneof=payment refund adjustment"`
	Amount         float64   `json:"amount" validate:"required"`
	Currency       string    `json:"currency" validate:"omitempty,len=3"`
	PaymentMethod  string    `json:"payment_method"`
	Status         string    `json:"status" validate:"required,oneof=pending completed failed refunded disputed"`
	Reason         string    `json:"reason"`
}

type RefundRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"` // nil = full refund
	Reason string   `json:"reason" validate:"required,min=5"`
}

type TransactionResponse struct {
	Id                    uuid.UUID  `json:"id"`
	SubscriptionId        uuid.UUID  `json:"subscription_id"`
	TransactionId         string     `json:"transaction_id"`
	Type                  string     `json:"type"`
	Amount                float64    `json:"amount"`
	Currency              string     `json:"currency"`
	PaymentMethod         string     `json:"payment_method"`
	Status                string     `json:"status"`
	RefundedTransactionId *uuid.UUID `json:"refunded_transaction_id,omitempty"`
	Reason                string     `json:"reason,omitempty"`
	InvoiceId             string     `json:"invoice_id,omitempty"`
	InvoiceUrl            string     `json:"invoice_url,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type RefundResponse struct {
	OriginalTransaction TransactionResponse `json:"original_transaction"`
	RefundTransaction   TransactionResponse `json:"refund_transaction"`
}

type InvoiceResponse struct {
	TransactionId string `json:"transaction_id"`
	InvoiceId     string `json:"invoice_id"`
	InvoiceUrl    string `json:"invoice_url"`
}
