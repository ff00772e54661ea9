package dto

import (
	"github.com/google/uuid"
)

// --- Online Checkout DTOs (Midtrans Snap) ---

type CheckoutRequest struct {
	SubscriptionId uuid.UUID `json:"subscription_id" validate:"required"`
}

type CheckoutResponse struct {
	OrderId     string `json:"order_id"`
	SnapToken   string `json:"snap_token"`
	RedirectUrl string `json:"redirect_url"`
}

// MidtransNotification is the payload Midtrans posts to the webhook endpoint.
type MidtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
}
