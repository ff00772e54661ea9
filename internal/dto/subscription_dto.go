package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Subscription DTOs ---

type CreateSubscriptionRequest struct {
	StudentId     uuid.UUID  `json:"student_id" validate:"required"`
	PlanId        uuid.UUID  `json:"plan_id" validate:"required"`
	StartDate     *time.Time `json:"start_date"` // nil = now
	PaymentMethod string     `json:"payment_method" validate:"required"`
	DiscountCode  string     `json:"discount_code"`
}

type CancelSubscriptionRequest struct {
	Reason string `json:"reason"`
}

type RenewSubscriptionRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	DiscountCode  string `json:"discount_code"`
}

type DeductSessionRequest struct {
	Reason string `json:"reason"`
}

type DiscountAppliedDTO struct {
	Code        string  `json:"code"`
	Percentage  float64 `json:"percentage"`
	AmountSaved float64 `json:"amount_saved"`
}

type SubscriptionResponse struct {
	Id                uuid.UUID           `json:"id"`
	StudentId         uuid.UUID           `json:"student_id"`
	PlanId            uuid.UUID           `json:"plan_id"`
	PlanName          string              `json:"plan_name,omitempty"`
	StartDate         time.Time           `json:"start_date"`
	EndDate           time.Time           `json:"end_date"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	PaymentMethod     string              `json:"payment_method"`
	AmountPaid        float64             `json:"amount_paid"`
	RemainingSessions *int                `json:"remaining_sessions"` // null = unlimited
	DaysRemaining     int                 `json:"days_remaining"`
	Discount          *DiscountAppliedDTO `json:"discount,omitempty"`
	CancelledAt       *time.Time          `json:"cancelled_at,omitempty"`
	CancelReason      string              `json:"cancel_reason,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

type DeductSessionResponse struct {
	SubscriptionId    uuid.UUID `json:"subscription_id"`
	RemainingSessions *int      `json:"remaining_sessions"` // null = unlimited
	Unlimited         bool      `json:"unlimited"`
}
