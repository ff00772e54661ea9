package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string
type PaymentStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// RenewalWindow is how close to the end date a renewal may happen, on either side.
const RenewalWindow = 30 * 24 * time.Hour

// DiscountApplied records the discount redeemed at subscription creation.
type DiscountApplied struct {
	Code        string
	Percentage  float64
	AmountSaved float64
}

// Subscription is a student's purchase of a plan, with its own date range
// and session balance.
type Subscription struct {
	Id                uuid.UUID
	StudentId         uuid.UUID
	PlanId            uuid.UUID
	StartDate         time.Time
	EndDate           time.Time
	Status            SubscriptionStatus
	PaymentStatus     PaymentStatus
	PaymentMethod     string
	AmountPaid        float64
	RemainingSessions *int // nil = unlimited entitlement
	Discount          *DiscountApplied
	CancelledAt       *time.Time
	CancelReason      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsActiveAt never trusts the stored status alone: the subscription must be
// active, inside its date range, and hold remaining entitlement.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}
	if now.Before(s.StartDate) || now.After(s.EndDate) {
		return false
	}
	if s.RemainingSessions != nil && *s.RemainingSessions <= 0 {
		return false
	}
	return true
}

// EffectiveStatus applies lazy expiry: a stored "active" past its end date
// reads as expired even before the row is rewritten.
func (s *Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status == SubscriptionStatusActive && now.After(s.EndDate) {
		return SubscriptionStatusExpired
	}
	return s.Status
}

// DaysRemaining is recomputed on every access, never cached in storage.
func (s *Subscription) DaysRemaining(now time.Time) int {
	if now.After(s.EndDate) {
		return 0
	}
	return int(s.EndDate.Sub(now).Hours() / 24)
}

func (s *Subscription) CanBeCancelled() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusPending
}

// CanBeRenewed requires active or expired status and now within the renewal
// window of the end date, before or after.
func (s *Subscription) CanBeRenewed(now time.Time) bool {
	if s.Status != SubscriptionStatusActive && s.Status != SubscriptionStatusExpired {
		return false
	}
	delta := now.Sub(s.EndDate)
	if delta < 0 {
		delta = -delta
	}
	return delta <= RenewalWindow
}
