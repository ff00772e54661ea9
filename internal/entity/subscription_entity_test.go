package entity

import (
	"testing"
	"time"
)

func baseSubscription(status SubscriptionStatus, start, end time.Time) Subscription {
	return Subscription{
		Status:    status,
		StartDate: start,
		EndDate:   end,
	}
}

func TestIsActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, -1, 0)
	end := now.AddDate(0, 1, 0)

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{
			name: "active inside range with sessions",
			sub: func() Subscription {
				s := baseSubscription(SubscriptionStatusActive, start, end)
				s.RemainingSessions = ptrInt(3)
				return s
			}(),
			want: true,
		},
		{
			name: "unlimited entitlement is active",
			sub:  baseSubscription(SubscriptionStatusActive, start, end),
			want: true,
		},
		{
			name: "pending is not active",
			sub:  baseSubscription(SubscriptionStatusPending, start, end),
			want: false,
		},
		{
			name: "before start date",
			sub:  baseSubscription(SubscriptionStatusActive, now.Add(time.Hour), end),
			want: false,
		},
		{
			name: "past end date",
			sub:  baseSubscription(SubscriptionStatusActive, start, now.Add(-time.Hour)),
			want: false,
		},
		{
			name: "zero remaining sessions",
			sub: func() Subscription {
				s := baseSubscription(SubscriptionStatusActive, start, end)
				s.RemainingSessions = ptrInt(0)
				return s
			}(),
			want: false,
		},
		{
			name: "cancelled inside range",
			sub:  baseSubscription(SubscriptionStatusCancelled, start, end),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.IsActiveAt(now); got != tt.want {
				t.Errorf("IsActiveAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEffectiveStatusLazyExpiry(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// Stored active past its end date reads as expired without a write.
	stale := baseSubscription(SubscriptionStatusActive, now.AddDate(0, -2, 0), now.Add(-time.Hour))
	if got := stale.EffectiveStatus(now); got != SubscriptionStatusExpired {
		t.Errorf("EffectiveStatus(stale active) = %v, want expired", got)
	}

	current := baseSubscription(SubscriptionStatusActive, now.AddDate(0, -1, 0), now.AddDate(0, 1, 0))
	if got := current.EffectiveStatus(now); got != SubscriptionStatusActive {
		t.Errorf("EffectiveStatus(current active) = %v, want active", got)
	}

	// Terminal statuses are never rewritten by the clock.
	cancelled := baseSubscription(SubscriptionStatusCancelled, now.AddDate(0, -2, 0), now.Add(-time.Hour))
	if got := cancelled.EffectiveStatus(now); got != SubscriptionStatusCancelled {
		t.Errorf("EffectiveStatus(cancelled) = %v, want cancelled", got)
	}
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	sub := baseSubscription(SubscriptionStatusActive, now.AddDate(0, -1, 0), now.AddDate(0, 0, 10))
	if got := sub.DaysRemaining(now); got != 10 {
		t.Errorf("DaysRemaining() = %d, want 10", got)
	}

	lapsed := baseSubscription(SubscriptionStatusActive, now.AddDate(0, -2, 0), now.AddDate(0, 0, -5))
	if got := lapsed.DaysRemaining(now); got != 0 {
		t.Errorf("DaysRemaining(past end) = %d, want 0", got)
	}
}

func TestCanBeCancelled(t *testing.T) {
	tests := []struct {
		status SubscriptionStatus
		want   bool
	}{
		{SubscriptionStatusActive, true},
		{SubscriptionStatusPending, true},
		{SubscriptionStatusCancelled, false},
		{SubscriptionStatusExpired, false},
	}
	for _, tt := range tests {
		sub := Subscription{Status: tt.status}
		if got := sub.CanBeCancelled(); got != tt.want {
			t.Errorf("CanBeCancelled(%s) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCanBeRenewed(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  SubscriptionStatus
		endDate time.Time
		want    bool
	}{
		{name: "active ending soon", status: SubscriptionStatusActive, endDate: now.AddDate(0, 0, 7), want: true},
		{name: "expired within window", status: SubscriptionStatusExpired, endDate: now.AddDate(0, 0, -20), want: true},
		{name: "expired too long ago", status: SubscriptionStatusExpired, endDate: now.AddDate(0, 0, -31), want: false},
		{name: "active ending too far out", status: SubscriptionStatusActive, endDate: now.AddDate(0, 0, 31), want: false},
		{name: "exactly at window edge", status: SubscriptionStatusActive, endDate: now.Add(RenewalWindow), want: true},
		{name: "cancelled never renews", status: SubscriptionStatusCancelled, endDate: now.AddDate(0, 0, 7), want: false},
		{name: "pending never renews", status: SubscriptionStatusPending, endDate: now.AddDate(0, 0, 7), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := baseSubscription(tt.status, now.AddDate(0, -1, 0), tt.endDate)
			if got := sub.CanBeRenewed(now); got != tt.want {
				t.Errorf("CanBeRenewed() = %v, want %v", got, tt.want)
			}
		})
	}
}
