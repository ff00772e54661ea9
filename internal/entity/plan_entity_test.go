package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func ptrInt(v int) *int { return &v }

func TestDiscountedPrice(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.AddDate(0, 1, 0)

	plan := SubscriptionPlan{
		Id:    uuid.New(),
		Name:  "Starter Monthly",
		Price: Money{Amount: 200, Currency: "USD"},
		DiscountCodes: []DiscountCode{
			{Code: "WELCOME10", Percentage: 10, ValidUntil: &future},
			{Code: "EXPIRED20", Percentage: 20, ValidUntil: &past},
			{Code: "USEDUP", Percentage: 50, MaxUses: ptrInt(3), CurrentUses: 3},
			{Code: "FOREVER15", Percentage: 15},
		},
	}

	tests := []struct {
		name string
		code string
		want float64
	}{
		{name: "valid code applies percentage", code: "WELCOME10", want: 180.00},
		{name: "code lookup is case-insensitive", code: "welcome10", want: 180.00},
		{name: "expired code yields full price", code: "EXPIRED20", want: 200},
		{name: "exhausted code yields full price", code: "USEDUP", want: 200},
		{name: "unknown code yields full price", code: "NOPE", want: 200},
		{name: "no expiry means always valid", code: "FOREVER15", want: 170.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plan.DiscountedPrice(tt.code, now)
			if got != tt.want {
				t.Errorf("DiscountedPrice(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDiscountedPriceRounding(t *testing.T) {
	plan := SubscriptionPlan{
		Price:         Money{Amount: 99.99, Currency: "USD"},
		DiscountCodes: []DiscountCode{{Code: "THIRD", Percentage: 33.33}},
	}

	got := plan.DiscountedPrice("THIRD", time.Now())
	if got != 66.66 {
		t.Errorf("DiscountedPrice rounding = %v, want 66.66", got)
	}
}

func TestExpiryFrom(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration PlanDuration
		want     time.Time
	}{
		{name: "days", duration: PlanDuration{Value: 10, Unit: DurationUnitDays}, want: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)},
		{name: "weeks", duration: PlanDuration{Value: 2, Unit: DurationUnitWeeks}, want: time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)},
		{name: "one month", duration: PlanDuration{Value: 1, Unit: DurationUnitMonths}, want: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)},
		{name: "years", duration: PlanDuration{Value: 1, Unit: DurationUnitYears}, want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := SubscriptionPlan{Duration: tt.duration}
			got := plan.ExpiryFrom(start)
			if !got.Equal(tt.want) {
				t.Errorf("ExpiryFrom(%v) = %v, want %v", start, got, tt.want)
			}
		})
	}
}

func TestExpiryFromMonthEndNormalization(t *testing.T) {
	// AddDate normalizes Jan 31 + 1 month to Mar 3 (non-leap year).
	start := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	plan := SubscriptionPlan{Duration: PlanDuration{Value: 1, Unit: DurationUnitMonths}}

	got := plan.ExpiryFrom(start)
	want := time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ExpiryFrom(Jan 31) = %v, want %v", got, want)
	}
}

func TestValidDurationUnit(t *testing.T) {
	for _, unit := range []DurationUnit{DurationUnitDays, DurationUnitWeeks, DurationUnitMonths, DurationUnitYears} {
		if !ValidDurationUnit(unit) {
			t.Errorf("ValidDurationUnit(%q) = false, want true", unit)
		}
	}
	if ValidDurationUnit("fortnights") {
		t.Error("ValidDurationUnit(\"fortnights\") = true, want false")
	}
}
