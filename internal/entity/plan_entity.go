package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type DurationUnit string

const (
	DurationUnitDays   DurationUnit = "days"
	DurationUnitWeeks  DurationUnit = "weeks"
	DurationUnitMonths DurationUnit = "months"
	DurationUnitYears  DurationUnit = "years"
)

// ValidDurationUnit reports whether the given unit is one of the supported values.
func ValidDurationUnit(unit DurationUnit) bool {
	switch unit {
	case DurationUnitDays, DurationUnitWeeks, DurationUnitMonths, DurationUnitYears:
		return true
	}
	return false
}

type Money struct {
	Amount   float64
	Currency string
}

type PlanDuration struct {
	Value int
	Unit  DurationUnit
}

// DiscountCode is a promotional code attached to a plan.
type DiscountCode struct {
	Id          uuid.UUID
	PlanId      uuid.UUID
	Code        string
	Percentage  float64
	ValidUntil  *time.Time // nil = never expires
	MaxUses     *int       // nil = unlimited uses
	CurrentUses int
}

// IsValidAt reports whether the code can still be redeemed at the given time.
func (d *DiscountCode) IsValidAt(now time.Time) bool {
	if d.ValidUntil != nil && !d.ValidUntil.After(now) {
		return false
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return false
	}
	return true
}

// SubscriptionPlan is a purchasable template: price, duration and session allotment.
type SubscriptionPlan struct {
	Id          uuid.UUID
	Name        string
	Description string
	Price       Money
	Duration    PlanDuration
	MaxSessions *int // nil = unlimited sessions
	IsActive    bool
	SortOrder   int

	DiscountCodes []DiscountCode
	Categories    []Category

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiscountByCode finds a discount code on the plan, case-insensitively.
func (p *SubscriptionPlan) DiscountByCode(code string) *DiscountCode {
	for i := range p.DiscountCodes {
		if strings.EqualFold(p.DiscountCodes[i].Code, code) {
			return &p.DiscountCodes[i]
		}
	}
	return nil
}

// IsDiscountValid reports whether the code exists and is redeemable at the given time.
func (p *SubscriptionPlan) IsDiscountValid(code string, now time.Time) bool {
	d := p.DiscountByCode(code)
	return d != nil && d.IsValidAt(now)
}

// DiscountedPrice returns the price after applying the code, rounded to two
// decimals. An invalid or unknown code yields the full price.
func (p *SubscriptionPlan) DiscountedPrice(code string, now time.Time) float64 {
	d := p.DiscountByCode(code)
	if d == nil || !d.IsValidAt(now) {
		return p.Price.Amount
	}
	discounted := p.Price.Amount - p.Price.Amount*d.Percentage/100
	return math.Round(discounted*100) / 100
}

// ExpiryFrom computes the subscription end date for this plan's duration.
func (p *SubscriptionPlan) ExpiryFrom(start time.Time) time.Time {
	switch p.Duration.Unit {
	case DurationUnitDays:
		return start.AddDate(0, 0, p.Duration.Value)
	case DurationUnitWeeks:
		return start.AddDate(0, 0, 7*p.Duration.Value)
	case DurationUnitMonths:
		return start.AddDate(0, p.Duration.Value, 0)
	case DurationUnitYears:
		return start.AddDate(p.Duration.Value, 0, 0)
	}
	return start
}
