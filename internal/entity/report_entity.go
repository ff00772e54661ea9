package entity

import "time"

// PlanRevenue is an aggregate row: completed payment volume per plan.
type PlanRevenue struct {
	PlanName string
	Revenue  float64
	Count    int
}

// StatusCount is an aggregate row: subscriptions per lifecycle status.
type StatusCount struct {
	Status string
	Count  int
}

// DailyRevenue is an aggregate row: completed payment volume per calendar day.
type DailyRevenue struct {
	Day     time.Time
	Revenue float64
	Count   int
}
