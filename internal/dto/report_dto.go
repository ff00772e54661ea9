package dto

import "time"

// --- Report DTOs ---

type DashboardResponse struct {
	TotalStudents       int64             `json:"total_students"`
	ActiveSubscriptions int64             `json:"active_subscriptions"`
	TotalRevenue        float64           `json:"total_revenue"`
	StatusBreakdown     []StatusCountDTO  `json:"status_breakdown"`
	RevenueByPlan       []PlanRevenueDTO  `json:"revenue_by_plan"`
	RevenueByDay        []DailyRevenueDTO `json:"revenue_by_day"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type PlanRevenueDTO struct {
	PlanName string  `json:"plan_name"`
	Revenue  float64 `json:"revenue"`
	Count    int     `json:"count"`
}

type DailyRevenueDTO struct {
	Day     time.Time `json:"day"`
	Revenue float64   `json:"revenue"`
	Count   int       `json:"count"`
}

type RevenueRangeQuery struct {
	From *time.Time `query:"from"`
	To   *time.Time `query:"to"`
}
