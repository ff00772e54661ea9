package service

import (
	"context"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/repository/unitofwork"
)

type ReportService interface {
	GetDashboard(ctx context.Context, from, to *time.Time) (*dto.DashboardResponse, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReportService(uowFactory unitofwork.RepositoryFactory) ReportService {
	return &reportService{uowFactory: uowFactory}
}

// GetDashboard assembles the admin overview. Revenue figures come straight
// from the ledger: completed payments count positive, refund rows negative.
func (s *reportService) GetDashboard(ctx context.Context, from, to *time.Time) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalStudents, err := uow.StudentRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	activeSubs, err := uow.SubscriptionRepository().CountActive(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := uow.TransactionRepository().GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	statusCounts, err := uow.SubscriptionRepository().CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	planRevenue, err := uow.TransactionRepository().RevenueByPlan(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rangeFrom := now.AddDate(0, 0, -30)
	rangeTo := now
	if from != nil {
		rangeFrom = *from
	}
	if to != nil {
		rangeTo = *to
	}
	dailyRevenue, err := uow.TransactionRepository().RevenueByDay(ctx, rangeFrom, rangeTo)
	if err != nil {
		return nil, err
	}

	res := &dto.DashboardResponse{
		TotalStudents:       totalStudents,
		ActiveSubscriptions: activeSubs,
		TotalRevenue:        totalRevenue,
	}
	for _, sc := range statusCounts {
		res.StatusBreakdown = append(res.StatusBreakdown, dto.StatusCountDTO{Status: sc.Status, Count: sc.Count})
	}
	for _, pr := range planRevenue {
		res.RevenueByPlan = append(res.RevenueByPlan, dto.PlanRevenueDTO{PlanName: pr.PlanName, Revenue: pr.Revenue, Count: pr.Count})
	}
	for _, dr := range dailyRevenue {
		res.RevenueByDay = append(res.RevenueByDay, dto.DailyRevenueDTO{Day: dr.Day, Revenue: dr.Revenue, Count: dr.Count})
	}
	return res, nil
}
