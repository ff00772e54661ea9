package unitofwork

import (
	"context"

	"sports-academy-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	StudentRepository() contract.StudentRepository
	CategoryRepository() contract.CategoryRepository
	PlanRepository() contract.PlanRepository
	SubscriptionRepository() contract.SubscriptionRepository
	TransactionRepository() contract.TransactionRepository
	AttendanceRepository() contract.AttendanceRepository
	NotificationRepository() contract.NotificationRepository
}
