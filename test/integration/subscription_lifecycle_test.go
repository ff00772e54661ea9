package integration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/pkg/apperror"
	"sports-academy-be/internal/repository/unitofwork"
	"sports-academy-be/internal/service"
	"sports-academy-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return gormDB
}

type academyServices struct {
	uowFactory   unitofwork.RepositoryFactory
	student      service.StudentService
	plan         service.PlanService
	subscription service.SubscriptionService
	transaction  service.TransactionService
}

func setupServices(db *gorm.DB) *academyServices {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	subscriptionService := service.NewSubscriptionService(uowFactory, nil, testLogger{})
	return &academyServices{
		uowFactory:   uowFactory,
		student:      service.NewStudentService(uowFactory),
		plan:         service.NewPlanService(uowFactory),
		subscription: subscriptionService,
		transaction:  service.NewTransactionService(uowFactory, nil, nil, testLogger{}, "http://localhost:3000"),
	}
}

// testLogger keeps integration output quiet without touching log files.
type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{}) {}
func (testLogger) Warn(module, message string, details map[string]interface{}) {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}

func (testLogger) Sync() error { return nil }

func seedStudentAndPlan(t *testing.T, svc *academyServices, maxSessions *int) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	stamp := time.Now().UnixNano()

	category, err := svc.plan.CreateCategory(ctx, &dto.CreateCategoryRequest{
		Name: fmt.Sprintf("Lifecycle Test %d", stamp),
	})
	require.NoError(t, err)

	plan, err := svc.plan.CreatePlan(ctx, &dto.CreatePlanRequest{
		Name:        fmt.Sprintf("Lifecycle Plan %d", stamp),
		Price:       100,
		Currency:    "USD",
		Duration:    dto.DurationDTO{Value: 1, Unit: "months"},
		MaxSessions: maxSessions,
		CategoryIds: []uuid.UUID{category.Id},
	})
	require.NoError(t, err)

	student, err := svc.student.CreateStudent(ctx, &dto.CreateStudentRequest{
		FullName: "Lifecycle Student",
		Email:    fmt.Sprintf("lifecycle-%d@example.com", stamp),
	})
	require.NoError(t, err)

	return student.Id, plan.Id
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := setupDB(t)
	svc := setupServices(db)
	ctx := context.Background()

	maxSessions := 4
	studentId, planId := seedStudentAndPlan(t, svc, &maxSessions)

	// 1. Subscribe: starts pending with zero balance consumed
	sub, err := svc.subscription.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		StudentId:     studentId,
		PlanId:        planId,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", sub.Status)
	require.NotNil(t, sub.RemainingSessions)
	assert.Equal(t, 4, *sub.RemainingSessions)

	// 2. Deducting from a pending subscription is rejected
	_, err = svc.subscription.DeductSession(ctx, sub.Id)
	assert.True(t, apperror.IsInvalidState(err), "expected invalid state, got %v", err)

	// 3. Recording the payment activates it
	trx, err := svc.transaction.RecordPayment(ctx, &dto.RecordPaymentRequest{
		SubscriptionId: sub.Id,
		Amount:         100,
		Currency:       "USD",
		PaymentMethod:  "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", trx.Status)

	activated, err := svc.subscription.GetSubscription(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "active", activated.Status)
	assert.Equal(t, "paid", activated.PaymentStatus)

	// 4. Four deductions drain the allotment
	for i := 3; i >= 0; i-- {
		res, err := svc.subscription.DeductSession(ctx, sub.Id)
		require.NoError(t, err)
		require.NotNil(t, res.RemainingSessions)
		assert.Equal(t, i, *res.RemainingSessions)
	}

	// 5. The fifth deduction reports exhaustion, never negative balance
	_, err = svc.subscription.DeductSession(ctx, sub.Id)
	assert.True(t, errors.Is(err, apperror.ErrEntitlementExhausted), "expected exhausted, got %v", err)

	drained, err := svc.subscription.GetSubscription(ctx, sub.Id)
	require.NoError(t, err)
	require.NotNil(t, drained.RemainingSessions)
	assert.Equal(t, 0, *drained.RemainingSessions)

	// 6. Cancel is terminal; further deductions are rejected
	cancelled, err := svc.subscription.CancelSubscription(ctx, sub.Id, &dto.CancelSubscriptionRequest{Reason: "moving away"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = svc.subscription.DeductSession(ctx, sub.Id)
	assert.True(t, apperror.IsInvalidState(err), "expected invalid state, got %v", err)

	_, err = svc.subscription.CancelSubscription(ctx, sub.Id, &dto.CancelSubscriptionRequest{})
	assert.True(t, apperror.IsInvalidState(err), "cancel must not apply twice")
}

func TestRefundFlow(t *testing.T) {
	db := setupDB(t)
	svc := setupServices(db)
	ctx := context.Background()

	studentId, planId := seedStudentAndPlan(t, svc, nil)

	sub, err := svc.subscription.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		StudentId:     studentId,
		PlanId:        planId,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)
	assert.Nil(t, sub.RemainingSessions, "plan without max sessions is unlimited")

	trx, err := svc.transaction.RecordPayment(ctx, &dto.RecordPaymentRequest{
		SubscriptionId: sub.Id,
		Amount:         100,
		PaymentMethod:  "transfer",
	})
	require.NoError(t, err)

	// Partial refund beyond the original amount is rejected
	tooMuch := 150.0
	_, err = svc.transaction.ProcessRefund(ctx, trx.Id, &dto.RefundRequest{Amount: &tooMuch, Reason: "overcharge claim"})
	assert.True(t, apperror.IsValidation(err), "expected validation error, got %v", err)

	// Full refund creates a new ledger row referencing the original
	refund, err := svc.transaction.ProcessRefund(ctx, trx.Id, &dto.RefundRequest{Reason: "programme closed"})
	require.NoError(t, err)
	assert.Equal(t, "refunded", refund.OriginalTransaction.Status)
	assert.Equal(t, "refund", refund.RefundTransaction.Type)
	assert.Equal(t, 100.0, refund.RefundTransaction.Amount)
	require.NotNil(t, refund.RefundTransaction.RefundedTransactionId)
	assert.Equal(t, trx.Id, *refund.RefundTransaction.RefundedTransactionId)

	// A refunded transaction is terminal
	_, err = svc.transaction.ProcessRefund(ctx, trx.Id, &dto.RefundRequest{Reason: "double dip attempt"})
	assert.True(t, apperror.IsInvalidState(err), "expected invalid state, got %v", err)

	refreshed, err := svc.subscription.GetSubscription(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "refunded", refreshed.PaymentStatus)
}

func TestInvoiceIsIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := setupServices(db)
	ctx := context.Background()

	studentId, planId := seedStudentAndPlan(t, svc, nil)

	sub, err := svc.subscription.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		StudentId:     studentId,
		PlanId:        planId,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	trx, err := svc.transaction.RecordPayment(ctx, &dto.RecordPaymentRequest{
		SubscriptionId: sub.Id,
		Amount:         100,
		PaymentMethod:  "card",
	})
	require.NoError(t, err)

	first, err := svc.transaction.GenerateInvoice(ctx, trx.Id)
	require.NoError(t, err)
	assert.Equal(t, "INV-"+trx.TransactionId, first.InvoiceId)

	second, err := svc.transaction.GenerateInvoice(ctx, trx.Id)
	require.NoError(t, err)
	assert.Equal(t, first.InvoiceId, second.InvoiceId)
	assert.Equal(t, first.InvoiceUrl, second.InvoiceUrl)
}

// A failed write after a committed deduction must be compensated, not leak
// the session. The re-credit is the repository primitive that compensation
// path relies on.
func TestRecreditReturnsDeductedSession(t *testing.T) {
	db := setupDB(t)
	svc := setupServices(db)
	ctx := context.Background()

	maxSessions := 2
	studentId, planId := seedStudentAndPlan(t, svc, &maxSessions)

	sub, err := svc.subscription.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		StudentId:     studentId,
		PlanId:        planId,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	_, err = svc.transaction.RecordPayment(ctx, &dto.RecordPaymentRequest{
		SubscriptionId: sub.Id,
		Amount:         100,
		PaymentMethod:  "card",
	})
	require.NoError(t, err)

	res, err := svc.subscription.DeductSession(ctx, sub.Id)
	require.NoError(t, err)
	require.NotNil(t, res.RemainingSessions)
	assert.Equal(t, 1, *res.RemainingSessions)

	uow := svc.uowFactory.NewUnitOfWork(ctx)
	credited, err := uow.SubscriptionRepository().RecreditSession(ctx, sub.Id)
	require.NoError(t, err)
	assert.True(t, credited)

	restored, err := svc.subscription.GetSubscription(ctx, sub.Id)
	require.NoError(t, err)
	require.NotNil(t, restored.RemainingSessions)
	assert.Equal(t, 2, *restored.RemainingSessions)
}

func TestRecreditSkipsUnlimitedSubscription(t *testing.T) {
	db := setupDB(t)
	svc := setupServices(db)
	ctx := context.Background()

	studentId, planId := seedStudentAndPlan(t, svc, nil)

	sub, err := svc.subscription.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		StudentId:     studentId,
		PlanId:        planId,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	uow := svc.uowFactory.NewUnitOfWork(ctx)
	credited, err := uow.SubscriptionRepository().RecreditSession(ctx, sub.Id)
	require.NoError(t, err)
	assert.False(t, credited, "unlimited entitlement has nothing to credit")
}
