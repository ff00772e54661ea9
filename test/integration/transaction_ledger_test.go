package integration

import (
	"context"
	"regexp"
	"testing"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualLedgerEntry(t *testing.T) {
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

	_, err = svc.transaction.RecordPayment(ctx, &dto.RecordPaymentRequest{
		SubscriptionId: sub.Id,
		Amount:         100,
		PaymentMethod:  "card",
	})
	require.NoError(t, err)

	// An adjustment row carries a supplied type/status and may be negative;
	// it never touches the subscription lifecycle.
	adj, err := svc.transaction.CreateTransaction(ctx, &dto.CreateTransactionRequest{
		SubscriptionId: sub.Id,
		Type:           "adjustment",
		Amount:         -15,
		Status:         "completed",
		Reason:         "goodwill credit for cancelled session",
	})
	require.NoError(t, err)
	assert.Equal(t, "adjustment", adj.Type)
	assert.Equal(t, -15.0, adj.Amount)
	assert.Regexp(t, regexp.MustCompile(`^TRX-\d+-\d+$`), adj.TransactionId, "code generated when absent")

	refreshed, err := svc.subscription.GetSubscription(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "active", refreshed.Status, "manual entries leave the lifecycle alone")

	// A supplied code is kept as-is.
	imported, err := svc.transaction.CreateTransaction(ctx, &dto.CreateTransactionRequest{
		SubscriptionId: sub.Id,
		TransactionId:  "TRX-0-0",
		Type:           "payment",
		Amount:         50,
		Status:         "pending",
		PaymentMethod:  "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "TRX-0-0", imported.TransactionId)
	assert.Equal(t, "pending", imported.Status)

	rows, err := svc.transaction.GetSubscriptionTransactions(ctx, sub.Id)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	// Non-adjustment entries must still carry a positive amount.
	_, err = svc.transaction.CreateTransaction(ctx, &dto.CreateTransactionRequest{
		SubscriptionId: sub.Id,
		Type:           "payment",
		Amount:         -50,
		Status:         "completed",
	})
	assert.True(t, apperror.IsValidation(err), "expected validation error, got %v", err)
}
