package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two racing deductions on a balance of one must resolve to exactly one
// success. The decrement is a conditional UPDATE in the database, so no
// interleaving can drive the balance negative.
func TestConcurrentDeductionNeverOversells(t *testing.T) {
	db := setupDB(t)
	svc := setupServices(db)
	ctx := context.Background()

	maxSessions := 1
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

	const racers = 2
	responses := make([]*dto.DeductSessionResponse, racers)
	results := make([]error, racers)
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func(slot int) {
			defer wg.Done()
			responses[slot], results[slot] = svc.subscription.DeductSession(ctx, sub.Id)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, res := range results {
		if res == nil {
			succeeded++
			// The winner reports the stored balance, not a stale pre-read.
			require.NotNil(t, responses[i].RemainingSessions)
			assert.Equal(t, 0, *responses[i].RemainingSessions)
			continue
		}
		if !errors.Is(res, apperror.ErrEntitlementExhausted) && !apperror.IsInvalidState(res) {
			t.Fatalf("unexpected error from racing deduction: %v", res)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one racer may win the last session")

	final, err := svc.subscription.GetSubscription(ctx, sub.Id)
	require.NoError(t, err)
	require.NotNil(t, final.RemainingSessions)
	assert.Equal(t, 0, *final.RemainingSessions)
}
