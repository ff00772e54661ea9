package service

import (
	"context"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/apperror"
	"sports-academy-be/internal/pkg/logger"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"
	"sports-academy-be/pkg/events"
	pktNats "sports-academy-be/pkg/nats"

	"github.com/google/uuid"
)

type SubscriptionService interface {
	CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error)
	GetStudentSubscriptions(ctx context.Context, studentId uuid.UUID) ([]*dto.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, id uuid.UUID, req *dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error)
	RenewSubscription(ctx context.Context, id uuid.UUID, req *dto.RenewSubscriptionRequest) (*dto.SubscriptionResponse, error)
	DeductSession(ctx context.Context, id uuid.UUID) (*dto.DeductSessionResponse, error)
	SweepExpired(ctx context.Context) (int64, error)
}

type subscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) SubscriptionService {
	return &subscriptionService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

// CreateSubscription creates a pending subscription. It only becomes active
// once a payment is recorded against it.
func (s *subscriptionService) CreateSubscription(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: req.StudentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: req.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}
	if !plan.IsActive {
		return nil, apperror.Validationf("plan %q is not open for subscription", plan.Name)
	}

	now := time.Now()
	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}

	sub := &entity.Subscription{
		Id:            uuid.New(),
		StudentId:     student.Id,
		PlanId:        plan.Id,
		StartDate:     start,
		EndDate:       plan.ExpiryFrom(start),
		Status:        entity.SubscriptionStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		PaymentMethod: req.PaymentMethod,
	}
	if plan.MaxSessions != nil {
		remaining := *plan.MaxSessions
		sub.RemainingSessions = &remaining
	}

	price := plan.Price.Amount
	if req.DiscountCode != "" {
		discount := plan.DiscountByCode(req.DiscountCode)
		if discount == nil || !discount.IsValidAt(now) {
			return nil, apperror.Validationf("discount code %q is not valid", req.DiscountCode)
		}
		redeemed, err := uow.PlanRepository().RedeemDiscount(ctx, discount.Id)
		if err != nil {
			return nil, err
		}
		if !redeemed {
			return nil, apperror.Validationf("discount code %q has reached its usage limit", req.DiscountCode)
		}
		final := plan.DiscountedPrice(req.DiscountCode, now)
		sub.Discount = &entity.DiscountApplied{
			Code:        discount.Code,
			Percentage:  discount.Percentage,
			AmountSaved: price - final,
		}
		price = final
	}
	sub.AmountPaid = 0 // nothing collected yet; price is settled by recordPayment

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	s.publish(ctx, events.SubscriptionCreated, map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"student_id":      student.Id.String(),
		"student_name":    student.FullName,
		"plan_id":         plan.Id.String(),
		"plan_name":       plan.Name,
		"amount_due":      price,
	})

	return s.toResponse(sub, plan.Name, now), nil
}

func (s *subscriptionService) GetSubscription(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}
	return s.toResponse(sub, "", time.Now()), nil
}

func (s *subscriptionService) GetStudentSubscriptions(ctx context.Context, studentId uuid.UUID) ([]*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx,
		specification.ByStudent{StudentID: studentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, s.toResponse(sub, "", now))
	}
	return result, nil
}

// CancelSubscription is terminal: no reactivation path exists. Remaining
// sessions are forfeited, which keeps cancel vs refund decisions explicit.
func (s *subscriptionService) CancelSubscription(ctx context.Context, id uuid.UUID, req *dto.CancelSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}
	if !sub.CanBeCancelled() {
		return nil, apperror.InvalidStatef("cannot cancel a %s subscription", sub.EffectiveStatus(time.Now()))
	}

	now := time.Now()
	sub.Status = entity.SubscriptionStatusCancelled
	sub.CancelledAt = &now
	sub.CancelReason = req.Reason

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, err
	}

	s.publish(ctx, events.SubscriptionCancelled, map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"student_id":      sub.StudentId.String(),
		"reason":          req.Reason,
	})

	return s.toResponse(sub, "", now), nil
}

// RenewSubscription creates a fresh pending subscription rather than
// stretching the old row, so each term keeps its own ledger history. The new
// term starts at the old end date, or now if the old term already lapsed.
func (s *subscriptionService) RenewSubscription(ctx context.Context, id uuid.UUID, req *dto.RenewSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}

	now := time.Now()
	if !sub.CanBeRenewed(now) {
		return nil, apperror.InvalidStatef("subscription is outside its renewal window")
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}

	start := sub.EndDate
	if now.After(sub.EndDate) {
		start = now
	}

	renewed, err := s.CreateSubscription(ctx, &dto.CreateSubscriptionRequest{
		StudentId:     sub.StudentId,
		PlanId:        sub.PlanId,
		StartDate:     &start,
		PaymentMethod: req.PaymentMethod,
		DiscountCode:  req.DiscountCode,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.SubscriptionRenewed, map[string]interface{}{
		"subscription_id": renewed.Id.String(),
		"previous_id":     sub.Id.String(),
		"student_id":      sub.StudentId.String(),
		"new_start_date":  renewed.StartDate,
		"new_end_date":    renewed.EndDate,
	})

	return renewed, nil
}

// DeductSession consumes one session unit. The decrement is a single
// conditional UPDATE in the repository; when it matches no row we reload to
// tell "exhausted" apart from "not active".
func (s *subscriptionService) DeductSession(ctx context.Context, id uuid.UUID) (*dto.DeductSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}

	now := time.Now()

	if sub.RemainingSessions == nil {
		// Unlimited entitlement: nothing to decrement, but the subscription
		// must still be usable.
		if !sub.IsActiveAt(now) {
			return nil, apperror.InvalidStatef("subscription is %s", sub.EffectiveStatus(now))
		}
		return &dto.DeductSessionResponse{SubscriptionId: sub.Id, RemainingSessions: nil, Unlimited: true}, nil
	}

	if sub.EffectiveStatus(now) != entity.SubscriptionStatusActive || now.Before(sub.StartDate) {
		return nil, apperror.InvalidStatef("subscription is %s", sub.EffectiveStatus(now))
	}

	deducted, err := uow.SubscriptionRepository().DeductSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deducted {
		// The conditional update lost: either another deduction drained the
		// last session first, or the status changed under us.
		fresh, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if fresh != nil && fresh.Status == entity.SubscriptionStatusActive &&
			fresh.RemainingSessions != nil && *fresh.RemainingSessions <= 0 {
			return nil, apperror.ErrEntitlementExhausted
		}
		status := entity.SubscriptionStatusExpired
		if fresh != nil {
			status = fresh.EffectiveStatus(now)
		}
		return nil, apperror.InvalidStatef("subscription is %s", status)
	}

	// Report the stored balance, not pre-read minus one: with concurrent
	// winners the pre-read is stale and two callers would both claim the
	// same count.
	fresh, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	remaining := *sub.RemainingSessions - 1
	if fresh != nil && fresh.RemainingSessions != nil {
		remaining = *fresh.RemainingSessions
	}
	return &dto.DeductSessionResponse{
		SubscriptionId:    sub.Id,
		RemainingSessions: &remaining,
	}, nil
}

// SweepExpired rewrites stored statuses that lazy evaluation already treats
// as expired. Purely an optimization for listing queries.
func (s *subscriptionService) SweepExpired(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	n, err := uow.SubscriptionRepository().MarkExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("SubscriptionService", "expired subscriptions swept", map[string]interface{}{"count": n})
		s.publish(ctx, events.SubscriptionExpired, map[string]interface{}{"count": n})
	}
	return n, nil
}

func (s *subscriptionService) publish(ctx context.Context, code string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(code, data)); err != nil {
		s.logger.Warn("SubscriptionService", "event publish failed", map[string]interface{}{
			"event": code,
			"error": err.Error(),
		})
	}
}

func (s *subscriptionService) toResponse(sub *entity.Subscription, planName string, now time.Time) *dto.SubscriptionResponse {
	res := &dto.SubscriptionResponse{
		Id:                sub.Id,
		StudentId:         sub.StudentId,
		PlanId:            sub.PlanId,
		PlanName:          planName,
		StartDate:         sub.StartDate,
		EndDate:           sub.EndDate,
		Status:            string(sub.EffectiveStatus(now)),
		PaymentStatus:     string(sub.PaymentStatus),
		PaymentMethod:     sub.PaymentMethod,
		AmountPaid:        sub.AmountPaid,
		RemainingSessions: sub.RemainingSessions,
		DaysRemaining:     sub.DaysRemaining(now),
		CancelledAt:       sub.CancelledAt,
		CancelReason:      sub.CancelReason,
		CreatedAt:         sub.CreatedAt,
	}
	if sub.Discount != nil {
		res.Discount = &dto.DiscountAppliedDTO{
			Code:        sub.Discount.Code,
			Percentage:  sub.Discount.Percentage,
			AmountSaved: sub.Discount.AmountSaved,
		}
	}
	return res
}
