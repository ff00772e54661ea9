package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
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

type TransactionService interface {
	CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.TransactionResponse, error)
	ProcessRefund(ctx context.Context, transactionId uuid.UUID, req *dto.RefundRequest) (*dto.RefundResponse, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	GetSubscriptionTransactions(ctx context.Context, subscriptionId uuid.UUID) ([]*dto.TransactionResponse, error)
	GenerateInvoice(ctx context.Context, transactionId uuid.UUID) (*dto.InvoiceResponse, error)
}

type transactionService struct {
	uowFactory       unitofwork.RepositoryFactory
	eventPublisher   *pktNats.Publisher
	billingPublisher IPublisherService
	logger           logger.ILogger
	invoiceBaseUrl   string
}

func NewTransactionService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, billingPublisher IPublisherService, log logger.ILogger, invoiceBaseUrl string) TransactionService {
	return &transactionService{
		uowFactory:       uowFactory,
		eventPublisher:   eventPublisher,
		billingPublisher: billingPublisher,
		logger:           log,
		invoiceBaseUrl:   invoiceBaseUrl,
	}
}

// newTransactionCode builds the public ledger identifier. The epoch-millis
// prefix plus random suffix makes collisions rare; the unique index on the
// column catches the rest.
func newTransactionCode() string {
	return fmt.Sprintf("TRX-%d-%d", time.Now().UnixMilli(), rand.Intn(10000))
}

// CreateTransaction appends a ledger row with the caller-supplied type and
// status, for manual bookkeeping (adjustments, imported records). Unlike
// RecordPayment it never touches the subscription lifecycle. The public code
// is generated only when the caller did not supply one.
func (s *transactionService) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if entity.TransactionType(req.Type) != entity.TransactionTypeAdjustment && req.Amount <= 0 {
		return nil, apperror.Validationf("%s amount must be positive", req.Type)
	}

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: req.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}

	code := req.TransactionId
	if code == "" {
		code = newTransactionCode()
	}
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	trx := &entity.Transaction{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		TransactionId:  code,
		Type:           entity.TransactionType(req.Type),
		Amount:         req.Amount,
		Currency:       currency,
		PaymentMethod:  req.PaymentMethod,
		Status:         entity.TransactionStatus(req.Status),
		Reason:         req.Reason,
	}
	if err := uow.TransactionRepository().Create(ctx, trx); err != nil {
		return nil, err
	}

	return toTransactionResponse(trx), nil
}

// RecordPayment appends a completed payment row and flips the subscription
// pending -> active. This is the only path that activates a subscription.
func (s *transactionService) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.Amount <= 0 {
		return nil, apperror.Validationf("payment amount must be positive")
	}

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: req.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}
	if sub.Status != entity.SubscriptionStatusPending {
		return nil, apperror.InvalidStatef("subscription is %s, only pending subscriptions accept payment", sub.Status)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	trx := &entity.Transaction{
		Id:             uuid.New(),
		SubscriptionId: sub.Id,
		TransactionId:  newTransactionCode(),
		Type:           entity.TransactionTypePayment,
		Amount:         req.Amount,
		Currency:       currency,
		PaymentMethod:  req.PaymentMethod,
		Status:         entity.TransactionStatusCompleted,
	}
	if err := uow.TransactionRepository().Create(ctx, trx); err != nil {
		return nil, err
	}

	activated, err := uow.SubscriptionRepository().ActivateIfPending(ctx, sub.Id, req.Amount)
	if err != nil {
		return nil, err
	}
	if !activated {
		return nil, apperror.InvalidStatef("subscription left the pending state while recording payment")
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publish(ctx, events.PaymentRecorded, map[string]interface{}{
		"transaction_id":  trx.TransactionId,
		"subscription_id": sub.Id.String(),
		"student_id":      sub.StudentId.String(),
		"amount":          trx.Amount,
		"currency":        trx.Currency,
	})
	s.publish(ctx, events.SubscriptionActivated, map[string]interface{}{
		"subscription_id": sub.Id.String(),
		"student_id":      sub.StudentId.String(),
	})

	// Queue the billing worker: invoice + receipt email, off the request path.
	if s.billingPublisher != nil {
		job, _ := json.Marshal(BillingJobMessage{TransactionId: trx.Id})
		if err := s.billingPublisher.Publish(ctx, job); err != nil {
			s.logger.Warn("TransactionService", "billing job publish failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return toTransactionResponse(trx), nil
}

// ProcessRefund flips the original completed -> refunded and appends a refund
// row referencing it, both inside one transaction. The compare-and-set on the
// original guarantees a transaction is refunded at most once even under
// concurrent requests.
func (s *transactionService) ProcessRefund(ctx context.Context, transactionId uuid.UUID, req *dto.RefundRequest) (*dto.RefundResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	original, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: transactionId})
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, apperror.NotFound("transaction")
	}
	if original.Type != entity.TransactionTypePayment {
		return nil, apperror.InvalidStatef("only payment transactions can be refunded")
	}
	if !original.CanBeRefunded() {
		return nil, apperror.InvalidStatef("transaction is %s, only completed transactions can be refunded", original.Status)
	}

	amount := original.Amount
	if req.Amount != nil {
		if *req.Amount <= 0 || *req.Amount > original.Amount {
			return nil, apperror.Validationf("refund amount must be in (0, %.2f]", original.Amount)
		}
		amount = *req.Amount
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	flipped, err := uow.TransactionRepository().MarkRefundedIfCompleted(ctx, original.Id)
	if err != nil {
		return nil, err
	}
	if !flipped {
		return nil, apperror.InvalidStatef("transaction was refunded by a concurrent request")
	}

	refund := &entity.Transaction{
		Id:                    uuid.New(),
		SubscriptionId:        original.SubscriptionId,
		TransactionId:         newTransactionCode(),
		Type:                  entity.TransactionTypeRefund,
		Amount:                amount,
		Currency:              original.Currency,
		PaymentMethod:         original.PaymentMethod,
		Status:                entity.TransactionStatusCompleted,
		RefundedTransactionId: &original.Id,
		Reason:                req.Reason,
	}
	if err := uow.TransactionRepository().Create(ctx, refund); err != nil {
		return nil, err
	}

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: original.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub != nil {
		sub.PaymentStatus = entity.PaymentStatusRefunded
		if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	original.Status = entity.TransactionStatusRefunded

	s.publish(ctx, events.RefundProcessed, map[string]interface{}{
		"transaction_id":          refund.TransactionId,
		"original_transaction_id": original.TransactionId,
		"subscription_id":         original.SubscriptionId.String(),
		"amount":                  amount,
		"reason":                  req.Reason,
	})

	return &dto.RefundResponse{
		OriginalTransaction: *toTransactionResponse(original),
		RefundTransaction:   *toTransactionResponse(refund),
	}, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trx, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, apperror.NotFound("transaction")
	}
	return toTransactionResponse(trx), nil
}

func (s *transactionService) GetSubscriptionTransactions(ctx context.Context, subscriptionId uuid.UUID) ([]*dto.TransactionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trxs, err := uow.TransactionRepository().FindAll(ctx,
		specification.BySubscription{SubscriptionID: subscriptionId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TransactionResponse, 0, len(trxs))
	for _, trx := range trxs {
		result = append(result, toTransactionResponse(trx))
	}
	return result, nil
}

// GenerateInvoice is deterministic and idempotent: the invoice id is derived
// from the transaction code, so repeated calls return the same document.
func (s *transactionService) GenerateInvoice(ctx context.Context, transactionId uuid.UUID) (*dto.InvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trx, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: transactionId})
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, apperror.NotFound("transaction")
	}

	if trx.InvoiceId == "" {
		trx.InvoiceId = "INV-" + trx.TransactionId
		trx.InvoiceUrl = fmt.Sprintf("%s/invoices/%s", s.invoiceBaseUrl, trx.InvoiceId)
		if err := uow.TransactionRepository().Update(ctx, trx); err != nil {
			return nil, err
		}
	}

	return &dto.InvoiceResponse{
		TransactionId: trx.TransactionId,
		InvoiceId:     trx.InvoiceId,
		InvoiceUrl:    trx.InvoiceUrl,
	}, nil
}

func (s *transactionService) publish(ctx context.Context, code string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events.New(code, data)); err != nil {
		s.logger.Warn("TransactionService", "event publish failed", map[string]interface{}{
			"event": code,
			"error": err.Error(),
		})
	}
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		Id:                    t.Id,
		SubscriptionId:        t.SubscriptionId,
		TransactionId:         t.TransactionId,
		Type:                  string(t.Type),
		Amount:                t.Amount,
		Currency:              t.Currency,
		PaymentMethod:         t.PaymentMethod,
		Status:                string(t.Status),
		RefundedTransactionId: t.RefundedTransactionId,
		Reason:                t.Reason,
		InvoiceId:             t.InvoiceId,
		InvoiceUrl:            t.InvoiceUrl,
		CreatedAt:             t.CreatedAt,
	}
}
