package service

import (
	"context"
	"encoding/json"

	"sports-academy-be/internal/pkg/logger"
	"sports-academy-be/internal/pkg/mailer"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// BillingJobMessage is the queue payload handed to the billing worker after
// a payment lands.
type BillingJobMessage struct {
	TransactionId uuid.UUID `json:"transaction_id"`
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the billing worker: for each completed payment it
// generates the invoice and mails the receipt, off the request path.
type consumerService struct {
	pubSub             *gochannel.GoChannel
	topicName          string
	uowFactory         unitofwork.RepositoryFactory
	transactionService TransactionService
	emailService       mailer.IEmailService
	logger             logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	transactionService TransactionService,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:             pubSub,
		topicName:          topicName,
		uowFactory:         uowFactory,
		transactionService: transactionService,
		emailService:       emailService,
		logger:             log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload BillingJobMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "unmarshal billing job failed", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed payloads never become valid on retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	trx, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: payload.TransactionId})
	if err != nil {
		cs.logger.Error("ConsumerService", "load transaction failed", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	if trx == nil {
		cs.logger.Warn("ConsumerService", "transaction gone, dropping billing job", map[string]interface{}{
			"transaction_id": payload.TransactionId.String(),
		})
		msg.Ack()
		return
	}

	invoice, err := cs.transactionService.GenerateInvoice(ctx, trx.Id)
	if err != nil {
		cs.logger.Error("ConsumerService", "invoice generation failed", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: trx.SubscriptionId})
	if err != nil || sub == nil {
		msg.Nack()
		return
	}
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: sub.StudentId})
	if err != nil || student == nil {
		msg.Nack()
		return
	}
	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil || plan == nil {
		msg.Nack()
		return
	}

	if err := cs.emailService.SendPaymentReceipt(
		student.Email, student.FullName, plan.Name,
		trx.Amount, trx.Currency, invoice.InvoiceId, invoice.InvoiceUrl,
	); err != nil {
		// Invoice is already persisted; a lost email is not worth a requeue
		// loop that would regenerate it forever.
		cs.logger.Warn("ConsumerService", "receipt email failed", map[string]interface{}{"error": err.Error()})
	}

	msg.Ack()
}
