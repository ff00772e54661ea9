package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sports-academy-be/internal/model"
	"sports-academy-be/internal/pkg/logger"
	"sports-academy-be/internal/pkg/mailer"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"
	"sports-academy-be/pkg/events"
	pktNats "sports-academy-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	subscriber   *pktNats.Subscriber
	delivery     NotificationDelivery
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	delivery NotificationDelivery,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory:   uowFactory,
		subscriber:   sub,
		delivery:     delivery,
		emailService: emailService,
		logger:       log,
	}
}

// Start begins listening to the event bus with a durable consumer, so
// notifications survive a restart of this worker.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("academy.>", "notification-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "failed to start subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("NotificationService", "listening on academy.>", nil)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	title, body := s.render(event.EventType(), payload)
	if title == "" {
		return nil // event carries no user-facing notification
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	userId, student := s.resolveTarget(ctx, uow, payload)

	metadata, _ := json.Marshal(payload)
	notif := model.Notification{
		ID:        uuid.New(),
		UserID:    userId,
		TypeCode:  event.EventType(),
		Title:     title,
		Message:   body,
		Metadata:  datatypes.JSON(metadata),
		CreatedAt: time.Now(),
	}

	if userId != uuid.Nil {
		if err := uow.NotificationRepository().Create(ctx, &notif); err != nil {
			return err
		}
		if s.delivery != nil {
			s.delivery.Send(userId, notif)
		}
	} else if s.delivery != nil {
		s.delivery.Broadcast(notif)
	}

	s.sendEmail(event.EventType(), payload, student)
	return nil
}

// resolveTarget maps the event's student to a login account, when one exists.
func (s *NotificationService) resolveTarget(ctx context.Context, uow unitofwork.UnitOfWork, payload map[string]interface{}) (uuid.UUID, *studentContact) {
	raw, ok := payload["student_id"].(string)
	if !ok {
		return uuid.Nil, nil
	}
	studentId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil
	}
	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil || student == nil {
		return uuid.Nil, nil
	}
	contact := &studentContact{Name: student.FullName, Email: student.Email}
	if student.UserId == nil {
		return uuid.Nil, contact
	}
	return *student.UserId, contact
}

type studentContact struct {
	Name  string
	Email string
}

func (s *NotificationService) render(eventType string, payload map[string]interface{}) (title, body string) {
	planName, _ := payload["plan_name"].(string)

	switch eventType {
	case events.SubscriptionCreated:
		return "Subscription Created", fmt.Sprintf("Your %s subscription is awaiting payment.", planName)
	case events.SubscriptionActivated:
		return "Subscription Active", "Your subscription is now active. See you at training!"
	case events.SubscriptionCancelled:
		return "Subscription Cancelled", "Your subscription has been cancelled."
	case events.SubscriptionRenewed:
		return "Subscription Renewed", "Your subscription has been renewed for another term."
	case events.PaymentRecorded:
		amount, _ := payload["amount"].(float64)
		return "Payment Received", fmt.Sprintf("We received your payment of %.2f.", amount)
	case events.RefundProcessed:
		amount, _ := payload["amount"].(float64)
		return "Refund Processed", fmt.Sprintf("Your refund of %.2f is on its way.", amount)
	}
	return "", ""
}

func (s *NotificationService) sendEmail(eventType string, payload map[string]interface{}, student *studentContact) {
	if s.emailService == nil || student == nil || student.Email == "" {
		return
	}

	switch eventType {
	case events.SubscriptionCancelled:
		planName, _ := payload["plan_name"].(string)
		reason, _ := payload["reason"].(string)
		go func() {
			if err := s.emailService.SendCancellationNotice(student.Email, student.Name, planName, reason); err != nil {
				s.logger.Warn("NotificationService", "cancellation email failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	}
}

// GetNotifications returns a page of the user's inbox.
func (s *NotificationService) GetNotifications(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().FindAllForUser(ctx, userId, limit, offset)
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().CountUnread(ctx, userId)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userId)
}

// SendRenewalReminders mails students whose subscription ends within the
// given horizon. Intended to run from a daily scheduler alongside the
// expiry sweep.
func (s *NotificationService) SendRenewalReminders(ctx context.Context, horizon time.Duration) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx, specification.ByStatus{Status: "active"})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	sent := 0
	for _, sub := range subs {
		until := sub.EndDate.Sub(now)
		if until < 0 || until > horizon {
			continue
		}
		student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: sub.StudentId})
		if err != nil || student == nil || student.Email == "" {
			continue
		}
		plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
		if err != nil || plan == nil {
			continue
		}
		if err := s.emailService.SendRenewalReminder(student.Email, student.FullName, plan.Name, sub.EndDate); err != nil {
			s.logger.Warn("NotificationService", "renewal reminder failed", map[string]interface{}{
				"student_id": student.Id.String(),
				"error":      err.Error(),
			})
			continue
		}
		sent++
	}
	return sent, nil
}
