package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"os"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/apperror"
	"sports-academy-be/internal/pkg/logger"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// IPaymentService is the online checkout path. Cash and bank transfers go
// straight through TransactionService.RecordPayment; this service fronts the
// Midtrans gateway for card payments.
type IPaymentService interface {
	CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransNotification) error
}

type paymentService struct {
	uowFactory         unitofwork.RepositoryFactory
	transactionService TransactionService
	logger             logger.ILogger
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, transactionService TransactionService, log logger.ILogger) IPaymentService {
	return &paymentService{
		uowFactory:         uowFactory,
		transactionService: transactionService,
		logger:             log,
	}
}

func (s *paymentService) CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: req.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}
	if sub.Status != entity.SubscriptionStatusPending {
		return nil, apperror.InvalidStatef("subscription is %s, checkout needs a pending subscription", sub.Status)
	}

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: sub.PlanId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: sub.StudentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	amount := plan.Price.Amount
	if sub.Discount != nil {
		amount -= sub.Discount.AmountSaved
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		env = midtrans.Production
	}
	sClient.New(os.Getenv("MIDTRANS_SERVER_KEY"), env)

	// The subscription id doubles as the gateway order id, so the webhook
	// can find its way back without a lookup table.
	orderId := sub.Id.String()

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: student.FullName,
			Email: student.Email,
			Phone: student.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: int64(amount),
				Qty:   1,
				Name:  plan.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	s.logger.Info("PaymentService", "checkout session created", map[string]interface{}{
		"order_id":        orderId,
		"subscription_id": sub.Id.String(),
		"amount":          amount,
	})

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectUrl: snapResp.RedirectURL,
	}, nil
}

// HandleNotification validates the gateway signature and, on settlement,
// records the payment through the same path manual payments take.
func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransNotification) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("MIDTRANS_SERVER_KEY not configured")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("PaymentService", "webhook signature mismatch", map[string]interface{}{"order_id": req.OrderId})
		return apperror.Validationf("invalid signature")
	}

	subId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return apperror.Validationf("invalid order id format")
	}

	switch req.TransactionStatus {
	case "settlement", "capture":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			s.logger.Warn("PaymentService", "payment flagged by fraud check", map[string]interface{}{
				"order_id":     req.OrderId,
				"fraud_status": req.FraudStatus,
			})
			return nil
		}
		var amount float64
		if _, err := fmt.Sscanf(req.GrossAmount, "%f", &amount); err != nil {
			return apperror.Validationf("invalid gross_amount: %s", req.GrossAmount)
		}
		_, err := s.transactionService.RecordPayment(ctx, &dto.RecordPaymentRequest{
			SubscriptionId: subId,
			Amount:         amount,
			PaymentMethod:  req.PaymentType,
		})
		if err != nil {
			// A duplicate notification for an already-active subscription is
			// the gateway retrying; acknowledge instead of erroring forever.
			if apperror.IsInvalidState(err) {
				s.logger.Info("PaymentService", "duplicate settlement notification ignored", map[string]interface{}{
					"order_id": req.OrderId,
				})
				return nil
			}
			return err
		}
		return nil

	case "expire", "cancel", "deny":
		uow := s.uowFactory.NewUnitOfWork(ctx)
		sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: subId})
		if err != nil {
			return err
		}
		if sub == nil || sub.Status != entity.SubscriptionStatusPending {
			return nil
		}
		sub.PaymentStatus = entity.PaymentStatusFailed
		now := time.Now()
		sub.Status = entity.SubscriptionStatusCancelled
		sub.CancelledAt = &now
		sub.CancelReason = "payment " + req.TransactionStatus
		return uow.SubscriptionRepository().Update(ctx, sub)

	default:
		// pending and other intermediate states carry no action
		return nil
	}
}
