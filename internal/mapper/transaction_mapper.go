package mapper

import (
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:                    t.Id,
		SubscriptionId:        t.SubscriptionId,
		TransactionId:         t.TransactionId,
		Type:                  entity.TransactionType(t.Type),
		Amount:                t.Amount,
		Currency:              t.Currency,
		PaymentMethod:         t.PaymentMethod,
		Status:                entity.TransactionStatus(t.Status),
		RefundedTransactionId: t.RefundedTransactionId,
		Reason:                t.Reason,
		InvoiceId:             t.InvoiceId,
		InvoiceUrl:            t.InvoiceUrl,
		GatewayOrderId:        t.GatewayOrderId,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
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
		GatewayOrderId:        t.GatewayOrderId,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}
