package mapper

import (
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	var discount *entity.DiscountApplied
	if s.DiscountCode != nil {
		discount = &entity.DiscountApplied{Code: *s.DiscountCode}
		if s.DiscountPercentage != nil {
			discount.Percentage = *s.DiscountPercentage
		}
		if s.DiscountSaved != nil {
			discount.AmountSaved = *s.DiscountSaved
		}
	}
	return &entity.Subscription{
		Id:                s.Id,
		StudentId:         s.StudentId,
		PlanId:            s.PlanId,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		Status:            entity.SubscriptionStatus(s.Status),
		PaymentStatus:     entity.PaymentStatus(s.PaymentStatus),
		PaymentMethod:     s.PaymentMethod,
		AmountPaid:        s.AmountPaid,
		RemainingSessions: s.RemainingSessions,
		Discount:          discount,
		CancelledAt:       s.CancelledAt,
		CancelReason:      s.CancelReason,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	out := &model.Subscription{
		Id:                s.Id,
		StudentId:         s.StudentId,
		PlanId:            s.PlanId,
		StartDate:         s.StartDate,
		EndDate:           s.EndDate,
		Status:            string(s.Status),
		PaymentStatus:     string(s.PaymentStatus),
		PaymentMethod:     s.PaymentMethod,
		AmountPaid:        s.AmountPaid,
		RemainingSessions: s.RemainingSessions,
		CancelledAt:       s.CancelledAt,
		CancelReason:      s.CancelReason,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.Discount != nil {
		code := s.Discount.Code
		pct := s.Discount.Percentage
		saved := s.Discount.AmountSaved
		out.DiscountCode = &code
		out.DiscountPercentage = &pct
		out.DiscountSaved = &saved
	}
	return out
}
