package mapper

import (
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/model"
)

type PlanMapper struct{}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{}
}

func (m *PlanMapper) ToEntity(p *model.SubscriptionPlan) *entity.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &entity.SubscriptionPlan{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price: entity.Money{
			Amount:   p.PriceAmount,
			Currency: p.PriceCurrency,
		},
		Duration: entity.PlanDuration{
			Value: p.DurationValue,
			Unit:  entity.DurationUnit(p.DurationUnit),
		},
		MaxSessions:   p.MaxSessions,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
		DiscountCodes: m.discountsToEntities(p.DiscountCodes),
		Categories:    m.categoriesToEntities(p.Categories),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.SubscriptionPlan) *model.SubscriptionPlan {
	if p == nil {
		return nil
	}
	return &model.SubscriptionPlan{
		Id:            p.Id,
		Name:          p.Name,
		Description:   p.Description,
		PriceAmount:   p.Price.Amount,
		PriceCurrency: p.Price.Currency,
		DurationValue: p.Duration.Value,
		DurationUnit:  string(p.Duration.Unit),
		MaxSessions:   p.MaxSessions,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
		DiscountCodes: m.discountsToModels(p.DiscountCodes),
		Categories:    m.categoriesToModels(p.Categories),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (m *PlanMapper) DiscountToEntity(d *model.DiscountCode) *entity.DiscountCode {
	if d == nil {
		return nil
	}
	return &entity.DiscountCode{
		Id:          d.Id,
		PlanId:      d.PlanId,
		Code:        d.Code,
		Percentage:  d.Percentage,
		ValidUntil:  d.ValidUntil,
		MaxUses:     d.MaxUses,
		CurrentUses: d.CurrentUses,
	}
}

func (m *PlanMapper) DiscountToModel(d *entity.DiscountCode) *model.DiscountCode {
	if d == nil {
		return nil
	}
	return &model.DiscountCode{
		Id:          d.Id,
		PlanId:      d.PlanId,
		Code:        d.Code,
		Percentage:  d.Percentage,
		ValidUntil:  d.ValidUntil,
		MaxUses:     d.MaxUses,
		CurrentUses: d.CurrentUses,
	}
}

func (m *PlanMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *PlanMapper) CategoryToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *PlanMapper) discountsToEntities(models []*model.DiscountCode) []entity.DiscountCode {
	if models == nil {
		return nil
	}
	entities := make([]entity.DiscountCode, 0, len(models))
	for _, mdl := range models {
		if val := m.DiscountToEntity(mdl); val != nil {
			entities = append(entities, *val)
		}
	}
	return entities
}

func (m *PlanMapper) discountsToModels(entities []entity.DiscountCode) []*model.DiscountCode {
	if entities == nil {
		return nil
	}
	models := make([]*model.DiscountCode, len(entities))
	for i := range entities {
		models[i] = m.DiscountToModel(&entities[i])
	}
	return models
}

func (m *PlanMapper) categoriesToEntities(models []*model.Category) []entity.Category {
	if models == nil {
		return nil
	}
	entities := make([]entity.Category, 0, len(models))
	for _, mdl := range models {
		if val := m.CategoryToEntity(mdl); val != nil {
			entities = append(entities, *val)
		}
	}
	return entities
}

func (m *PlanMapper) categoriesToModels(entities []entity.Category) []*model.Category {
	if entities == nil {
		return nil
	}
	models := make([]*model.Category, len(entities))
	for i := range entities {
		models[i] = m.CategoryToModel(&entities[i])
	}
	return models
}
