package service

import (
	"context"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/apperror"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const planListCacheKey = "plans:active"

type PlanService interface {
	CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, planId uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(ctx context.Context, planId uuid.UUID) error
	GetPlan(ctx context.Context, planId uuid.UUID) (*dto.PlanResponse, error)
	GetActivePlans(ctx context.Context) ([]*dto.PlanResponse, error)

	AddDiscountCode(ctx context.Context, planId uuid.UUID, req *dto.CreateDiscountRequest) (*dto.DiscountResponse, error)
	PreviewPrice(ctx context.Context, planId uuid.UUID, req *dto.PricePreviewRequest) (*dto.PricePreviewResponse, error)

	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	listCache  *cache.Cache
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory) PlanService {
	return &planService{
		uowFactory: uowFactory,
		listCache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *planService) CreatePlan(ctx context.Context, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	unit := entity.DurationUnit(req.Duration.Unit)
	if !entity.ValidDurationUnit(unit) {
		return nil, apperror.Validationf("unsupported duration unit: %s", req.Duration.Unit)
	}
	if req.Duration.Value <= 0 {
		return nil, apperror.Validationf("duration value must be positive")
	}
	if req.Price < 0 {
		return nil, apperror.Validationf("price cannot be negative")
	}
	if req.MaxSessions != nil && *req.MaxSessions <= 0 {
		return nil, apperror.Validationf("max_sessions must be positive when set")
	}
	if len(req.CategoryIds) == 0 {
		return nil, apperror.Validationf("a plan needs at least one category")
	}

	existing, err := uow.PlanRepository().Count(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Validationf("a plan named %q already exists", req.Name)
	}

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: req.CategoryIds})
	if err != nil {
		return nil, err
	}
	if len(categories) != len(req.CategoryIds) {
		return nil, apperror.NotFound("category")
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	plan := &entity.SubscriptionPlan{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       entity.Money{Amount: req.Price, Currency: currency},
		Duration:    entity.PlanDuration{Value: req.Duration.Value, Unit: unit},
		MaxSessions: req.MaxSessions,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}
	for _, c := range categories {
		plan.Categories = append(plan.Categories, *c)
	}

	if err := uow.PlanRepository().Create(ctx, plan); err != nil {
		return nil, err
	}

	s.listCache.Delete(planListCacheKey)
	return s.toPlanResponse(plan, true), nil
}

func (s *planService) UpdatePlan(ctx context.Context, planId uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}

	if req.Name != nil && *req.Name != plan.Name {
		existing, err := uow.PlanRepository().Count(ctx, specification.ByName{Name: *req.Name})
		if err != nil {
			return nil, err
		}
		if existing > 0 {
			return nil, apperror.Validationf("a plan named %q already exists", *req.Name)
		}
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperror.Validationf("price cannot be negative")
		}
		plan.Price.Amount = *req.Price
	}
	if req.Duration != nil {
		unit := entity.DurationUnit(req.Duration.Unit)
		if !entity.ValidDurationUnit(unit) || req.Duration.Value <= 0 {
			return nil, apperror.Validationf("invalid duration")
		}
		plan.Duration = entity.PlanDuration{Value: req.Duration.Value, Unit: unit}
	}
	if req.MaxSessions != nil {
		if *req.MaxSessions <= 0 {
			return nil, apperror.Validationf("max_sessions must be positive when set")
		}
		plan.MaxSessions = req.MaxSessions
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		plan.SortOrder = *req.SortOrder
	}
	if len(req.CategoryIds) > 0 {
		categories, err := uow.CategoryRepository().FindAll(ctx, specification.ByIDs{IDs: req.CategoryIds})
		if err != nil {
			return nil, err
		}
		if len(categories) != len(req.CategoryIds) {
			return nil, apperror.NotFound("category")
		}
		plan.Categories = plan.Categories[:0]
		for _, c := range categories {
			plan.Categories = append(plan.Categories, *c)
		}
	}

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	s.listCache.Delete(planListCacheKey)
	return s.toPlanResponse(plan, true), nil
}

// DeletePlan refuses while any subscription still references the plan in a
// non-terminal state. Existing subscriptions keep their own copies of the
// terms, so a hard delete never rewrites history.
func (s *planService) DeletePlan(ctx context.Context, planId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return apperror.NotFound("plan")
	}

	active, err := uow.SubscriptionRepository().CountActiveByPlan(ctx, planId)
	if err != nil {
		return err
	}
	if active > 0 {
		return apperror.Conflictf("plan has %d active subscriptions", active)
	}

	if err := uow.PlanRepository().Delete(ctx, planId); err != nil {
		return err
	}
	s.listCache.Delete(planListCacheKey)
	return nil
}

func (s *planService) GetPlan(ctx context.Context, planId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}
	return s.toPlanResponse(plan, true), nil
}

func (s *planService) GetActivePlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	if cached, ok := s.listCache.Get(planListCacheKey); ok {
		return cached.([]*dto.PlanResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	plans, err := uow.PlanRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, s.toPlanResponse(p, false))
	}
	s.listCache.Set(planListCacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *planService) AddDiscountCode(ctx context.Context, planId uuid.UUID, req *dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}
	if req.Percentage <= 0 || req.Percentage > 100 {
		return nil, apperror.Validationf("discount percentage must be in (0, 100]")
	}
	if plan.DiscountByCode(req.Code) != nil {
		return nil, apperror.Validationf("discount code %q already exists on this plan", req.Code)
	}

	discount := entity.DiscountCode{
		Id:         uuid.New(),
		PlanId:     planId,
		Code:       req.Code,
		Percentage: req.Percentage,
		ValidUntil: req.ValidUntil,
		MaxUses:    req.MaxUses,
	}
	plan.DiscountCodes = append(plan.DiscountCodes, discount)

	if err := uow.PlanRepository().Update(ctx, plan); err != nil {
		return nil, err
	}

	s.listCache.Delete(planListCacheKey)
	return &dto.DiscountResponse{
		Id:          discount.Id,
		Code:        discount.Code,
		Percentage:  discount.Percentage,
		ValidUntil:  discount.ValidUntil,
		MaxUses:     discount.MaxUses,
		CurrentUses: discount.CurrentUses,
	}, nil
}

func (s *planService) PreviewPrice(ctx context.Context, planId uuid.UUID, req *dto.PricePreviewRequest) (*dto.PricePreviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.PlanRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NotFound("plan")
	}

	now := time.Now()
	return &dto.PricePreviewResponse{
		PlanId:        plan.Id,
		OriginalPrice: plan.Price.Amount,
		FinalPrice:    plan.DiscountedPrice(req.DiscountCode, now),
		DiscountValid: plan.IsDiscountValid(req.DiscountCode, now),
	}, nil
}

func (s *planService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CategoryRepository().Count(ctx, specification.ByName{Name: req.Name})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apperror.Validationf("a category named %q already exists", req.Name)
	}

	category := &entity.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

func (s *planService) GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.ActiveOnly{})
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toCategoryResponse(c))
	}
	return result, nil
}

func (s *planService) toPlanResponse(p *entity.SubscriptionPlan, withDiscounts bool) *dto.PlanResponse {
	res := &dto.PlanResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount,
		Currency:    p.Price.Currency,
		Duration:    dto.DurationDTO{Value: p.Duration.Value, Unit: string(p.Duration.Unit)},
		MaxSessions: p.MaxSessions,
		IsActive:    p.IsActive,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt,
	}
	for i := range p.Categories {
		res.Categories = append(res.Categories, *toCategoryResponse(&p.Categories[i]))
	}
	if withDiscounts {
		for _, d := range p.DiscountCodes {
			res.DiscountCodes = append(res.DiscountCodes, dto.DiscountResponse{
				Id:          d.Id,
				Code:        d.Code,
				Percentage:  d.Percentage,
				ValidUntil:  d.ValidUntil,
				MaxUses:     d.MaxUses,
				CurrentUses: d.CurrentUses,
			})
		}
	}
	return res
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}
