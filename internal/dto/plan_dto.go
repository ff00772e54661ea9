package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Plan DTOs ---

type CreatePlanRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=255"`
	Description string      `json:"description"`
	Price       float64     `json:"price" validate:"gte=0"`
	Currency    string      `json:"currency" validate:"omitempty,len=3"`
	Duration    DurationDTO `json:"duration" validate:"required"`
	MaxSessions *int        `json:"max_sessions" validate:"omitempty,gt=0"`
	CategoryIds []uuid.UUID `json:"category_ids" validate:"required,min=1"`
	SortOrder   int         `json:"sort_order"`
}

type UpdatePlanRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
	Duration    *DurationDTO `json:"duration"`
	MaxSessions *int         `json:"max_sessions" validate:"omitempty,gt=0"`
	IsActive    *bool        `json:"is_active"`
	CategoryIds []uuid.UUID  `json:"category_ids" validate:"omitempty,min=1"`
	SortOrder   *int         `json:"sort_order"`
}

type DurationDTO struct {
	Value int    `json:"value" validate:"required,gt=0"`
	Unit  string `json:"unit" validate:"required,oneof=days weeks months years"`
}

type CreateDiscountRequest struct {
	Code       string     `json:"code" validate:"required,min=3,max=50"`
	Percentage float64    `json:"percentage" validate:"required,gt=0,lte=100"`
	ValidUntil *time.Time `json:"valid_until"`
	MaxUses    *int       `json:"max_uses" validate:"omitempty,gt=0"`
}

type PlanResponse struct {
	Id            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Price         float64            `json:"price"`
	Currency      string             `json:"currency"`
	Duration      DurationDTO        `json:"duration"`
	MaxSessions   *int               `json:"max_sessions"` // null = unlimited
	IsActive      bool               `json:"is_active"`
	SortOrder     int                `json:"sort_order"`
	Categories    []CategoryResponse `json:"categories"`
	DiscountCodes []DiscountResponse `json:"discount_codes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

type DiscountResponse struct {
	Id          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Percentage  float64    `json:"percentage"`
	ValidUntil  *time.Time `json:"valid_until"`
	MaxUses     *int       `json:"max_uses"`
	CurrentUses int        `json:"current_uses"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description"`
}

type PricePreviewRequest struct {
	DiscountCode string `json:"discount_code" validate:"required"`
}

type PricePreviewResponse struct {
	PlanId        uuid.UUID `json:"plan_id"`
	OriginalPrice float64   `json:"original_price"`
	FinalPrice    float64   `json:"final_price"`
	DiscountValid bool      `json:"discount_valid"`
}
