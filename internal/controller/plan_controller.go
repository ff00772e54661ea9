package controller

import (
	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/serverutils"
	"sports-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
}

type planController struct {
	service service.PlanService
}

func NewPlanController(service service.PlanService) IPlanController {
	return &planController{service: service}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plans")
	h.Get("/", c.GetActivePlans)
	h.Get("/:id", c.GetPlan)
	h.Post("/:id/preview-price", c.PreviewPrice)

	admin := h.Group("/", serverutils.JwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	admin.Post("/", c.CreatePlan)
	admin.Patch("/:id", c.UpdatePlan)
	admin.Delete("/:id", c.DeletePlan)
	admin.Post("/:id/discounts", c.AddDiscountCode)

	cat := r.Group("/categories")
	cat.Get("/", c.GetCategories)
	cat.Post("/", serverutils.JwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)), c.CreateCategory)
}

func (c *planController) GetActivePlans(ctx *fiber.Ctx) error {
	res, err := c.service.GetActivePlans(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plans fetched", res))
}

func (c *planController) GetPlan(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}
	res, err := c.service.GetPlan(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan fetched", res))
}

func (c *planController) CreatePlan(ctx *fiber.Ctx) error {
	var req dto.CreatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreatePlan(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Plan created", res))
}

func (c *planController) UpdatePlan(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}
	var req dto.UpdatePlanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.UpdatePlan(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan updated", res))
}

func (c *planController) DeletePlan(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}
	if err := c.service.DeletePlan(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan deleted", nil))
}

func (c *planController) AddDiscountCode(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}
	var req dto.CreateDiscountRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.AddDiscountCode(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Discount added", res))
}

func (c *planController) PreviewPrice(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid plan id")
	}
	var req dto.PricePreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.PreviewPrice(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Price preview", res))
}

func (c *planController) GetCategories(ctx *fiber.Ctx) error {
	res, err := c.service.GetCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Categories fetched", res))
}

func (c *planController) CreateCategory(ctx *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreateCategory(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Category created", res))
}
