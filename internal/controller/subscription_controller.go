package controller

import (
	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/pkg/serverutils"
	"sports-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
}

type subscriptionController struct {
	subscriptionService service.SubscriptionService
	transactionService  service.TransactionService
}

func NewSubscriptionController(subscriptionService service.SubscriptionService, transactionService service.TransactionService) ISubscriptionController {
	return &subscriptionController{
		subscriptionService: subscriptionService,
		transactionService:  transactionService,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions", serverutils.JwtMiddleware)
	h.Post("/", c.CreateSubscription)
	h.Get("/:id", c.GetSubscription)
	h.Post("/:id/cancel", c.CancelSubscription)
	h.Post("/:id/renew", c.RenewSubscription)
	h.Post("/:id/deduct", c.DeductSession)
	h.Get("/:id/transactions", c.GetTransactions)

	r.Get("/students/:id/subscriptions", serverutils.JwtMiddleware, c.GetStudentSubscriptions)
}

func (c *subscriptionController) CreateSubscription(ctx *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.subscriptionService.CreateSubscription(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created", res))
}

func (c *subscriptionController) GetSubscription(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}
	res, err := c.subscriptionService.GetSubscription(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription fetched", res))
}

func (c *subscriptionController) GetStudentSubscriptions(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	res, err := c.subscriptionService.GetStudentSubscriptions(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscriptions fetched", res))
}

func (c *subscriptionController) CancelSubscription(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}
	var req dto.CancelSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	res, err := c.subscriptionService.CancelSubscription(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Subscription cancelled", res))
}

func (c *subscriptionController) RenewSubscription(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}
	var req dto.RenewSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.subscriptionService.RenewSubscription(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription renewed", res))
}

func (c *subscriptionController) DeductSession(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}
	res, err := c.subscriptionService.DeductSession(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session deducted", res))
}

func (c *subscriptionController) GetTransactions(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid subscription id")
	}
	res, err := c.transactionService.GetSubscriptionTransactions(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transactions fetched", res))
}
