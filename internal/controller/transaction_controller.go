package controller

import (
	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/serverutils"
	"sports-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITransactionController interface {
	RegisterRoutes(r fiber.Router)
}

type transactionController struct {
	service service.TransactionService
}

func NewTransactionController(service service.TransactionService) ITransactionController {
	return &transactionController{service: service}
}

func (c *transactionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transactions", serverutils.JwtMiddleware)
	h.Post("/", c.RecordPayment)
	h.Post("/manual", serverutils.RequireRole(string(entity.UserRoleAdmin)), c.CreateTransaction)
	h.Get("/:id", c.GetTransaction)
	h.Post("/:id/invoice", c.GenerateInvoice)
	h.Post("/:id/refund", serverutils.RequireRole(string(entity.UserRoleAdmin)), c.ProcessRefund)
}

// CreateTransaction is the manual ledger entry path: supplied type and
// status, no lifecycle side effects. Admin only.
func (c *transactionController) CreateTransaction(ctx *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.CreateTransaction(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Transaction created", res))
}

func (c *transactionController) RecordPayment(ctx *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.RecordPayment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Payment recorded", res))
}

func (c *transactionController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid transaction id")
	}
	res, err := c.service.GetTransaction(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transaction fetched", res))
}

func (c *transactionController) ProcessRefund(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid transaction id")
	}
	var req dto.RefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.ProcessRefund(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Refund processed", res))
}

func (c *transactionController) GenerateInvoice(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid transaction id")
	}
	res, err := c.service.GenerateInvoice(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Invoice generated", res))
}
