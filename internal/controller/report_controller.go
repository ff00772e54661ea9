package controller

import (
	"time"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/serverutils"
	"sports-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router)
}

type reportController struct {
	reportService       service.ReportService
	subscriptionService service.SubscriptionService
}

func NewReportController(reportService service.ReportService, subscriptionService service.SubscriptionService) IReportController {
	return &reportController{
		reportService:       reportService,
		subscriptionService: subscriptionService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reports", serverutils.JwtMiddleware, serverutils.RequireRole(string(entity.UserRoleAdmin)))
	h.Get("/dashboard", c.GetDashboard)
	h.Post("/sweep-expired", c.SweepExpired)
}

func (c *reportController) GetDashboard(ctx *fiber.Ctx) error {
	var from, to *time.Time
	if v := ctx.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid 'from' timestamp")
		}
		from = &t
	}
	if v := ctx.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid 'to' timestamp")
		}
		to = &t
	}

	res, err := c.reportService.GetDashboard(ctx.Context(), from, to)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard fetched", res))
}

func (c *reportController) SweepExpired(ctx *fiber.Ctx) error {
	n, err := c.subscriptionService.SweepExpired(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Sweep complete", fiber.Map{"expired": n}))
}
