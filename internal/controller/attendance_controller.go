package controller

import (
	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/pkg/serverutils"
	"sports-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAttendanceController interface {
	RegisterRoutes(r fiber.Router)
}

type attendanceController struct {
	service service.AttendanceService
}

func NewAttendanceController(service service.AttendanceService) IAttendanceController {
	return &attendanceController{service: service}
}

func (c *attendanceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/attendance", serverutils.JwtMiddleware)
	h.Post("/", c.RecordAttendance)
}

func (c *attendanceController) RecordAttendance(ctx *fiber.Ctx) error {
	var req dto.RecordAttendanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.service.RecordAttendance(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Attendance recorded", res))
}
