package controller

import (
	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/pkg/serverutils"
	"sports-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudentController interface {
	RegisterRoutes(r fiber.Router)
}

type studentController struct {
	studentService    service.StudentService
	attendanceService service.AttendanceService
}

func NewStudentController(studentService service.StudentService, attendanceService service.AttendanceService) IStudentController {
	return &studentController{
		studentService:    studentService,
		attendanceService: attendanceService,
	}
}

func (c *studentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/students", serverutils.JwtMiddleware)
	h.Post("/", c.CreateStudent)
	h.Get("/", c.GetStudents)
	h.Get("/:id", c.GetStudent)
	h.Patch("/:id", c.UpdateStudent)
	h.Delete("/:id", c.DeactivateStudent)
	h.Get("/:id/attendance", c.GetAttendance)
	h.Post("/:id/recompute-stats", c.RecomputeStats)
}

func (c *studentController) CreateStudent(ctx *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.studentService.CreateStudent(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Student created", res))
}

func (c *studentController) GetStudents(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)
	res, err := c.studentService.GetStudents(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Students fetched", res))
}

func (c *studentController) GetStudent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	res, err := c.studentService.GetStudent(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Student fetched", res))
}

func (c *studentController) UpdateStudent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	var req dto.UpdateStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.studentService.UpdateStudent(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Student updated", res))
}

func (c *studentController) DeactivateStudent(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	if err := c.studentService.DeactivateStudent(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Student deactivated", nil))
}

func (c *studentController) GetAttendance(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	res, err := c.attendanceService.GetStudentAttendance(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Attendance fetched", res))
}

func (c *studentController) RecomputeStats(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid student id")
	}
	res, err := c.attendanceService.RecomputeStats(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Stats recomputed", res))
}
