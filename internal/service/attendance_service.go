package service

import (
	"context"
	"time"

	"sports-academy-be/internal/dto"
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/pkg/apperror"
	"sports-academy-be/internal/pkg/logger"
	"sports-academy-be/internal/repository/specification"
	"sports-academy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type AttendanceService interface {
	RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error)
	GetStudentAttendance(ctx context.Context, studentId uuid.UUID) ([]*dto.AttendanceResponse, error)
	RecomputeStats(ctx context.Context, studentId uuid.UUID) (*dto.StudentStatsResponse, error)
}

type attendanceService struct {
	uowFactory          unitofwork.RepositoryFactory
	subscriptionService SubscriptionService
	logger              logger.ILogger
}

func NewAttendanceService(uowFactory unitofwork.RepositoryFactory, subscriptionService SubscriptionService, log logger.ILogger) AttendanceService {
	return &attendanceService{
		uowFactory:          uowFactory,
		subscriptionService: subscriptionService,
		logger:              log,
	}
}

// RecordAttendance stores the attendance row and, for billable statuses
// (present or late), consumes one session from the subscription. An absent
// mark never touches the entitlement.
func (s *attendanceService) RecordAttendance(ctx context.Context, req *dto.RecordAttendanceRequest) (*dto.AttendanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: req.StudentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: req.SubscriptionId})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperror.NotFound("subscription")
	}
	if sub.StudentId != student.Id {
		return nil, apperror.Validationf("subscription does not belong to this student")
	}

	sessionDate := time.Now()
	if req.SessionDate != nil {
		sessionDate = *req.SessionDate
	}

	attendance := &entity.Attendance{
		Id:             uuid.New(),
		StudentId:      student.Id,
		SubscriptionId: sub.Id,
		SessionDate:    sessionDate,
		Status:         entity.AttendanceStatus(req.Status),
		Notes:          req.Notes,
	}

	var deducted bool
	var remaining *int
	if attendance.Billable() {
		// The deduction gate runs first: a student out of sessions is turned
		// away before any attendance row is written.
		res, err := s.subscriptionService.DeductSession(ctx, sub.Id)
		if err != nil {
			return nil, err
		}
		deducted = !res.Unlimited
		remaining = res.RemainingSessions
	}

	if err := uow.AttendanceRepository().Create(ctx, attendance); err != nil {
		if deducted {
			// The deduction already committed; give the session back rather
			// than leaking it with no attendance record.
			if _, creditErr := uow.SubscriptionRepository().RecreditSession(ctx, sub.Id); creditErr != nil {
				s.logger.Error("AttendanceService", "session re-credit failed after attendance write error", map[string]interface{}{
					"subscription_id": sub.Id.String(),
					"error":           creditErr.Error(),
				})
			}
		}
		return nil, err
	}

	return &dto.AttendanceResponse{
		Id:                attendance.Id,
		StudentId:         attendance.StudentId,
		SubscriptionId:    attendance.SubscriptionId,
		SessionDate:       attendance.SessionDate,
		Status:            string(attendance.Status),
		Notes:             attendance.Notes,
		SessionDeducted:   deducted,
		RemainingSessions: remaining,
		CreatedAt:         attendance.CreatedAt,
	}, nil
}

func (s *attendanceService) GetStudentAttendance(ctx context.Context, studentId uuid.UUID) ([]*dto.AttendanceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.AttendanceRepository().FindAll(ctx,
		specification.ByStudent{StudentID: studentId},
		specification.OrderBy{Field: "session_date", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		result = append(result, &dto.AttendanceResponse{
			Id:             a.Id,
			StudentId:      a.StudentId,
			SubscriptionId: a.SubscriptionId,
			SessionDate:    a.SessionDate,
			Status:         string(a.Status),
			Notes:          a.Notes,
			CreatedAt:      a.CreatedAt,
		})
	}
	return result, nil
}

// RecomputeStats recalculates the denormalized counters on the student row
// from the raw attendance rows. This is the only write path for those
// counters.
func (s *attendanceService) RecomputeStats(ctx context.Context, studentId uuid.UUID) (*dto.StudentStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	student, err := uow.StudentRepository().FindOne(ctx, specification.ByID{ID: studentId})
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NotFound("student")
	}

	stats, err := uow.AttendanceRepository().StatsForStudent(ctx, studentId)
	if err != nil {
		return nil, err
	}

	student.SessionsAttended = stats.Attended
	student.SessionsMissed = stats.Missed
	if err := uow.StudentRepository().Update(ctx, student); err != nil {
		return nil, err
	}

	return &dto.StudentStatsResponse{
		StudentId: studentId,
		Attended:  stats.Attended,
		Missed:    stats.Missed,
		Total:     stats.Total,
		Rate:      stats.Rate,
	}, nil
}
