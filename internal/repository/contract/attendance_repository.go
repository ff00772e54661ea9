package contract

import (
	"context"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entity.Attendance) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attendance, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// StatsForStudent recomputes attendance counters from the raw rows.
	StatsForStudent(ctx context.Context, studentId uuid.UUID) (*entity.AttendanceStats, error)
}
