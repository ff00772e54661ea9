package implementation

import (
	"context"

	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/mapper"
	"sports-academy-be/internal/model"
	"sports-academy-be/internal/repository/contract"
	"sports-academy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudentMapper
}

func NewAttendanceRepository(db *gorm.DB) contract.AttendanceRepository {
	return &AttendanceRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudentMapper(),
	}
}

func (r *AttendanceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, attendance *entity.Attendance) error {
	m := r.mapper.AttendanceToModel(attendance)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*attendance = *r.mapper.AttendanceToEntity(m)
	return nil
}

func (r *AttendanceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Attendance, error) {
	var models []*model.Attendance
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Attendance, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AttendanceToEntity(m)
	}
	return entities, nil
}

func (r *AttendanceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Attendance{}), specs...)
	err := query.Count(&count).Error
	return count, err
}

func (r *AttendanceRepositoryImpl) StatsForStudent(ctx context.Context, studentId uuid.UUID) (*entity.AttendanceStats, error) {
	type row struct {
		Status string
		Count  int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Attendance{}).
		Select("status, COUNT(*) as count").
		Where("student_id = ?", studentId).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &entity.AttendanceStats{}
	for _, rw := range rows {
		switch entity.AttendanceStatus(rw.Status) {
		case entity.AttendanceStatusPresent, entity.AttendanceStatusLate:
			stats.Attended += rw.Count
		case entity.AttendanceStatusAbsent:
			stats.Missed += rw.Count
		}
		stats.Total += rw.Count
	}
	if stats.Total > 0 {
		stats.Rate = float64(stats.Attended) / float64(stats.Total)
	}
	return stats, nil
}
