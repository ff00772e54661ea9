package mapper

import (
	"sports-academy-be/internal/entity"
	"sports-academy-be/internal/model"
)

type StudentMapper struct{}

func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

func (m *StudentMapper) ToEntity(s *model.Student) *entity.Student {
	if s == nil {
		return nil
	}
	return &entity.Student{
		Id:               s.Id,
		UserId:           s.UserId,
		FullName:         s.FullName,
		Email:            s.Email,
		Phone:            s.Phone,
		DateOfBirth:      s.DateOfBirth,
		Guardian:         s.Guardian,
		JoinedAt:         s.JoinedAt,
		IsActive:         s.IsActive,
		SessionsAttended: s.SessionsAttended,
		SessionsMissed:   s.SessionsMissed,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *StudentMapper) ToModel(s *entity.Student) *model.Student {
	if s == nil {
		return nil
	}
	return &model.Student{
		Id:               s.Id,
		UserId:           s.UserId,
		FullName:         s.FullName,
		Email:            s.Email,
		Phone:            s.Phone,
		DateOfBirth:      s.DateOfBirth,
		Guardian:         s.Guardian,
		JoinedAt:         s.JoinedAt,
		IsActive:         s.IsActive,
		SessionsAttended: s.SessionsAttended,
		SessionsMissed:   s.SessionsMissed,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func (m *StudentMapper) AttendanceToEntity(a *model.Attendance) *entity.Attendance {
	if a == nil {
		return nil
	}
	return &entity.Attendance{
		Id:             a.Id,
		StudentId:      a.StudentId,
		SubscriptionId: a.SubscriptionId,
		SessionDate:    a.SessionDate,
		Status:         entity.AttendanceStatus(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}

func (m *StudentMapper) AttendanceToModel(a *entity.Attendance) *model.Attendance {
	if a == nil {
		return nil
	}
	return &model.Attendance{
		Id:             a.Id,
		StudentId:      a.StudentId,
		SubscriptionId: a.SubscriptionId,
		SessionDate:    a.SessionDate,
		Status:         string(a.Status),
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}
