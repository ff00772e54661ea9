package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Student DTOs ---

type CreateStudentRequest struct {
	FullName    string     `json:"full_name" validate:"required,min=2,max=255"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone" validate:"omitempty,max=50"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Guardian    string     `json:"guardian"`
	UserId      *uuid.UUID `json:"user_id"`
}

type UpdateStudentRequest struct {
	FullName    *string    `json:"full_name" validate:"omitempty,min=2,max=255"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	Phone       *string    `json:"phone" validate:"omitempty,max=50"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Guardian    *string    `json:"guardian"`
	IsActive    *bool      `json:"is_active"`
}

type StudentResponse struct {
	Id               uuid.UUID  `json:"id"`
	UserId           *uuid.UUID `json:"user_id,omitempty"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Guardian         string     `json:"guardian,omitempty"`
	JoinedAt         time.Time  `json:"joined_at"`
	IsActive         bool       `json:"is_active"`
	SessionsAttended int        `json:"sessions_attended"`
	SessionsMissed   int        `json:"sessions_missed"`
}

type StudentStatsResponse struct {
	StudentId uuid.UUID `json:"student_id"`
	Attended  int       `json:"attended"`
	Missed    int       `json:"missed"`
	Total     int       `json:"total"`
	Rate      float64   `json:"rate"`
}
