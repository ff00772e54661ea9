package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Attendance DTOs ---

type RecordAttendanceRequest struct {
	StudentId      uuid.UUID  `json:"student_id" validate:"required"`
	SubscriptionId uuid.UUID  `json:"subscription_id" validate:"required"`
	SessionDate    *time.Time `json:"session_date"` // nil = now
	Status         string     `json:"status" validate:"required,oneof=present absent late"`
	Notes          string     `json:"notes"`
}

type AttendanceResponse struct {
	Id                uuid.UUID `json:"id"`
	StudentId         uuid.UUID `json:"student_id"`
	SubscriptionId    uuid.UUID `json:"subscription_id"`
	SessionDate       time.Time `json:"session_date"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	SessionDeducted   bool      `json:"session_deducted"`
	RemainingSessions *int      `json:"remaining_sessions"` // null = unlimited
	CreatedAt         time.Time `json:"created_at"`
}
