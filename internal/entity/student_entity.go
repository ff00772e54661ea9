package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student is an academy member profile. The login account (User) is optional;
// young students are often registered by a guardian without their own login.
type Student struct {
	Id          uuid.UUID
	UserId      *uuid.UUID
	FullName    string
	Email       string
	Phone       string
	DateOfBirth *time.Time
	Guardian    string
	JoinedAt    time.Time
	IsActive    bool

	// Denormalized attendance counters, maintained only by the explicit
	// RecomputeStats workflow, never by save hooks.
	SessionsAttended int
	SessionsMissed   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendanceStats is the recomputed view over a student's attendance rows.
type AttendanceStats struct {
	Attended int
	Missed   int
	Total    int
	Rate     float64
}
