package entity

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

// Attendance records one training session outcome for a student. A "present"
// or "late" record is the billable action that consumes one session unit
// from the subscription.
type Attendance struct {
	Id             uuid.UUID
	StudentId      uuid.UUID
	SubscriptionId uuid.UUID
	SessionDate    time.Time
	Status         AttendanceStatus
	Notes          string
	CreatedAt      time.Time
}

// Billable reports whether this attendance consumes a session unit.
func (a *Attendance) Billable() bool {
	return a.Status == AttendanceStatusPresent || a.Status == AttendanceStatusLate
}
