package model

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentId      uuid.UUID `gorm:"type:uuid;not null;index"`
	SubscriptionId uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionDate    time.Time `gorm:"not null;index"`
	Status         string    `gorm:"type:varchar(20);not null"` // present, absent, late
	Notes          string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (Attendance) TableName() string {
	return "attendances"
}
