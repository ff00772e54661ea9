package model

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           *uuid.UUID `gorm:"type:uuid;index"`
	FullName         string     `gorm:"type:varchar(255);not null"`
	Email            string     `gorm:"type:varchar(255);index"`
	Phone            string     `gorm:"type:varchar(50)"`
	DateOfBirth      *time.Time
	Guardian         string    `gorm:"type:varchar(255)"`
	JoinedAt         time.Time `gorm:"not null"`
	IsActive         bool      `gorm:"default:true"`
	SessionsAttended int       `gorm:"default:0"`
	SessionsMissed   int       `gorm:"default:0"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Student) TableName() string {
	return "students"
}
