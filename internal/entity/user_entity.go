package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCoach   UserRole = "coach"
	UserRoleStudent UserRole = "student"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         UserRole
	Status       UserStatus
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
