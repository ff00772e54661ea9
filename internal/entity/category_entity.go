package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a sport discipline offered by the academy (football, swimming...).
// Every plan must reference at least one.
type Category struct {
	Id          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
