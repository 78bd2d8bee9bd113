package entity

import (
	"time"

	"github.com/google/uuid"
)

type BaseEntity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate fills the id and timestamps that are still unset.
func (base *BaseEntity) BeforeCreate(now time.Time) {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}
