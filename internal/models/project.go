package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a tracked website and its keyword set.
type Project struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Domain    string     `json:"domain"`
	OwnerID   *uuid.UUID `json:"owner_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
