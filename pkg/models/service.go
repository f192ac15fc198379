package models

import "time"

// Service represents a monitored service. Monitors belong to exactly
// one service.
type Service struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ServiceCreateRequest is the payload for creating a service.
type ServiceCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
