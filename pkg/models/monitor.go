package models

import "time"

// Monitor is a single configured check attached to a service. The
// config shape is owned entirely by the monitor type that created it;
// nothing outside that type interprets it.
type Monitor struct {
	ID              int64                  `json:"id"`
	ServiceID       int64                  `json:"service_id"`
	MonitorType     string                 `json:"monitor_type"`
	Config          map[string]interface{} `json:"config"`
	IntervalMinutes int                    `json:"check_interval_minutes"`
	IsActive        bool                   `json:"is_active"`
	LastCheckAt     *time.Time             `json:"last_check_at,omitempty"`
	NextCheckAt     *time.Time             `json:"next_check_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

// MonitorCreateRequest is the payload for creating a monitor under an
// existing service.
type MonitorCreateRequest struct {
	ServiceID       int64                  `json:"service_id"`
	MonitorType     string                 `json:"monitor_type"`
	Config          map[string]interface{} `json:"config"`
	IntervalMinutes int                    `json:"check_interval_minutes"`
}

// MonitorUpdateRequest updates config and interval in place. The
// monitor type is immutable after creation and deliberately absent.
type MonitorUpdateRequest struct {
	Config          map[string]interface{} `json:"config,omitempty"`
	IntervalMinutes *int                   `json:"check_interval_minutes,omitempty"`
	IsActive        *bool                  `json:"is_active,omitempty"`
}
