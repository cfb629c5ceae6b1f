package models

import "time"

// HealthStatus values.
const (
	HealthStatusHealthy   = "Healthy"
	HealthStatusUnhealthy = "Unhealthy"
)

// HealthCheckResponse describes the current state of the running server.
type HealthCheckResponse struct {
	// Status is HealthStatusHealthy or HealthStatusUnhealthy.
	Status string `json:"status"`

	// Uptime is the time since start in "HH:MM:SS" form.
	Uptime string `json:"uptime"`

	// ResponseTimeAvg is the mean HTTP response time in seconds.
	ResponseTimeAvg float64 `json:"response_time_avg"`

	// ErrorRate is the share of HTTP responses with a 5xx status, 0..1.
	ErrorRate float64 `json:"error_rate"`

	// Database is false when the storage ping failed.
	Database bool `json:"database"`

	// Version is the build version of the server binary.
	Version string `json:"version"`
}

// TimestampConversionResponse carries a converted timestamp in ISO 8601 form.
type TimestampConversionResponse struct {
	ConvertedTimestamp string `json:"converted_timestamp"`
}

// LogEntry is a persisted system event.
type LogEntry struct {
	ID                  string    `json:"id"`
	Action              string    `json:"action"`
	Description         *string   `json:"description,omitempty"`
	ConversionRequestID *string   `json:"conversion_request_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// CreateLogEntryResponse confirms that a log entry was stored.
type CreateLogEntryResponse struct {
	Success bool    `json:"success"`
	LogID   *string `json:"log_id,omitempty"`
	Message *string `json:"message,omitempty"`
}
