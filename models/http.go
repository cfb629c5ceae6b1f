package models

// LoginRequest is the body of POST /auth/login/.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IssueAPIKeyRequest is the body of POST /auth/api-key/.
type IssueAPIKeyRequest struct {
	UserID      string   `json:"user_id"`
	Permissions []string `json:"permissions"`
}

// TimestampConversionRequest is the body of POST /convert-timestamp/.
type TimestampConversionRequest struct {
	SourceTimestamp string `json:"source_timestamp"`
	SourceTZ        string `json:"source_tz"`
	TargetTZ        string `json:"target_tz"`
}

// CreateLogEntryRequest is the body of POST /logs/create/.
type CreateLogEntryRequest struct {
	Action              string  `json:"action"`
	Description         *string `json:"description,omitempty"`
	ConversionRequestID *string `json:"conversion_request_id,omitempty"`
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
