package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field name constants used to restrict Validate to a subset of fields.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldUserID          = "user_id"
	FieldSourceTimestamp = "source_timestamp"
	FieldSourceTZ        = "source_tz"
	FieldTargetTZ        = "target_tz"
	FieldAction          = "action"
)

// RequestValidator validates the JSON request bodies accepted by the HTTP API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.IssueAPIKeyRequest:
		return v.validateIssueAPIKeyRequest(ctx, value, fields...)
	case *models.IssueAPIKeyRequest:
		return v.validateIssueAPIKeyRequest(ctx, *value, fields...)

	case models.TimestampConversionRequest:
		return v.validateTimestampConversionRequest(ctx, value, fields...)
	case *models.TimestampConversionRequest:
		return v.validateTimestampConversionRequest(ctx, *value, fields...)

	case models.CreateLogEntryRequest:
		return v.validateCreateLogEntryRequest(ctx, value, fields...)
	case *models.CreateLogEntryRequest:
		return v.validateCreateLogEntryRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *RequestValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if isBlank(request.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			// passwords are compared byte-for-byte, only emptiness is rejected
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateIssueAPIKeyRequest(_ context.Context, request models.IssueAPIKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if isBlank(request.UserID) {
				return ErrEmptyUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateTimestampConversionRequest(_ context.Context, request models.TimestampConversionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSourceTimestamp, FieldSourceTZ, FieldTargetTZ}
	}

	for _, f := range fields {
		switch f {
		case FieldSourceTimestamp:
			if isBlank(request.SourceTimestamp) {
				return ErrEmptySourceTimestamp
			}
		case FieldSourceTZ:
			if isBlank(request.SourceTZ) {
				return ErrEmptySourceTZ
			}
		case FieldTargetTZ:
			if isBlank(request.TargetTZ) {
				return ErrEmptyTargetTZ
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateLogEntryRequest(_ context.Context, request models.CreateLogEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if isBlank(request.Action) {
				return ErrEmptyAction
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
