package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername        = errors.New("username is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyUserID          = errors.New("user_id is required")
	ErrEmptySourceTimestamp = errors.New("source_timestamp is required")
	ErrEmptySourceTZ        = errors.New("source_tz is required")
	ErrEmptyTargetTZ        = errors.New("target_tz is required")
	ErrEmptyAction          = errors.New("action is required")
)
