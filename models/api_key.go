package models

import "time"

// APIKeyGrant is the result of an API key issuance. The key is returned to the
// caller once; only the key itself is persisted on the user record.
type APIKeyGrant struct {
	// APIKey is the freshly generated key value.
	APIKey string `json:"api_key"`

	// Permissions is the capability list attached to the key, in the order
	// supplied by the caller.
	Permissions []string `json:"permissions"`

	// ExpirationDate is the absolute moment the key stops being valid.
	ExpirationDate time.Time `json:"expiration_date"`
}
