// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	usersTable = "users"
	logsTable  = "logs"
)

var userColumns = []string{
	"user_id",
	"email",
	"password_hash",
	"role",
	"api_key",
	"created_at",
}

var logColumns = []string{
	"id",
	"action",
	"description",
	"conversion_request_id",
	"created_at",
}
