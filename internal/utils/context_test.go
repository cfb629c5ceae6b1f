// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if SubjectCtxKey.String() != "subject" {
		t.Errorf("expected 'subject', got '%s'", SubjectCtxKey.String())
	}
}

func TestGetSubjectFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "set", ctx: WithSubject(context.Background(), "alice@example.com"), want: "alice@example.com", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithSubject(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), SubjectCtxKey, 42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetSubjectFromContext(tt.ctx)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
