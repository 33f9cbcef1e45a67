// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSubjectCtxKey(t *testing.T) {
	if SubjectCtxKey.String() != "subject" {
		t.Errorf("expected 'subject', got '%s'", SubjectCtxKey.String())
	}
}

func TestGetSubjectFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "platform")

	subject, ok := GetSubjectFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if subject != "platform" {
		t.Errorf("expected subject=platform, got %s", subject)
	}
}

func TestGetSubjectFromContext_Missing(t *testing.T) {
	subject, ok := GetSubjectFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if subject != "" {
		t.Errorf("expected empty subject, got %s", subject)
	}
}

func TestGetSubjectFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, int64(42))

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetSubjectFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), SubjectCtxKey, "")

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty subject, got true")
	}
}

func TestGetSubjectFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "platform")

	if _, ok := GetSubjectFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
