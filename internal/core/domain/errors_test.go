package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapErrorKeepsKindAndCause(t *testing.T) {
	cause := fmt.Errorf("row missing")
	err := WrapError(ErrDocumentNotFound, "get document", cause)

	if !IsKind(err, ErrDocumentNotFound) {
		t.Fatalf("kind lost: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
	if IsKind(err, ErrInvalidInput) {
		t.Fatalf("wrong kind matched: %v", err)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if err := WrapError(ErrInvalidInput, "noop", nil); err != nil {
		t.Fatalf("wrapping nil should stay nil, got %v", err)
	}
}
