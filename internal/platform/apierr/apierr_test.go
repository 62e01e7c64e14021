package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFromExtractsWrappedError(t *testing.T) {
	inner := InvalidParam("rango_invalido", errors.New("empty range"))
	wrapped := fmt.Errorf("serie: %w", inner)

	got := From(wrapped)
	if got != inner {
		t.Fatalf("From: want the wrapped *Error back, got=%+v", got)
	}
	if got.Status != http.StatusBadRequest {
		t.Fatalf("status: want=%d got=%d", http.StatusBadRequest, got.Status)
	}
}

func TestFromDefaultsToInternal(t *testing.T) {
	got := From(errors.New("boom"))
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("status: want=%d got=%d", http.StatusInternalServerError, got.Status)
	}
	if got.Code != "internal_error" {
		t.Fatalf("code: want=%q got=%q", "internal_error", got.Code)
	}
}

func TestErrorMessagePrefersUnderlyingError(t *testing.T) {
	e := Store(errors.New("connection refused"))
	if e.Error() != "connection refused" {
		t.Fatalf("message: want=%q got=%q", "connection refused", e.Error())
	}
}

func TestErrorMessageFallsBackToCode(t *testing.T) {
	e := New(http.StatusBadRequest, "missing_anio", nil)
	if e.Error() != "missing_anio" {
		t.Fatalf("message: want=%q got=%q", "missing_anio", e.Error())
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	e := Integrity(fmt.Errorf("key %q: %w", "x", cause))
	if !errors.Is(e, cause) {
		t.Fatalf("errors.Is should reach the cause through %v", e)
	}
}
