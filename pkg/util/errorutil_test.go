package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError_PassesThroughDomainErrors(t *testing.T) {
	t.Parallel()

	original := NewValidationError("bad input", map[string]any{"field": "email"})
	mapped := ToDomainError(original)

	if mapped.Code != "VALIDATION_FAILED" || mapped.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_MapsNoRowsToNotFound(t *testing.T) {
	t.Parallel()

	mapped := ToDomainError(pgx.ErrNoRows)
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
}

func TestToDomainError_WrapsUnknownErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	mapped := ToDomainError(cause)
	if mapped.Code != "INTERNAL_ERROR" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected mapping: %+v", mapped)
	}
	if !errors.Is(mapped, cause) {
		t.Fatal("wrapped cause lost")
	}
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	if ToDomainError(nil) != nil {
		t.Fatal("nil error must map to nil")
	}
}

func TestDomainError_ErrorString(t *testing.T) {
	t.Parallel()

	plain := NewDomainError("X", "message", 400, nil)
	if plain.Error() != "message" {
		t.Fatalf("Error() = %q", plain.Error())
	}

	wrapped := ToDomainError(errors.New("cause"))
	if wrapped.Error() != "internal server error: cause" {
		t.Fatalf("Error() = %q", wrapped.Error())
	}
}
