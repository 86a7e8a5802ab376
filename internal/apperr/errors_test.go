package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCategories(t *testing.T) {
	nf := NotFound("Activity not found")
	if nf.HTTPStatus != http.StatusNotFound || nf.Error() != "Activity not found" {
		t.Fatalf("unexpected not-found error: %+v", nf)
	}

	cf := Conflict("Activity is full")
	if cf.HTTPStatus != http.StatusBadRequest || cf.Category != CategoryConflict {
		t.Fatalf("unexpected conflict error: %+v", cf)
	}
}

func TestFromError(t *testing.T) {
	status, detail := FromError(Conflict("Already signed up"))
	if status != http.StatusBadRequest || detail != "Already signed up" {
		t.Fatalf("got %d %q", status, detail)
	}

	// Wrapped errors still resolve to their category.
	wrapped := fmt.Errorf("signup: %w", NotFound("Activity not found"))
	status, detail = FromError(wrapped)
	if status != http.StatusNotFound || detail != "Activity not found" {
		t.Fatalf("got %d %q", status, detail)
	}

	status, _ = FromError(errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for untyped error, got %d", status)
	}
}
