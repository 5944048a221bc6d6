package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
		body := e.ToHTTPError()
		if body.Code != "QUOTE_NOT_FOUND" || body.Message != "Quote not found" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "QUOTE_NOT_FOUND: Quote not found" {
			t.Fatalf("unexpected error string: %s", e.Error())
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("provider timeout")
		e := NewDomainError("GENERATION_FAILED", "Generation failed", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.ToHTTPError().Details != "provider timeout" {
			t.Fatalf("expected details, got %+v", e.ToHTTPError())
		}
	})
}
