package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}
	if appErr.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", appErr.Error())
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "missing", http.StatusNotFound)
	custom := simple.WithMessage("repair request not found")
	if simple.Message != "missing" {
		t.Fatalf("WithMessage must not mutate the receiver")
	}
	if custom.Message != "repair request not found" || custom.HTTPStatus != http.StatusNotFound {
		t.Fatalf("unexpected copy: %+v", custom)
	}
}
