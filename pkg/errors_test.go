package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDomainError_KindOf(t *testing.T) {
	err := NewDomainFailure(KindDomainRuleBroken, "no budget exists to approve")
	if KindOf(err) != KindDomainRuleBroken {
		t.Fatalf("expected DOMAIN_RULE_BROKEN, got %s", KindOf(err))
	}

	wrapped := fmt.Errorf("use case: %w", err)
	if !IsKind(wrapped, KindDomainRuleBroken) {
		t.Fatalf("kind must survive wrapping")
	}

	if KindOf(errors.New("plain")) != KindUnexpected {
		t.Fatalf("plain errors must map to UNEXPECTED_ERROR")
	}
}

func TestWrapUnexpected(t *testing.T) {
	cause := errors.New("dynamodb: connection reset")
	err := WrapUnexpected(cause)

	if KindOf(err) != KindUnexpected {
		t.Fatalf("expected UNEXPECTED_ERROR, got %s", KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause must be unwrappable")
	}
}

func TestFromError(t *testing.T) {
	cases := []struct {
		kind   ErrorKind
		status int
	}{
		{KindResourceNotFound, http.StatusNotFound},
		{KindReferenceNotFound, http.StatusUnprocessableEntity},
		{KindConflict, http.StatusConflict},
		{KindInvalidInput, http.StatusBadRequest},
		{KindDomainRuleBroken, http.StatusUnprocessableEntity},
		{KindNotAllowed, http.StatusForbidden},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindUnexpected, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			appErr := FromError(NewDomainFailure(tc.kind, "boom"))
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != string(tc.kind) {
				t.Fatalf("expected code %s, got %s", tc.kind, appErr.Code)
			}
		})
	}

	t.Run("internal detail never leaks", func(t *testing.T) {
		appErr := FromError(errors.New("table service_orders does not exist"))
		if appErr.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", appErr.HTTPStatus)
		}
		if appErr.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("internal message leaked: %s", appErr.ToHTTPError().Message)
		}
	})
}
