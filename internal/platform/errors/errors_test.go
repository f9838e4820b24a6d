package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorMatchesByCode(t *testing.T) {
	base := New(CodeNotFound, "post not found")
	wrapped := fmt.Errorf("load thread: %w", base)

	if !errors.Is(wrapped, New(CodeNotFound, "different message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if errors.Is(wrapped, New(CodeForbidden, "post not found")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestGetCodeUnwrapsChains(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save post: %w", Wrap(CodeStoreUnavailable, "store write failed", cause))

	if got := GetCode(err); got != CodeStoreUnavailable {
		t.Fatalf("GetCode = %q, want %q", got, CodeStoreUnavailable)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to stay reachable through the chain")
	}
}

func TestGetCodeUnknownForPlainErrors(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("GetCode = %q, want %q", got, CodeUnknown)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Fatalf("GetCode(nil) = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodePostTitleEmpty, http.StatusBadRequest},
		{CodeCommentContentEmpty, http.StatusBadRequest},
		{CodeAuthInvalidCredentials, http.StatusUnauthorized},
		{CodeAuthSessionInvalid, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeAuthEmailTaken, http.StatusConflict},
		{CodeStoreUnavailable, http.StatusServiceUnavailable},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWithMetadataKeepsFields(t *testing.T) {
	err := WithMetadata(CodeProfileInvalidRole, "unsupported role", map[string]string{"Role": "nurse"})
	if err.Metadata["Role"] != "nurse" {
		t.Fatalf("Metadata[Role] = %q, want %q", err.Metadata["Role"], "nurse")
	}
	if HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("HTTPStatus = %d, want %d", HTTPStatus(err), http.StatusBadRequest)
	}
}
