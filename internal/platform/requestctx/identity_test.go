package requestctx

import (
	"context"
	"testing"
)

func TestIdentityFromContextRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UserID: "user-42", SessionID: "sess-7"})
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if identity.UserID != "user-42" {
		t.Fatalf("UserID = %q, want %q", identity.UserID, "user-42")
	}
	if identity.SessionID != "sess-7" {
		t.Fatalf("SessionID = %q, want %q", identity.SessionID, "sess-7")
	}
}

func TestIdentityFromContextEmpty(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatal("expected no identity in empty context")
	}
}

func TestIdentityFromContextNil(t *testing.T) {
	if _, ok := IdentityFromContext(nil); ok {
		t.Fatal("expected no identity for nil context")
	}
}

func TestIdentityWithEmptyUserIDIsAbsent(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{SessionID: "sess-7"})
	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("expected identity without user id to be treated as absent")
	}
}

func TestWithIdentityNilContext(t *testing.T) {
	ctx := WithIdentity(nil, Identity{UserID: "user-99"})
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if got := UserIDFromContext(ctx); got != "user-99" {
		t.Fatalf("UserIDFromContext = %q, want %q", got, "user-99")
	}
}
