package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
		req.Header.Set("Accept-Language", "en")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag.String() != "pt-BR" {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
		if !persist {
			t.Fatalf("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag.String() != "en-US" {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR, en;q=0.9")

		tag, persist := ResolveTag(req)
		if tag.String() != "pt-BR" {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})

	t.Run("no signal falls back to default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)

		tag, persist := ResolveTag(req)
		if tag != Default() {
			t.Fatalf("expected default, got %s", tag.String())
		}
		if persist {
			t.Fatalf("expected persist to be false")
		}
	})
}

func TestResolveTagInvalidValues(t *testing.T) {
	t.Run("invalid query param falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=not-a-lang", nil)
		req.Header.Set("Accept-Language", "pt-BR")

		tag, _ := ResolveTag(req)
		if tag.String() != "pt-BR" {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
	})

	t.Run("invalid cookie falls back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "??"})

		tag, _ := ResolveTag(req)
		if tag != Default() {
			t.Fatalf("expected default, got %s", tag.String())
		}
	})
}

func TestPrinterTranslatesRegisteredMessages(t *testing.T) {
	t.Parallel()

	en := Printer(Default())
	if got := en.Sprintf("nav.forum"); got != "Forum" {
		t.Fatalf("en nav.forum = %q", got)
	}

	pt, ok := ParseTag("pt-BR")
	if !ok {
		t.Fatal("expected pt-BR to be supported")
	}
	if got := Printer(pt).Sprintf("nav.forum"); got != "Fórum" {
		t.Fatalf("pt nav.forum = %q", got)
	}
}
