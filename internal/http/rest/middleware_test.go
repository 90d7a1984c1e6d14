package rest

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gustavoSo3/adogtame-back/util/values"
)

func TestExtractToken(t *testing.T) {
	t.Run("from x-access-token header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/groups", nil)
		r.Header.Set(values.HeaderAccessToken, "header-token")

		if got := extractToken(r); got != "header-token" {
			t.Errorf("extractToken() = %q, want %q", got, "header-token")
		}
	})

	t.Run("from authorization bearer", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/groups", nil)
		r.Header.Set("Authorization", "Bearer bearer-token")

		if got := extractToken(r); got != "bearer-token" {
			t.Errorf("extractToken() = %q, want %q", got, "bearer-token")
		}
	})

	t.Run("from query parameter", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/ws/feed?token=query-token", nil)

		if got := extractToken(r); got != "query-token" {
			t.Errorf("extractToken() = %q, want %q", got, "query-token")
		}
	})

	t.Run("from json body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/groups", strings.NewReader(`{"token":"body-token","name":"x"}`))
		r.Header.Set("Content-Type", "application/json")

		if got := extractToken(r); got != "body-token" {
			t.Errorf("extractToken() = %q, want %q", got, "body-token")
		}

		// downstream handlers still need the body
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("re-reading body: %v", err)
		}
		if !strings.Contains(string(raw), `"name":"x"`) {
			t.Errorf("body not restored after token extraction: %s", raw)
		}
	})

	t.Run("header wins over query", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/groups?token=query-token", nil)
		r.Header.Set(values.HeaderAccessToken, "header-token")

		if got := extractToken(r); got != "header-token" {
			t.Errorf("extractToken() = %q, want %q", got, "header-token")
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/groups", nil)

		if got := extractToken(r); got != "" {
			t.Errorf("extractToken() = %q, want empty", got)
		}
	})

	t.Run("non json body is ignored", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/images", strings.NewReader("binary"))
		r.Header.Set("Content-Type", "multipart/form-data")

		if got := extractToken(r); got != "" {
			t.Errorf("extractToken() = %q, want empty", got)
		}
	})
}
