package bootstrap

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestBodyLimit(t *testing.T) {
	tests := []struct {
		maxVideoBytes int64
		want          string
	}{
		{1 << 30, "1537M"},
		{64 << 20, "97M"},
		{0, "1537M"},
	}

	for _, tt := range tests {
		got := bodyLimit(&Config{MaxVideoBytes: tt.maxVideoBytes})
		if got != tt.want {
			t.Errorf("bodyLimit(%d) = %q, want %q", tt.maxVideoBytes, got, tt.want)
		}
	}
}

func TestNewEchoServer_BodyLimit(t *testing.T) {
	e := NewEchoServer(&Config{MaxVideoBytes: 1})
	e.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(bytes.Repeat([]byte("a"), 2<<20)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversize body: expected 413, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader([]byte("ok")))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("small body: expected 200, got %d", rec.Code)
	}
}
