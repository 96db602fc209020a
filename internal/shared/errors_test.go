package shared

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestRequestError_Message(t *testing.T) {
	err := InvalidInput("Number of images must be between 2 and 4")
	if err.Error() != "Number of images must be between 2 and 4" {
		t.Errorf("expected bare message, got %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected error to match ErrInvalidInput")
	}
}

func TestRequestError_Formatted(t *testing.T) {
	err := PayloadTooLargef("payload is %d bytes, limit is %d", 2048, 1024)
	if err.Error() != "payload is 2048 bytes, limit is 1024" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Error("expected error to match ErrPayloadTooLarge")
	}
}

func TestRequestError_Wrapped(t *testing.T) {
	inner := InvalidInput("bad url")
	outer := fmt.Errorf("resolve image: %w", inner)
	if !errors.Is(outer, ErrInvalidInput) {
		t.Error("classification should survive wrapping")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", InvalidInput("x"), http.StatusBadRequest},
		{"payload too large", PayloadTooLarge("x"), http.StatusRequestEntityTooLarge},
		{"parse error", ParseError("x"), http.StatusOK},
		{"engine unavailable", Classify(ErrEngineUnavailable, "x"), http.StatusServiceUnavailable},
		{"engine timeout", Classify(ErrEngineTimeout, "x"), http.StatusGatewayTimeout},
		{"engine oom", Classify(ErrEngineOOM, "x"), http.StatusBadGateway},
		{"timeout", Classify(ErrTimeout, "x"), http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
