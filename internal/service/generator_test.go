package service

import (
	"errors"
	"testing"

	"github.com/passmint/passmint-go/internal/generator"
)

func TestGenerate_Success(t *testing.T) {
	svc := NewGeneratorService()

	resp, err := svc.Generate(generator.RawOptions{"length": "16", "numbers": "true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
}

func TestGenerate_ValidationErrorPassesThrough(t *testing.T) {
	svc := NewGeneratorService()

	resp, err := svc.Generate(generator.RawOptions{"numbers": "true"})
	if !errors.Is(err, generator.ErrLengthMissing) {
		t.Fatalf("expected ErrLengthMissing, got %v", err)
	}
	if resp.Password != "" {
		t.Errorf("expected empty response on error, got %q", resp.Password)
	}
}
