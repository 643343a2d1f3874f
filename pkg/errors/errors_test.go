package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("model", "sd-turbo")

	want := "model with ID sd-turbo not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected errors.Is(err, ErrNotFound) to be true")
	}
	if !IsNotFound(err) {
		t.Error("expected IsNotFound to be true")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("expected IsNotFound to be false for unrelated error")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("slug", "bad slug", "contains whitespace")

	want := "validation failed for field slug: contains whitespace"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected errors.Is(err, ErrInvalidInput) to be true")
	}

	// No field set
	err = NewValidationError("", nil, "bad input")
	if err.Error() != "validation failed: bad input" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestParseError(t *testing.T) {
	underlying := errors.New("unexpected token")

	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with file and line",
			err:  &ParseError{Format: "toctree", File: "index.rst", Line: 7, Message: "bad option"},
			want: "parse error in toctree at index.rst:7: bad option",
		},
		{
			name: "with file only",
			err:  NewParseError("yaml", "models.yaml", "bad mapping", underlying),
			want: "parse error in yaml file models.yaml: bad mapping",
		},
		{
			name: "bare",
			err:  &ParseError{Format: "rst", Message: "empty document"},
			want: "rst parse error: empty document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	err := NewParseError("yaml", "models.yaml", "bad mapping", underlying)
	if !errors.Is(err, underlying) {
		t.Error("expected ParseError to unwrap to underlying error")
	}
}

func TestIOError(t *testing.T) {
	underlying := errors.New("permission denied")
	err := NewIOError("read", "/docs/index.rst", underlying)

	want := "IO error during read of /docs/index.rst: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, underlying) {
		t.Error("expected IOError to unwrap to underlying error")
	}
}

func TestSourceError(t *testing.T) {
	err := NewSourceError("huggingface", 429, "too many requests")
	if !errors.Is(err, ErrRateLimited) {
		t.Error("expected 429 to match ErrRateLimited")
	}
	if !IsRateLimited(err) {
		t.Error("expected IsRateLimited to be true")
	}

	err = NewSourceError("google", 503, "backend down")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Error("expected 5xx to match ErrSourceUnavailable")
	}

	err = NewSourceError("google", 404, "gone")
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrSourceUnavailable) {
		t.Error("expected 404 to match neither sentinel")
	}
}

func TestWrapHelpers(t *testing.T) {
	if WrapIO("read", "x", nil) != nil {
		t.Error("WrapIO(nil) should return nil")
	}
	if WrapParse("yaml", "x", nil) != nil {
		t.Error("WrapParse(nil) should return nil")
	}
	if WrapValidation("slug", nil) != nil {
		t.Error("WrapValidation(nil) should return nil")
	}
	if WrapSource("hub", 0, nil) != nil {
		t.Error("WrapSource(nil) should return nil")
	}

	underlying := errors.New("boom")

	var parseErr *ParseError
	if !errors.As(WrapParse("yaml", "models.yaml", underlying), &parseErr) {
		t.Error("WrapParse should produce a *ParseError")
	}

	var ioErr *IOError
	if !errors.As(WrapIO("write", "out.md", underlying), &ioErr) {
		t.Error("WrapIO should produce an *IOError")
	}

	var srcErr *SourceError
	if !errors.As(WrapSource("hub", 500, underlying), &srcErr) {
		t.Error("WrapSource should produce a *SourceError")
	}
}

func TestErrorChains(t *testing.T) {
	base := fmt.Errorf("open failed: %w", ErrNotFound)
	wrapped := WrapIO("read", "docs/sd-turbo.rst", base)

	if !IsNotFound(wrapped) {
		t.Error("expected sentinel to survive wrapping")
	}
}
