package security

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestValidatePaletteName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "Brand", wantErr: false},
		{name: "spaces", input: "My Brand Colours", wantErr: false},
		{name: "unicode", input: "Färben", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "traversal", input: "..", wantErr: true},
		{name: "nul", input: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaletteName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaletteName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestLimitedReader(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		r := NewLimitedReader(strings.NewReader("hello"), 10)
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadAll() = %q, want %q", data, "hello")
		}
	})

	t.Run("exceeds limit", func(t *testing.T) {
		r := NewLimitedReader(bytes.NewReader(make([]byte, 64)), 16)
		_, err := io.ReadAll(r)
		if err == nil {
			t.Fatal("ReadAll() expected size limit error")
		}
	})
}
