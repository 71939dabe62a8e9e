package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestTrimOptional(t *testing.T) {
	tc := []struct {
		name  string
		input *string
		want  *string
	}{
		{name: "nil stays nil", input: nil, want: nil},
		{name: "empty becomes nil", input: ptr(""), want: nil},
		{name: "whitespace becomes nil", input: ptr("   \t"), want: nil},
		{name: "value is trimmed", input: ptr("  Drama "), want: ptr("Drama")},
		{name: "clean value kept", input: ptr("EU"), want: ptr("EU")},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimOptional(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("TrimOptional() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("TrimOptional() = %q, want %q", *got, *tt.want)
			}
		})
	}

	t.Run("does not mutate input", func(t *testing.T) {
		in := ptr("  x  ")
		TrimOptional(in)
		if *in != "  x  " {
			t.Errorf("input was modified: %q", *in)
		}
	})
}

func TestOptionalString(t *testing.T) {
	if OptionalString("") != nil {
		t.Error("empty input should be absent")
	}
	if got := OptionalString(" a@b.com "); got == nil || *got != "a@b.com" {
		t.Errorf("OptionalString() = %v", got)
	}
}

func TestLogger(t *testing.T) {
	t.Run("WithLogger adds fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "run", "abc")
		logger.Info("hello")

		if !strings.Contains(buf.String(), "run=abc") {
			t.Errorf("expected run field in output, got %q", buf.String())
		}
	})

	t.Run("SetLogLevel filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.WarnLevel)
		logger.Info("quiet")

		if buf.Len() != 0 {
			t.Errorf("expected info to be filtered, got %q", buf.String())
		}
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateID() = %q is not a uuid: %v", id, err)
	}
	if id == GenerateID() {
		t.Error("expected distinct ids")
	}
}

func ptr(s string) *string { return &s }

func TestNewFileLogger(t *testing.T) {
	t.Run("creates parent directories and appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "mediarights.log")

		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Info("first")

		again, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		again.Info("second")

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
			t.Errorf("expected both entries in log file, got %q", data)
		}
	})

	t.Run("fails when the directory cannot be created", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(blocker, nil, 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewFileLogger(filepath.Join(blocker, "sub", "x.log")); err == nil {
			t.Error("expected error when parent is a regular file")
		}
	})
}
