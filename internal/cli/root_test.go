package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	arberrors "github.com/matzehuels/arbor/pkg/errors"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")

	if version != "1.0.0" {
		t.Errorf("version = %q, want %q", version, "1.0.0")
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want %q", commit, "abc123")
	}
	if date != "2024-01-01" {
		t.Errorf("date = %q, want %q", date, "2024-01-01")
	}
}

func writeOutline(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrintCommand(t *testing.T) {
	path := writeOutline(t, "Root\n  - Branch\n    - Leaf\n")

	cmd := newPrintCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path, "--no-color"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("print: %v", err)
	}

	want := "* Root\n  * Branch\n    - Leaf\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintCommandMissingFile(t *testing.T) {
	cmd := newPrintCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.txt")})

	err := cmd.ExecuteContext(context.Background())
	if !arberrors.Is(err, arberrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestStatsCommand(t *testing.T) {
	path := writeOutline(t, "Root\n  - A\n    - A1\n  - B\n")

	cmd := newStatsCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("stats: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"nodes:", "4", "leaves:", "2", "depth:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCommandDOT(t *testing.T) {
	path := writeOutline(t, "Root\n  - Leaf\n")

	cmd := newRenderCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{path, "--format", "dot"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph tree {") || !strings.Contains(out, "Leaf") {
		t.Errorf("DOT output malformed:\n%s", out)
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	path := writeOutline(t, "Root\n")

	cmd := newRenderCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--format", "gif"})

	err := cmd.ExecuteContext(context.Background())
	if !arberrors.Is(err, arberrors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}
