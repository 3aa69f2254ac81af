package catalog

import (
	"os"
	"path/filepath"
	"testing"

	mbkerror "github.com/msto63/mBK/foundation/core/error"
)

func TestLoadLines_MissingFile(t *testing.T) {
	_, err := loadLines("/nonexistent/beers.txt")
	if err == nil {
		t.Fatal("loadLines() expected error for missing file")
	}
	if !mbkerror.HasCode(err, mbkerror.CodeResourceNotFound) {
		t.Errorf("error code = %v, want RESOURCE_NOT_FOUND", mbkerror.GetCode(err))
	}
}

func TestLoadLines_PreservesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beers.txt")
	content := "1 Beer \n  Brewery\nStout | 5.00% 10 4.20\n"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	lines, err := loadLines(path)
	if err != nil {
		t.Fatalf("loadLines() error = %v", err)
	}

	expected := []string{"1 Beer ", "  Brewery", "Stout | 5.00% 10 4.20"}
	if len(lines) != len(expected) {
		t.Fatalf("loadLines() returned %d lines, want %d", len(lines), len(expected))
	}
	for i := range lines {
		if lines[i] != expected[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], expected[i])
		}
	}
}

func TestLoadLines_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	lines, err := loadLines(path)
	if err != nil {
		t.Fatalf("loadLines() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("loadLines() returned %d lines, want 0", len(lines))
	}
}
