package buffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromStringGeometry(t *testing.T) {
	b := FromString("test.txt", "hello\n\n    \nworld longer line\n")

	if b.LineCount() != 4 {
		t.Fatalf("LineCount() = %d, expected 4", b.LineCount())
	}
	if b.LineLen(0) != 5 {
		t.Errorf("LineLen(0) = %d, expected 5", b.LineLen(0))
	}
	if b.LineLen(3) != 17 {
		t.Errorf("LineLen(3) = %d, expected 17", b.LineLen(3))
	}
	if b.MaxLineLen() != 17 {
		t.Errorf("MaxLineLen() = %d, expected 17", b.MaxLineLen())
	}
	if b.LineLen(99) != 0 {
		t.Errorf("LineLen out of range should be 0, got %d", b.LineLen(99))
	}
}

func TestBlankLines(t *testing.T) {
	b := FromString("test.txt", "text\n\n   \n\tcode")

	tests := []struct {
		line     int
		expected bool
	}{
		{0, false}, // "text"
		{1, true},  // empty
		{2, true},  // spaces only
		{3, false}, // indented code
		{-1, true}, // outside
		{10, true}, // outside
	}

	for _, tc := range tests {
		if got := b.IsBlank(tc.line); got != tc.expected {
			t.Errorf("IsBlank(%d) = %v, expected %v", tc.line, got, tc.expected)
		}
	}
}

func TestHasTextAt(t *testing.T) {
	b := FromString("test.txt", "ab cd\n\n  x")

	tests := []struct {
		name      string
		line, col int
		expected  bool
	}{
		{"on a rune", 0, 0, true},
		{"on inner space", 0, 2, false},
		{"past end of line", 0, 10, false},
		{"blank line any column", 1, 0, false},
		{"indent before text", 2, 0, false},
		{"indented rune", 2, 2, true},
		{"negative column", 0, -1, false},
		{"line outside document", 5, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.HasTextAt(tc.line, tc.col); got != tc.expected {
				t.Errorf("HasTextAt(%d, %d) = %v, expected %v", tc.line, tc.col, got, tc.expected)
			}
		})
	}
}

func TestTabExpansion(t *testing.T) {
	b := FromString("test.txt", "\tx")

	if b.LineLen(0) != 5 {
		t.Errorf("tab should expand to 4 spaces, LineLen = %d", b.LineLen(0))
	}
	if b.HasTextAt(0, 0) {
		t.Error("expanded tab cell should be open space")
	}
	if !b.HasTextAt(0, 4) {
		t.Error("rune after expanded tab should be text")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.go")
	content := "package main\n\nfunc main() {} // entry\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if b.Name() != "sample.go" {
		t.Errorf("Name() = %q, expected sample.go", b.Name())
	}
	if b.Language() != LangCFamily {
		t.Errorf("Language() = %q, expected c-family", b.Language())
	}
	if b.LineCount() != 3 {
		t.Errorf("LineCount() = %d, expected 3", b.LineCount())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}
