// Package buffer adapts a text document into the 2D character grid the
// game engine moves over. Lines and columns are zero-indexed; a cell
// beyond a line's last rune is open space.
package buffer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Buffer is an immutable view of a loaded document.
type Buffer struct {
	name     string
	language Language
	lines    [][]rune
	blank    []bool // per-line: trimmed text is empty
	maxLen   int
}

// Load reads a document from disk. Tabs are expanded to spaces so that
// columns map one-to-one onto screen cells.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: cannot read %s: %w", path, err)
	}
	b := FromString(filepath.Base(path), string(data))
	b.language = DetectLanguage(path)
	return b, nil
}

// FromString builds a buffer from raw text. Used directly by tests and by
// the SSH server for embedded sample documents.
func FromString(name, text string) *Buffer {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	raw := strings.Split(text, "\n")

	// A trailing newline produces one phantom empty line; keep it only if
	// the document would otherwise be empty.
	if len(raw) > 1 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	b := &Buffer{
		name:     name,
		language: LangUnknown,
		lines:    make([][]rune, len(raw)),
		blank:    make([]bool, len(raw)),
	}
	for i, line := range raw {
		b.lines[i] = []rune(line)
		b.blank[i] = strings.TrimSpace(line) == ""
		if len(b.lines[i]) > b.maxLen {
			b.maxLen = len(b.lines[i])
		}
	}
	return b
}

// Name returns the document's display name.
func (b *Buffer) Name() string {
	return b.name
}

// Language returns the detected document language.
func (b *Buffer) Language() Language {
	return b.language
}

// SetLanguage overrides the detected language.
func (b *Buffer) SetLanguage(l Language) {
	b.language = l
}

// LineCount returns the number of lines in the document, at least 1.
func (b *Buffer) LineCount() int {
	if len(b.lines) == 0 {
		return 1
	}
	return len(b.lines)
}

// LineLen returns the rune length of line i, or 0 outside the document.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// Line returns the text of line i as runes. The returned slice must not
// be mutated.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// MaxLineLen returns the length of the longest line.
func (b *Buffer) MaxLineLen() int {
	return b.maxLen
}

// IsBlank reports whether line i is empty or whitespace-only.
// Lines outside the document count as blank.
func (b *Buffer) IsBlank(i int) bool {
	if i < 0 || i >= len(b.blank) {
		return true
	}
	return b.blank[i]
}

// HasTextAt reports whether the cell at (line, col) contains a
// non-whitespace rune. Cells past the end of a line, on blank lines, or
// outside the document are open space.
func (b *Buffer) HasTextAt(line, col int) bool {
	if line < 0 || line >= len(b.lines) || b.blank[line] {
		return false
	}
	row := b.lines[line]
	if col < 0 || col >= len(row) {
		return false
	}
	return !unicode.IsSpace(row[col])
}

// InComment reports whether the cell at (line, col) falls inside a
// single-line comment for the document's language.
func (b *Buffer) InComment(line, col int) bool {
	if b.language == LangUnknown || line < 0 || line >= len(b.lines) {
		return false
	}
	start, ok := commentStart(b.language, string(b.lines[line]))
	return ok && col >= start
}
