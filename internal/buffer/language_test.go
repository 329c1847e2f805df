package buffer

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		path     string
		expected Language
	}{
		{"main.go", LangCFamily},
		{"app.ts", LangCFamily},
		{"script.py", LangScript},
		{"deploy.sh", LangScript},
		{"init.lua", LangDash},
		{"schema.sql", LangDash},
		{"core.clj", LangLisp},
		{"legacy.vb", LangBasic},
		{"notes.txt", LangUnknown},
		{"Makefile", LangUnknown},
		{"UPPER.GO", LangCFamily},
	}

	for _, tc := range tests {
		if got := DetectLanguage(tc.path); got != tc.expected {
			t.Errorf("DetectLanguage(%q) = %q, expected %q", tc.path, got, tc.expected)
		}
	}
}

func TestCommentStart(t *testing.T) {
	tests := []struct {
		name  string
		lang  Language
		line  string
		start int
		found bool
	}{
		{"go line comment", LangCFamily, "x := 1 // counter", 7, true},
		{"go no comment", LangCFamily, "x := 1", 0, false},
		{"python comment", LangScript, "x = 1  # counter", 7, true},
		{"shell full-line", LangScript, "# header", 0, true},
		{"lua comment", LangDash, "local x = 1 -- note", 12, true},
		{"lisp comment", LangLisp, "(def x 1) ; note", 10, true},
		{"unknown language", LangUnknown, "// not detected", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, found := commentStart(tc.lang, tc.line)
			if found != tc.found || (found && start != tc.start) {
				t.Errorf("commentStart(%q, %q) = (%d, %v), expected (%d, %v)",
					tc.lang, tc.line, start, found, tc.start, tc.found)
			}
		})
	}
}

func TestInComment(t *testing.T) {
	b := FromString("x.go", "y := 2 // doubled\nplain line")
	b.SetLanguage(LangCFamily)

	if !b.InComment(0, 7) {
		t.Error("column at comment start should be in comment")
	}
	if !b.InComment(0, 12) {
		t.Error("column inside comment text should be in comment")
	}
	if b.InComment(0, 3) {
		t.Error("column before comment should not be in comment")
	}
	if b.InComment(1, 0) {
		t.Error("line without comment should not be in comment")
	}

	b.SetLanguage(LangUnknown)
	if b.InComment(0, 12) {
		t.Error("unknown language never yields comments")
	}
}
