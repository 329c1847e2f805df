package buffer

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Language identifies a document language for comment detection.
type Language string

const (
	LangUnknown Language = ""
	LangCFamily Language = "c-family" // //-style comments
	LangScript  Language = "script"   // #-style comments
	LangDash    Language = "dash"     // --  (lua, sql, haskell)
	LangLisp    Language = "lisp"     // ;
	LangBasic   Language = "basic"    // '
)

// extLanguages maps file extensions to a comment language.
// Closed table: languages with other comment syntaxes fall back to
// LangUnknown and simply earn no comment bonus.
var extLanguages = map[string]Language{
	".go":    LangCFamily,
	".c":     LangCFamily,
	".h":     LangCFamily,
	".cpp":   LangCFamily,
	".cc":    LangCFamily,
	".hpp":   LangCFamily,
	".cs":    LangCFamily,
	".java":  LangCFamily,
	".js":    LangCFamily,
	".jsx":   LangCFamily,
	".ts":    LangCFamily,
	".tsx":   LangCFamily,
	".rs":    LangCFamily,
	".swift": LangCFamily,
	".kt":    LangCFamily,
	".scala": LangCFamily,
	".php":   LangCFamily,
	".py":    LangScript,
	".rb":    LangScript,
	".sh":    LangScript,
	".bash":  LangScript,
	".zsh":   LangScript,
	".pl":    LangScript,
	".r":     LangScript,
	".yaml":  LangScript,
	".yml":   LangScript,
	".toml":  LangScript,
	".lua":   LangDash,
	".sql":   LangDash,
	".hs":    LangDash,
	".lisp":  LangLisp,
	".clj":   LangLisp,
	".el":    LangLisp,
	".scm":   LangLisp,
	".vb":    LangBasic,
	".bas":   LangBasic,
}

// commentPatterns maps each language to the regexp locating the start of
// a single-line comment. Data, not branching logic: adding a language is
// one table row.
var commentPatterns = map[Language]*regexp.Regexp{
	LangCFamily: regexp.MustCompile(`//`),
	LangScript:  regexp.MustCompile(`#`),
	LangDash:    regexp.MustCompile(`--`),
	LangLisp:    regexp.MustCompile(`;`),
	LangBasic:   regexp.MustCompile(`'`),
}

// DetectLanguage resolves a document language from its file path.
func DetectLanguage(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extLanguages[ext]; ok {
		return lang
	}
	return LangUnknown
}

// commentStart returns the column at which a single-line comment begins
// on the given line, if one is present.
func commentStart(lang Language, line string) (int, bool) {
	re, ok := commentPatterns[lang]
	if !ok {
		return 0, false
	}
	loc := re.FindStringIndex(line)
	if loc == nil {
		return 0, false
	}
	// Byte offset to rune column.
	return len([]rune(line[:loc[0]])), true
}
