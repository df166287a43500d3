// # internal/parser/language.go
package parser

import (
	"path/filepath"
	"strings"
)

// Language identifies one of the closed set of supported source languages.
// Dispatch is purely by file extension; unknown extensions parse to nothing.
type Language int

const (
	LangUnknown Language = iota
	LangPython
	LangTypeScript
	LangJavaScript
	LangJava
	LangCSharp
)

func (l Language) String() string {
	switch l {
	case LangPython:
		return "python"
	case LangTypeScript:
		return "typescript"
	case LangJavaScript:
		return "javascript"
	case LangJava:
		return "java"
	case LangCSharp:
		return "csharp"
	default:
		return "unknown"
	}
}

// LanguageForPath maps a file path to its language by extension.
func LanguageForPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return LangPython
	case ".ts", ".tsx":
		return LangTypeScript
	case ".js", ".jsx", ".mjs":
		return LangJavaScript
	case ".java":
		return LangJava
	case ".cs":
		return LangCSharp
	default:
		return LangUnknown
	}
}

// IsSupportedPath reports whether the file belongs to a supported language.
func IsSupportedPath(path string) bool {
	return LanguageForPath(path) != LangUnknown
}

// KnownExtensions lists every extension the engine recognizes, used by the
// resolver when stripping extension suffixes from package-path keys.
var KnownExtensions = []string{".py", ".ts", ".tsx", ".js", ".jsx", ".mjs", ".java", ".cs"}
