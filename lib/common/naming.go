package common

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gertd/go-pluralize"
)

var pluralizer = pluralize.NewClient()

// ModuleName derives the name shown to the user from the project directory.
func ModuleName(dir string) string {
	name := filepath.Base(filepath.Clean(dir))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}

	name = strings.TrimSpace(name)

	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			return r
		case unicode.IsSpace(r):
			return '-'
		default:
			return -1
		}
	}, name)
}

// Count returns "1 file", "2 files", etc.
func Count(word string, count int) string {
	return pluralizer.Pluralize(word, count, true)
}

func CountWithDetail(word string, count int, detail string) string {
	if detail == "" {
		return Count(word, count)
	}

	return fmt.Sprintf("%v (%v)", Count(word, count), detail)
}
