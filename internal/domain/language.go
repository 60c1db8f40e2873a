package domain

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is the catalog language for a book or journal.
type Language string

// Supported catalog languages.
const (
	LanguageEnglish Language = "en"
	LanguageTamil   Language = "ta"
)

// String returns the BCP 47 base tag.
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is a recognized value.
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageTamil:
		return true
	default:
		return false
	}
}

// ParseLanguage canonicalizes a language tag and maps it onto a supported
// catalog language. Inputs like "en-US" or "TA" collapse to their base tag.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}

	base, _ := tag.Base()
	lang := Language(base.String())
	if !lang.IsValid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return lang, nil
}
