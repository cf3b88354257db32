package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrInvalidInput is returned when an argument is not usable text or a usable bound.
var ErrInvalidInput = errors.New("invalid input")

// DefaultMaxChars bounds the fragment handed to DetectLanguage.
const DefaultMaxChars = 50

// quotationPatterns are applied one after another, each removing every span it matches.
var quotationPatterns = []*regexp2.Regexp{
	regexp2.MustCompile(`".*?"`, regexp2.None),
	regexp2.MustCompile(`'.*?'`, regexp2.None),
	regexp2.MustCompile(`「.*?」`, regexp2.None),
	regexp2.MustCompile(`『.*?』`, regexp2.None),
	regexp2.MustCompile(`“.*?”`, regexp2.None),
	regexp2.MustCompile(`‘.*?’`, regexp2.None),
}

// acronymPattern matches a standalone run of 2-5 upper-case ASCII letters.
// \b is Unicode-aware in regexp2, so "NDAé" is not an acronym.
var acronymPattern = regexp2.MustCompile(`\b[A-Z]{2,5}\b`, regexp2.None)

func isSentenceDelimiter(r rune) bool {
	switch r {
	case '\n', '.', '?', '!', '。', '？', '！':
		return true
	}
	return false
}

// FirstSentence is ExtractFirstSentence with DefaultMaxChars.
func FirstSentence(s string) string {
	fragment, _ := ExtractFirstSentence(s, DefaultMaxChars)
	return fragment
}

// ExtractFirstSentence reduces s to a short leading fragment for language detection.
//
// The fragment ends at the first newline or sentence terminator (inclusive), is cut to
// at most maxChars runes, and then has quoted spans and acronyms removed and whitespace
// collapsed. The cut may land mid-word. Only a non-positive maxChars is an error.
func ExtractFirstSentence(s string, maxChars int) (string, error) {
	if maxChars <= 0 {
		return "", fmt.Errorf("%w: max chars must be positive, got %d", ErrInvalidInput, maxChars)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	candidate := []rune(s)
	for i, r := range candidate {
		if isSentenceDelimiter(r) {
			candidate = candidate[:i+1]
			break
		}
	}
	if len(candidate) > maxChars {
		candidate = candidate[:maxChars]
	}

	fragment := string(candidate)
	var err error
	for _, pattern := range quotationPatterns {
		if fragment, err = pattern.Replace(fragment, "", -1, -1); err != nil {
			return "", err
		}
	}
	if fragment, err = acronymPattern.Replace(fragment, "", -1, -1); err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(fragment), " "), nil
}
