// Detect the language of a short text from the scripts and diacritics it uses.
package text

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a detected language. The zero value is Undetermined.
type Language string

const (
	Undetermined Language = ""
	English      Language = "English"
	Japanese     Language = "Japanese"
	Vietnamese   Language = "Vietnamese"
)

// SupportedLanguages lists every language DetectLanguage can return.
var SupportedLanguages = []Language{English, Japanese, Vietnamese}

func (l Language) String() string {
	if l == Undetermined {
		return "Undetermined"
	}
	return string(l)
}

// Tag returns the BCP-47 tag used to pick a response locale, language.Und when undetermined.
func (l Language) Tag() language.Tag {
	switch l {
	case English:
		return language.English
	case Japanese:
		return language.Japanese
	case Vietnamese:
		return language.Vietnamese
	default:
		return language.Und
	}
}

const (
	kanaThreshold  = 0.05 // any real share of kana is Japanese, Chinese has none
	kanjiThreshold = 0.5  // Han-dominated text is Japanese, Chinese is not supported
	asciiThreshold = 0.5
)

// DetectLanguage returns English, Japanese, Vietnamese or Undetermined for s.
// Japanese and Vietnamese are decided by the presence of script-specific runes;
// English needs either a majority of ASCII letters or no stronger signal at all.
func DetectLanguage(s string) Language {
	if strings.TrimSpace(s) == "" {
		return Undetermined
	}

	counts := CountCharacters(s)
	if counts.Total == 0 {
		return Undetermined
	}
	total := float64(counts.Total)
	kanaRatio := float64(counts.Hiragana+counts.Katakana) / total
	kanjiRatio := float64(counts.Kanji) / total
	asciiRatio := float64(counts.ASCIILetter) / total

	if kanaRatio > kanaThreshold {
		return Japanese
	}
	if kanjiRatio > kanjiThreshold {
		return Japanese
	}
	if counts.VietnameseUnique >= 1 {
		return Vietnamese
	}
	// A single dot-below or hook-above is enough, French and Spanish do not use them.
	if counts.VietnameseCommon >= 1 {
		return Vietnamese
	}
	if asciiRatio > asciiThreshold {
		return English
	}
	if counts.ASCIILetter > 0 {
		return English
	}
	return Undetermined
}
