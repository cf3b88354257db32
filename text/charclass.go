package text

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharacterClass is the detection class of a single rune.
// Every rune belongs to exactly one class.
type CharacterClass int

const (
	Other CharacterClass = iota
	Hiragana
	Katakana
	Kanji
	VietnameseUnique
	VietnameseCommon
	ASCIILetter
)

var characterClassNames = [...]string{
	Other:            "other",
	Hiragana:         "hiragana",
	Katakana:         "katakana",
	Kanji:            "kanji",
	VietnameseUnique: "vietnamese_unique",
	VietnameseCommon: "vietnamese_common",
	ASCIILetter:      "ascii_letter",
}

func (c CharacterClass) String() string {
	if c < 0 || int(c) >= len(characterClassNames) {
		return "unknown"
	}
	return characterClassNames[c]
}

// Letters that only Vietnamese writes: ă đ ơ ư and the tone-marked vowels built on ă â ô ơ ư.
// French, Spanish and German never use them.
const vietnameseUniqueLetters = "ăđơưĂĐƠƯ" +
	"ặẳẵắằậẩẫấầ" +
	"ợởỡớờộổỗốồ" +
	"ựửữứừ" +
	"ẶẲẴẮẰẬẨẪẤẦ" +
	"ỢỞỠỚỜỘỔỖỐỒ" +
	"ỰỬỮỨỪ"

// Dot-below and hook-above forms, rare outside Vietnamese but not unique to it.
const vietnameseCommonLetters = "ạảẹẻịỉọỏụủỵỷ" +
	"ẠẢẸẺỊỈỌỎỤỦỴỶ"

var (
	vietnameseUniqueTable = rangetable.New([]rune(vietnameseUniqueLetters)...)
	vietnameseCommonTable = rangetable.New([]rune(vietnameseCommonLetters)...)
)

const (
	hiraganaFirst = '\u3040'
	hiraganaLast  = '\u309F'
	katakanaFirst = '\u30A0'
	katakanaLast  = '\u30FF'
	kanjiFirst    = '\u4E00' // CJK Unified Ideographs
	kanjiLast     = '\u9FFF'
)

// ClassifyRune returns the detection class of r.
func ClassifyRune(r rune) CharacterClass {
	switch {
	case r >= hiraganaFirst && r <= hiraganaLast:
		return Hiragana
	case r >= katakanaFirst && r <= katakanaLast:
		return Katakana
	case r >= kanjiFirst && r <= kanjiLast:
		return Kanji
	case unicode.Is(vietnameseUniqueTable, r):
		return VietnameseUnique
	case unicode.Is(vietnameseCommonTable, r):
		return VietnameseCommon
	case r <= unicode.MaxASCII && unicode.IsLetter(r):
		return ASCIILetter
	default:
		return Other
	}
}

// ClassCounts accumulates per-class rune counts for one text.
type ClassCounts struct {
	Hiragana         int
	Katakana         int
	Kanji            int
	VietnameseUnique int
	VietnameseCommon int
	ASCIILetter      int
	Other            int
	// Total is the number of runes scanned, Other included.
	Total int
}

// Add records one rune of class c.
func (cc *ClassCounts) Add(c CharacterClass) {
	cc.Total++
	switch c {
	case Hiragana:
		cc.Hiragana++
	case Katakana:
		cc.Katakana++
	case Kanji:
		cc.Kanji++
	case VietnameseUnique:
		cc.VietnameseUnique++
	case VietnameseCommon:
		cc.VietnameseCommon++
	case ASCIILetter:
		cc.ASCIILetter++
	default:
		cc.Other++
	}
}

// Count returns the count recorded for class c.
func (cc ClassCounts) Count(c CharacterClass) int {
	switch c {
	case Hiragana:
		return cc.Hiragana
	case Katakana:
		return cc.Katakana
	case Kanji:
		return cc.Kanji
	case VietnameseUnique:
		return cc.VietnameseUnique
	case VietnameseCommon:
		return cc.VietnameseCommon
	case ASCIILetter:
		return cc.ASCIILetter
	default:
		return cc.Other
	}
}

// CountCharacters classifies every rune of s once.
func CountCharacters(s string) ClassCounts {
	var counts ClassCounts
	for _, r := range s {
		counts.Add(ClassifyRune(r))
	}
	return counts
}
