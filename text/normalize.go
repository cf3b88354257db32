package text

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Normalizer interface {
	Normalize(text string) (string, error)
}

const (
	NormalizationNone = "none"
	NormalizationNFC  = "nfc"
	NormalizationNFKC = "nfkc"
)

// UnicodeNormalizer rewrites text into a Unicode normalization form before detection.
// Case is preserved, acronym removal depends on it.
type UnicodeNormalizer struct {
	form *norm.Form
}

// NewUnicodeNormalizer creates a normalizer for "none", "nfc" or "nfkc".
// NFC composes decomposed Vietnamese (e.g. "o" + U+0323) so the tier tables see "ọ".
// NFKC additionally folds full-width and compatibility characters.
func NewUnicodeNormalizer(form string) (Normalizer, error) {
	var f *norm.Form
	switch strings.ToLower(strings.TrimSpace(form)) {
	case "", NormalizationNone:
	case NormalizationNFC:
		nfc := norm.NFC
		f = &nfc
	case NormalizationNFKC:
		nfkc := norm.NFKC
		f = &nfkc
	default:
		return nil, fmt.Errorf("%w: unknown normalization form %q", ErrInvalidInput, form)
	}
	return &UnicodeNormalizer{form: f}, nil
}

func (n *UnicodeNormalizer) Normalize(text string) (string, error) {
	if n.form == nil {
		return text, nil
	}
	return n.form.String(text), nil
}
