package text

import "fmt"

// Result is the outcome of running a query through a Pipeline.
type Result struct {
	Language Language
	// Fragment is the text the language was detected on.
	Fragment string
}

// Pipeline normalizes a query, extracts its leading sentence and detects the language of it.
// A Pipeline is immutable and may be shared between goroutines.
type Pipeline struct {
	normalizer Normalizer
	maxChars   int
}

// NewPipeline creates a pipeline; a nil normalizer leaves text untouched.
func NewPipeline(normalizer Normalizer, maxChars int) (*Pipeline, error) {
	if maxChars <= 0 {
		return nil, fmt.Errorf("%w: max chars must be positive, got %d", ErrInvalidInput, maxChars)
	}
	if normalizer == nil {
		normalizer = &UnicodeNormalizer{}
	}
	return &Pipeline{normalizer: normalizer, maxChars: maxChars}, nil
}

// MaxChars returns the fragment bound of the pipeline.
func (p *Pipeline) MaxChars() int {
	return p.maxChars
}

// Run detects the language of the first sentence of s.
// When nothing survives extraction (e.g. s is a single quoted phrase) the whole text is used.
func (p *Pipeline) Run(s string) (Result, error) {
	normalized, err := p.normalizer.Normalize(s)
	if err != nil {
		return Result{}, err
	}
	fragment, err := ExtractFirstSentence(normalized, p.maxChars)
	if err != nil {
		return Result{}, err
	}
	if fragment == "" {
		fragment = normalized
	}
	return Result{Language: DetectLanguage(fragment), Fragment: fragment}, nil
}

// RunRaw detects the language of the whole normalized text without extraction.
func (p *Pipeline) RunRaw(s string) (Result, error) {
	normalized, err := p.normalizer.Normalize(s)
	if err != nil {
		return Result{}, err
	}
	return Result{Language: DetectLanguage(normalized), Fragment: normalized}, nil
}
