package text

import (
	"errors"
	"testing"
)

func TestNewPipeline(t *testing.T) {
	if _, err := NewPipeline(nil, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NewPipeline(nil, 0) error = %v, want ErrInvalidInput", err)
	}
	p, err := NewPipeline(nil, DefaultMaxChars)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	if p.MaxChars() != DefaultMaxChars {
		t.Errorf("MaxChars() = %d, want %d", p.MaxChars(), DefaultMaxChars)
	}
}

func TestPipeline_Run(t *testing.T) {
	nfc, err := NewUnicodeNormalizer(NormalizationNFC)
	if err != nil {
		t.Fatalf("NewUnicodeNormalizer() error = %v", err)
	}
	p, err := NewPipeline(nfc, DefaultMaxChars)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}

	tests := []struct {
		name         string
		input        string
		wantLang     Language
		wantFragment string
	}{
		{
			name:         "english with quoted term",
			input:        "What is 'machine learning'? second sentence",
			wantLang:     English,
			wantFragment: "What is ?",
		},
		{
			name:         "decomposed vietnamese is composed first",
			input:        "Ho\u0323c ma\u0301y la\u0300 gi\u0300?",
			wantLang:     Vietnamese,
			wantFragment: "H\u1ecdc m\u00e1y l\u00e0 g\u00ec?",
		},
		{
			name:         "only a quote falls back to the whole text",
			input:        "「日本語」",
			wantLang:     Japanese,
			wantFragment: "「日本語」",
		},
		{
			name:         "empty",
			input:        "",
			wantLang:     Undetermined,
			wantFragment: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Run(tt.input)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if got.Language != tt.wantLang {
				t.Errorf("Run(%q).Language = %v, want %v", tt.input, got.Language, tt.wantLang)
			}
			if got.Fragment != tt.wantFragment {
				t.Errorf("Run(%q).Fragment = %q, want %q", tt.input, got.Fragment, tt.wantFragment)
			}
		})
	}
}

func TestPipeline_RunRaw(t *testing.T) {
	p, err := NewPipeline(nil, 5)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	got, err := p.RunRaw("Hello there. Xin chào, bạn khỏe không?")
	if err != nil {
		t.Fatalf("RunRaw() error = %v", err)
	}
	if got.Language != Vietnamese {
		t.Errorf("RunRaw().Language = %v, want %v", got.Language, Vietnamese)
	}
	if got.Fragment != "Hello there. Xin chào, bạn khỏe không?" {
		t.Errorf("RunRaw().Fragment = %q", got.Fragment)
	}
}
