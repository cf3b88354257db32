package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tsingjyujing/langsel/text"
	"gopkg.in/yaml.v3"
)

type Envelope struct {
	Server    Server    `yaml:"server"`
	Detection Detection `yaml:"detection"`
}

type Server struct {
	Address string   `yaml:"address"`
	Tokens  []string `yaml:"tokens"`
}

type Detection struct {
	// MaxChars bounds the fragment extracted from each query.
	MaxChars int `yaml:"max_chars"`
	// Normalization is one of "none", "nfc", "nfkc".
	Normalization string `yaml:"normalization"`
}

func Default() *Envelope {
	return &Envelope{
		Server: Server{
			Address: ":8080",
		},
		Detection: Detection{
			MaxChars:      text.DefaultMaxChars,
			Normalization: text.NormalizationNFC,
		},
	}
}

// LoadConfigFromFile parses a YAML config file on top of the defaults.
func LoadConfigFromFile(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	envelope := Default()
	if err := yaml.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return envelope, nil
}

// Override applies values set through viper (flags, LANGSEL_* environment) on top of the envelope.
func (e *Envelope) Override(v *viper.Viper) {
	v.SetDefault("server.address", e.Server.Address)
	v.SetDefault("server.tokens", e.Server.Tokens)
	v.SetDefault("detection.max_chars", e.Detection.MaxChars)
	v.SetDefault("detection.normalization", e.Detection.Normalization)

	e.Server.Address = v.GetString("server.address")
	e.Server.Tokens = v.GetStringSlice("server.tokens")
	e.Detection.MaxChars = v.GetInt("detection.max_chars")
	e.Detection.Normalization = v.GetString("detection.normalization")
}

func (e *Envelope) Validate() error {
	if strings.TrimSpace(e.Server.Address) == "" {
		return fmt.Errorf("%w: server.address is empty", text.ErrInvalidInput)
	}
	if e.Detection.MaxChars <= 0 {
		return fmt.Errorf("%w: detection.max_chars must be positive, got %d", text.ErrInvalidInput, e.Detection.MaxChars)
	}
	if _, err := text.NewUnicodeNormalizer(e.Detection.Normalization); err != nil {
		return err
	}
	return nil
}

// NewPipeline builds the detection pipeline described by the envelope.
func (e *Envelope) NewPipeline() (*text.Pipeline, error) {
	normalizer, err := text.NewUnicodeNormalizer(e.Detection.Normalization)
	if err != nil {
		return nil, err
	}
	return text.NewPipeline(normalizer, e.Detection.MaxChars)
}
