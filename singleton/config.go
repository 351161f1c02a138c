package singleton

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the Wrapper options.
//
// Nil fields are unset and keep the defaults:
//
//	thread_safe: true
//	strict: false
//	name: AppLogger
type Config struct {
	ThreadSafe *bool  `yaml:"thread_safe,omitempty"`
	Strict     *bool  `yaml:"strict,omitempty"`
	Name       string `yaml:"name,omitempty"`
}

// DefaultConfig returns the configuration used by Of.
func DefaultConfig() Config {
	threadSafe, strict := true, false
	return Config{ThreadSafe: &threadSafe, Strict: &strict}
}

// ParseConfig decodes a YAML document. An empty document yields a Config with
// every field unset.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig decodes a YAML document from r. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, &ConfigError{Reason: "decode yaml", Cause: err}
	}

	if strings.TrimSpace(cfg.Name) != cfg.Name {
		return Config{}, &ConfigError{Field: "name", Reason: "leading or trailing whitespace"}
	}
	return cfg, nil
}

// Options converts the set fields of c into Options, in field order.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 3)
	if c.ThreadSafe != nil {
		opts = append(opts, WithThreadSafe(*c.ThreadSafe))
	}
	if c.Strict != nil {
		opts = append(opts, WithStrict(*c.Strict))
	}
	if c.Name != "" {
		opts = append(opts, WithName(c.Name))
	}
	return opts
}
