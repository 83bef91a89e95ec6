package issues

import "marvel-metadata/core/decoder"

// Config holds configuration for payload decoding.
type Config struct {
	// Workers is the number of payloads decoded in parallel.
	Workers int `mapstructure:"workers" default:"4"`
	// MaxDepth bounds pool search and reference resolution.
	MaxDepth int `mapstructure:"max_depth" default:"64"`
}

// DecoderOptions returns the decoder options for this configuration.
func (c Config) DecoderOptions() decoder.Options {
	return decoder.Options{MaxDepth: c.MaxDepth}
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return 1
	}
	return c.Workers
}
