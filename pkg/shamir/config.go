package shamir

import (
	"os"

	"github.com/duskfall-labs/threshold/pkg/share"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the three parameters that govern a split/combine operation.
type Config struct {
	// SharesToCreate is N, the number of shares Split produces.
	SharesToCreate int `yaml:"shares_to_create"`
	// Threshold is K, the number of shares Combine needs to reconstruct.
	Threshold int `yaml:"threshold"`
	// MaxSecretSize is the upper bound on an accepted secret's length.
	MaxSecretSize int `yaml:"max_secret_size"`
}

// DefaultConfig returns the documented defaults: N=5, K=3, S_max=1024.
func DefaultConfig() Config {
	return Config{
		SharesToCreate: 5,
		Threshold:      3,
		MaxSecretSize:  1024,
	}
}

// Validate checks the invariants 2 <= K <= N <= MAX_SHARES and
// 1 <= MaxSecretSize.
func (c Config) Validate() error {
	switch {
	case c.SharesToCreate < 2, c.SharesToCreate > share.MaxID:
		return errors.Wrapf(ErrInvalidConfig, "shares_to_create must be in [2, %d], got %d", share.MaxID, c.SharesToCreate)
	case c.Threshold < 2:
		return errors.Wrapf(ErrInvalidConfig, "threshold must be at least 2, got %d", c.Threshold)
	case c.Threshold > c.SharesToCreate:
		return errors.Wrapf(ErrInvalidConfig, "threshold (%d) must not exceed shares_to_create (%d)", c.Threshold, c.SharesToCreate)
	case c.MaxSecretSize < 1:
		return errors.Wrapf(ErrInvalidConfig, "max_secret_size must be at least 1, got %d", c.MaxSecretSize)
	}
	return nil
}

// LoadConfig reads a Config from a YAML file at path. This is a convenience
// load path for callers who prefer to keep split/combine parameters on disk
// rather than construct a Config literal -- Split and Combine themselves
// never touch the filesystem.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %q", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %q", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
