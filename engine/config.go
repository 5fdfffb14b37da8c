package engine

import (
	"fmt"

	"github.com/sgostarter/libprime/primes"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bound  int64 `yaml:"bound" json:"bound"`
	Trace  bool  `yaml:"trace" json:"trace"`
	Strict bool  `yaml:"strict" json:"strict"`
}

func (cfg *Config) fillDefaults() error {
	if cfg.Bound <= 2 {
		cfg.Bound = primes.DefaultBound
	}

	if cfg.Bound > primes.MaxBound {
		return fmt.Errorf("%w: %d, max %d", ErrBoundTooLarge, cfg.Bound, primes.MaxBound)
	}

	return nil
}

func (cfg *Config) primesConfig() primes.Config {
	return primes.Config{
		Bound: cfg.Bound,
		Trace: cfg.Trace,
	}
}

func LoadConfig(d []byte) (cfg Config, err error) {
	err = yaml.Unmarshal(d, &cfg)
	if err != nil {
		return
	}

	err = cfg.fillDefaults()

	return
}
