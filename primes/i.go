package primes

const (
	DefaultBound int64 = 999_999
	// MaxBound keeps the sieve's candidate slice in the hundreds of megabytes.
	MaxBound int64 = 50_000_000
)

type Config struct {
	// Bound is exclusive: the table holds every prime below it.
	Bound int64 `yaml:"bound" json:"bound"`
	Trace bool  `yaml:"trace" json:"trace"`
}

func (cfg Config) normalize() Config {
	if cfg.Bound <= 2 {
		cfg.Bound = DefaultBound
	}

	if cfg.Bound > MaxBound {
		cfg.Bound = MaxBound
	}

	return cfg
}
