package engine

import (
	"fmt"
	"strings"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libprime/factor"
	"github.com/sgostarter/libprime/fraction"
	"github.com/sgostarter/libprime/primes"
	"github.com/sgostarter/libprime/verify"
)

type Kind int

const (
	KindFactorization Kind = iota
	KindFraction
)

func (k Kind) String() string {
	if k == KindFraction {
		return "fraction"
	}

	return "factorization"
}

type Report struct {
	ID        uint64
	Input     string
	Kind      Kind
	Exponents map[int64]int64
	Residual  int64
	Fraction  fraction.Fraction
	Text      string
}

// NewEngine builds the prime table and runs self verification on it; nothing is served
// from an engine that fails it.
func NewEngine(cfg Config, logger l.Wrapper) (*Engine, error) {
	return NewEngineWithCache(cfg, primes.DefaultCache, logger)
}

func NewEngineWithCache(cfg Config, cache *primes.Cache, logger l.Wrapper) (*Engine, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "engineImpl"))

	if cache == nil {
		cache = primes.NewCache()
	}

	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}

	table := cache.Get(cfg.primesConfig(), logger)

	var failed []string

	for _, r := range verify.Run(table.Primes(), logger) {
		if !r.OK() {
			failed = append(failed, r.Name)
		}
	}

	if len(failed) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrSelfVerification, strings.Join(failed, ", "))
	}

	return &Engine{
		cfg:    cfg,
		logger: logger,
		table:  table,
	}, nil
}

type Engine struct {
	cfg    Config
	logger l.Wrapper
	table  *primes.Table
}

func (impl *Engine) Config() Config {
	return impl.cfg
}

func (impl *Engine) Primes() *primes.Table {
	return impl.table
}

func (impl *Engine) Factorize(input string) (map[int64]int64, error) {
	return factor.FactorizeNumber(input, impl.table.Primes(),
		factor.LoggerOption(impl.logger), factor.TraceOption(impl.cfg.Trace), factor.StrictOption(impl.cfg.Strict))
}

func (impl *Engine) Reduce(input string) (fraction.Fraction, error) {
	return fraction.DecimalToFraction(input, impl.table.Primes(),
		fraction.LoggerOption(impl.logger), fraction.TraceOption(impl.cfg.Trace))
}

// Evaluate reduces input to a fraction when it has a decimal point and factorizes it otherwise.
func (impl *Engine) Evaluate(input string) (r *Report, err error) {
	input = strings.TrimSpace(input)

	r = &Report{
		ID:    snowflake.ID(),
		Input: input,
	}

	logger := impl.logger.WithFields(l.UInt64Field("reportID", r.ID))

	if strings.Contains(input, ".") {
		r.Kind = KindFraction

		r.Fraction, err = impl.Reduce(input)
		if err != nil {
			return
		}

		r.Text = fraction.Render(input, r.Fraction)
	} else {
		r.Kind = KindFactorization

		r.Exponents, err = impl.Factorize(input)
		if err != nil {
			return
		}

		n, _ := factor.ParseInteger(input)

		r.Residual = factor.Residual(n, r.Exponents)
		r.Text = input + " = " + factor.FormatFactorization(r.Exponents, r.Residual)
	}

	if impl.cfg.Trace {
		logger.WithFields(l.StringField("kind", r.Kind.String()), l.StringField("text", r.Text)).Debug("evaluated")
	}

	return
}
