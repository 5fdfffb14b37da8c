package verify

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libprime/factor"
	"github.com/sgostarter/libprime/fraction"
)

type Check struct {
	Name string
	Run  func(primes []int64) error
}

type Result struct {
	Name string
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Checks lists the known-answer tests run before the engine serves anything.
func Checks() []Check {
	return []Check{
		{Name: "factorize1230", Run: Factorize1230},
		{Name: "factorize1231", Run: Factorize1231},
		{Name: "reduceDecimal0.12", Run: ReduceDecimal012},
		{Name: "exponents13112", Run: Exponents13112},
	}
}

func Run(primes []int64, logger l.Wrapper) []Result {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "selfVerification"))

	checks := Checks()
	results := make([]Result, 0, len(checks))

	for _, check := range checks {
		err := check.Run(primes)
		if err != nil {
			logger.WithFields(l.StringField("check", check.Name), l.ErrorField(err)).Error("verification failed")
		}

		results = append(results, Result{Name: check.Name, Err: err})
	}

	return results
}

// Verify runs every check and reports whether all of them passed.
func Verify(primes []int64, logger l.Wrapper) bool {
	ok := true

	for _, r := range Run(primes, logger) {
		if !r.OK() {
			ok = false
		}
	}

	return ok
}

func Factorize1230(primes []int64) error {
	return checkFactors(1230, 4, primes)
}

func Factorize1231(primes []int64) error {
	return checkFactors(1231, 1, primes)
}

func checkFactors(n int64, count int, primes []int64) error {
	factors := factor.DivideWithPrimes(n, primes)
	if len(factors) != count {
		return fmt.Errorf("%w: invalid number of primes %d: %d, want %d", ErrCheckFailed, n, len(factors), count)
	}

	if p := factor.CalculateProduct(factors); p != n {
		return fmt.Errorf("%w: invalid factors %d: product %d", ErrCheckFailed, n, p)
	}

	return nil
}

func ReduceDecimal012(primes []int64) error {
	f, err := fraction.DecimalToFraction("0.12", primes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}

	if f.Numerator != 3 {
		return fmt.Errorf("%w: invalid numerator %d", ErrCheckFailed, f.Numerator)
	}

	if f.Denominator != 25 {
		return fmt.Errorf("%w: invalid denominator %d", ErrCheckFailed, f.Denominator)
	}

	return nil
}

func Exponents13112(primes []int64) error {
	m, err := factor.FactorizeNumber("13112", primes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}

	if len(m) != 3 || m[2] != 3 || m[11] != 1 || m[149] != 1 {
		return fmt.Errorf("%w: factorizing 13112 gave %s", ErrCheckFailed, factor.FormatExponents(m))
	}

	return nil
}
