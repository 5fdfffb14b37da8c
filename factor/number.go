package factor

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

// FactorizeNumber parses input as a positive integer and returns its prime -> exponent map.
func FactorizeNumber(input string, primes []int64, opts ...Option) (m map[int64]int64, err error) {
	o := optionNew(opts...)
	logger := o.logger.WithFields(l.StringField(l.ClsKey, "factorizer"))

	n, err := ParseInteger(input)
	if err != nil {
		return
	}

	factors, residual := Decompose(n, primes)
	m = Exponents(factors)

	if o.trace {
		logger.WithFields(
			l.StringField("number", cast.ToString(n)),
			l.StringField("factors", FormatFactors(factors)),
			l.StringField("residual", cast.ToString(residual)),
		).Debug("divided with primes")
	}

	if residual != 1 && o.strict {
		err = fmt.Errorf("%w: %d leaves %d unfactored", ErrIncompleteFactorization, n, residual)
	}

	return
}
