package fraction

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sgostarter/libprime/factor"
)

// Parse turns a decimal such as 2.25 or .12 into an integer fraction over a power of ten,
// 225/100 and 12/100, without reducing it.
func Parse(input string) (numerator, denominator int64, err error) {
	s := strings.TrimSpace(input)

	pos := strings.IndexByte(s, '.')
	if pos < 0 {
		pos = len(s)
	} else if len(s)-pos > MaxFractionDigits+1 {
		err = fmt.Errorf("%w: %q", ErrTooLong, input)

		return
	}

	var m int64

	if pos > 0 {
		m, err = parseDigits(s[:pos], input)
		if err != nil {
			return
		}
	}

	denominator = 1

	if pos < len(s) {
		digits := s[pos+1:]
		if digits == "" {
			err = fmt.Errorf("%w: %q has no digits after the point", factor.ErrInvalidInteger, input)

			return
		}

		numerator, err = parseDigits(digits, input)
		if err != nil {
			return
		}

		for range digits {
			denominator *= 10
		}
	}

	if m > (math.MaxInt64-numerator)/denominator {
		err = fmt.Errorf("%w: %q", factor.ErrOutOfRange, input)

		return
	}

	numerator += denominator * m

	if numerator == 0 {
		err = factor.ErrZeroValue
	}

	return
}

func parseDigits(s, input string) (n int64, err error) {
	if !factor.IsDigits(s) {
		err = fmt.Errorf("%w: %q", factor.ErrInvalidInteger, input)

		return
	}

	n, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = fmt.Errorf("%w: %q does not fit in 64 bits", factor.ErrInvalidInteger, input)
		} else {
			err = fmt.Errorf("%w: %q", factor.ErrInvalidInteger, input)
		}
	}

	return
}
