package factor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInteger accepts a run of decimal digits naming a positive value below math.MaxInt64.
func ParseInteger(input string) (n int64, err error) {
	s := strings.TrimSpace(input)

	if s == "" || !IsDigits(s) {
		err = fmt.Errorf("%w: %q", ErrInvalidInteger, input)

		return
	}

	n, err = strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = fmt.Errorf("%w: %q does not fit in 64 bits", ErrInvalidInteger, input)
		} else {
			err = fmt.Errorf("%w: %q", ErrInvalidInteger, input)
		}

		return
	}

	if n > math.MaxInt64-1 {
		err = fmt.Errorf("%w: %d", ErrOutOfRange, n)

		return
	}

	if n == 0 {
		err = ErrZeroValue
	}

	return
}

func IsDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
