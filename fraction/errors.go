package fraction

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

// MaxFractionDigits is the longest run of digits accepted after the decimal point.
const MaxFractionDigits = 7

var (
	ErrTooLong = fmt.Errorf("number has too many digits: %w", commerr.ErrOutOfRange)
)
