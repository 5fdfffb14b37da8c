package factor

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var (
	ErrInvalidInteger          = fmt.Errorf("invalid integer: %w", commerr.ErrInvalidArgument)
	ErrOutOfRange              = fmt.Errorf("integer out of range: %w", commerr.ErrOutOfRange)
	ErrZeroValue               = fmt.Errorf("zero has no prime factorization: %w", commerr.ErrInvalidArgument)
	ErrIncompleteFactorization = fmt.Errorf("prime factor beyond sieve bound: %w", commerr.ErrOutOfRange)
)
