package engine

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/cuserror"
)

var (
	ErrSelfVerification = cuserror.NewWithErrorMsg("self verification failed")
	ErrBoundTooLarge    = fmt.Errorf("prime table bound too large: %w", commerr.ErrOutOfRange)
)
