package verify

import "errors"

var (
	ErrCheckFailed = errors.New("check failed")
)
