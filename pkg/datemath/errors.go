package datemath

import "errors"

var (
	ErrUnknownExpression = errors.New("unknown date expression")
	ErrInvalidDate       = errors.New("invalid calendar date")
)
