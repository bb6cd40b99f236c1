package reservation

import "errors"

var (
	ErrCapacityExceeded = errors.New("no availability for that date and time")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidInput     = errors.New("invalid reservation input")
)
