package orchestrator

import "errors"

var (
	ErrEmptyResponse    = errors.New("empty LLM response")
	ErrMaxStepsExceeded = errors.New("agent exceeded max steps")
)
