package llm

import "errors"

var (
	// ErrDisabled indicates generation was requested while the subsystem
	// is disabled.
	ErrDisabled = errors.New("llm generation disabled")

	// ErrEmptyResponse indicates the model returned no choices.
	ErrEmptyResponse = errors.New("empty llm response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
