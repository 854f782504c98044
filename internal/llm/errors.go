package llm

import "errors"

var (
	// ErrUnavailable indicates the AI endpoint was unreachable or replied
	// with a non-success status. Transport failures are never retried here.
	ErrUnavailable = errors.New("ai service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrInvalidOutput indicates the AI replied but the body violated the
	// expected output contract (unparseable JSON or missing fields).
	ErrInvalidOutput = errors.New("invalid ai response")
)
