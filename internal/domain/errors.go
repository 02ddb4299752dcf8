package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the upstream error taxonomy. Provider clients translate
// transport/HTTP failures into these; the transport boundary maps each member
// to an HTTP status so a 404 and a 500 are never flattened together.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrRateLimited = errors.New("rate limited by upstream provider")
	ErrTimeout     = errors.New("upstream request timed out")
)

// UpstreamError is any other non-2xx upstream response. It carries the
// upstream status code for passthrough diagnostics.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream provider returned status %d", e.Status)
}

// ValidationError is a client error (bad input), e.g. an unrecognized
// season name. It must surface as a 4xx, never a server fault.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}
