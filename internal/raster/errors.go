package raster

import "fmt"

// Kind identifies one of the two error categories the pipeline surfaces to
// callers at its outer boundary. A third kind, StrategyFailed, exists only
// inside the strategy runner and never reaches here.
type Kind string

const (
	// InvalidInput covers inconsistent raster dimensions/pixel lengths and
	// option values outside their permitted range.
	InvalidInput Kind = "InvalidInput"

	// OutOfMemory covers an intermediate buffer allocation that could not
	// be satisfied.
	OutOfMemory Kind = "OutOfMemory"
)

// Error is the error type returned across the detection pipeline's
// boundary. Kind lets callers distinguish the two surfaced failure modes
// without string matching.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// InvalidInputf builds an InvalidInput error with a formatted message.
func InvalidInputf(format string, args ...interface{}) error {
	return &Error{Kind: InvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// OutOfMemoryf builds an OutOfMemory error with a formatted message.
func OutOfMemoryf(format string, args ...interface{}) error {
	return &Error{Kind: OutOfMemory, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
