// Package results provides the success/failure split returned by service
// logic functions. A failure carries a domain error the caller surfaces
// as-is; an infrastructure error is returned separately and aborts the
// surrounding transaction.
package results

// OperationResult holds either a success payload or a failure payload.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// SuccessResult wraps a success payload.
func SuccessResult[S any, F any](success S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &success}
}

// FailureResult wraps a failure payload.
func FailureResult[S any, F any](failure F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &failure}
}

// IsSuccess reports whether the result carries a success payload.
func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

// IsFailure reports whether the result carries a failure payload.
func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }
