package analysis

import "fmt"

// ErrorKind classifies gateway failures
type ErrorKind string

// Gateway failure kinds. Every failure of the generative call collapses into
// one of these; callers recover all of them through the fallback recommender.
const (
	// KindTimeout indicates the call exceeded its deadline
	KindTimeout ErrorKind = "timeout"
	// KindUpstreamRejected indicates a non-success response or transport failure
	KindUpstreamRejected ErrorKind = "upstream_rejected"
	// KindMalformedResponse indicates the response body failed sanitization,
	// decoding, or structural validation
	KindMalformedResponse ErrorKind = "malformed_response"
)

// GatewayError represents a failed generative-service call. Status and Body
// carry upstream diagnostics and are for logs only, never for end users.
type GatewayError struct {
	Kind   ErrorKind
	Status int
	Body   string
	Cause  error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Kind == KindUpstreamRejected && e.Status > 0:
		return fmt.Sprintf("gateway error (%s): upstream returned status %d", e.Kind, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("gateway error (%s): %v", e.Kind, e.Cause)
	default:
		return fmt.Sprintf("gateway error (%s)", e.Kind)
	}
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
