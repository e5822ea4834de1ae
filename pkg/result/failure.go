// Package result provides the two-variant outcome channel used by every
// fallible operation in the app: a Result carries either a classified
// Failure or a success payload, never both, and is consumed by exhaustive
// matching instead of unchecked unwrapping.
package result

import "fmt"

// Kind identifies the category of a Failure. The set is closed: adding a
// kind requires updating every switch that branches on it.
type Kind int

const (
	// KindUnexpected is any error not classified by the other kinds,
	// including panics recovered at a collaborator boundary. It is the
	// zero value so that zero-valued failures degrade safely.
	KindUnexpected Kind = iota
	// KindServer indicates a non-success response from a remote collaborator.
	KindServer
	// KindCache indicates a local persistence read/write fault.
	KindCache
	// KindNetwork indicates the remote collaborator is offline or unreachable.
	KindNetwork
	// KindValidation indicates caller-supplied input failed a precondition.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindCache:
		return "cache"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// defaultMessage returns the human-readable default for a kind.
func (k Kind) defaultMessage() string {
	switch k {
	case KindServer:
		return "Server error occurred"
	case KindCache:
		return "Cache error occurred"
	case KindNetwork:
		return "Network error occurred"
	case KindValidation:
		return "Validation error occurred"
	default:
		return "Unexpected error occurred"
	}
}

// Failure is an immutable, classified error value. Construct one with
// NewFailure or a kind-specific constructor; the zero value is an
// unexpected failure with the default message.
type Failure struct {
	kind    Kind
	message string
}

// NewFailure creates a Failure of the given kind. An empty message
// resolves to the kind's default message.
func NewFailure(kind Kind, message string) Failure {
	return Failure{kind: kind, message: message}
}

// ServerFailure creates a KindServer failure.
func ServerFailure(message string) Failure { return NewFailure(KindServer, message) }

// CacheFailure creates a KindCache failure.
func CacheFailure(message string) Failure { return NewFailure(KindCache, message) }

// NetworkFailure creates a KindNetwork failure.
func NetworkFailure(message string) Failure { return NewFailure(KindNetwork, message) }

// ValidationFailure creates a KindValidation failure.
func ValidationFailure(message string) Failure { return NewFailure(KindValidation, message) }

// UnexpectedFailure creates a KindUnexpected failure.
func UnexpectedFailure(message string) Failure { return NewFailure(KindUnexpected, message) }

// Kind returns the failure's category.
func (f Failure) Kind() Kind { return f.kind }

// Message returns the human-readable message, falling back to the kind's
// default when none was supplied at construction.
func (f Failure) Message() string {
	if f.message == "" {
		return f.kind.defaultMessage()
	}
	return f.message
}

// Error implements error so failures can be handed to logging sinks.
// Failures still travel between layers as Result values, not as errors.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.kind, f.Message())
}
