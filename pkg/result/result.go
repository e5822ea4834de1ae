package result

// Result holds exactly one of a Failure or a success payload of type T.
//
// Use the constructor functions (Success, Fail) to create Result values
// rather than constructing them directly. The zero value folds to the
// failure branch carrying a zero Failure, so a forgotten initialization
// can never masquerade as success.
type Result[T any] struct {
	value   T
	failure Failure
	ok      bool
}

// Success returns a Result carrying the given payload.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a Result carrying the given failure.
func Fail[T any](f Failure) Result[T] {
	return Result[T]{failure: f}
}

// FailKind returns a failing Result of the given kind with its default message.
func FailKind[T any](kind Kind) Result[T] {
	return Fail[T](NewFailure(kind, ""))
}

// Match consumes the result, invoking exactly one of the two handlers.
// Both handlers are required; passing nil for either is a programming
// error and panics.
func (r Result[T]) Match(onFailure func(Failure), onSuccess func(T)) {
	if onFailure == nil || onSuccess == nil {
		panic("result: Match requires both handlers")
	}
	if r.ok {
		onSuccess(r.value)
		return
	}
	onFailure(r.failure)
}

// Fold consumes a result, mapping either variant to a value of type R.
// Both handlers are required; passing nil for either panics.
func Fold[T, R any](r Result[T], onFailure func(Failure) R, onSuccess func(T) R) R {
	if onFailure == nil || onSuccess == nil {
		panic("result: Fold requires both handlers")
	}
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.failure)
}

// Map transforms the success payload, passing failures through unchanged.
func Map[T, U any](r Result[T], transform func(T) U) Result[U] {
	if !r.ok {
		return Fail[U](r.failure)
	}
	return Success(transform(r.value))
}

// IsSuccess reports whether the result holds the success variant.
func (r Result[T]) IsSuccess() bool { return r.ok }

// IsFailure reports whether the result holds the failure variant.
func (r Result[T]) IsFailure() bool { return !r.ok }

// Guard runs op at a collaborator boundary and translates its outcome into
// a Result. Returned errors are mapped through classify; recovered panics
// become unexpected failures. No fault escapes the call.
func Guard[T any](classify func(error) Failure, op func() (T, error)) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Fail[T](UnexpectedFailure(""))
		}
	}()
	v, err := op()
	if err != nil {
		if classify == nil {
			return Fail[T](UnexpectedFailure(err.Error()))
		}
		return Fail[T](classify(err))
	}
	return Success(v)
}
