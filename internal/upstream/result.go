package upstream

// Result is the success/failure envelope returned by create and update
// operations. Exactly one variant is populated: a successful result
// carries the entity and a failed one carries only the upstream error
// message.
type Result[T any] struct {
	value   T
	message string
	ok      bool
}

// Success wraps a value in a successful result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure builds a failed result carrying the upstream message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// OK reports whether the result is the success variant.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the wrapped entity. Only meaningful when OK is true.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the failure message. Empty on success.
func (r Result[T]) Message() string {
	return r.message
}
