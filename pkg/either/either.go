// Package either provides a minimal Either type: a value which holds either a
// successful result or an error, but never both.
package either

// Either holds either a successful value of type T or an error.
type Either[T any] struct {
	value T
	err   error
}

// Success wraps a successful value.
func Success[T any](value T) Either[T] {
	return Either[T]{value: value}
}

// Error wraps an error. The value is the zero value of T.
func Error[T any](err error) Either[T] {
	return Either[T]{err: err}
}

// ValueOrError returns the wrapped value and error; exactly one is meaningful.
func (m Either[T]) ValueOrError() (T, error) {
	return m.value, m.err
}

func (m Either[T]) IsSuccess() bool {
	return m.err == nil
}

func (m Either[T]) IsError() bool {
	return m.err != nil
}
