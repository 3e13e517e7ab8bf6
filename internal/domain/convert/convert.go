// Package convert defines the capability a representation implements to turn
// itself into its kind's canonical value.
//
// Consumers take a type parameter constrained by Into or TryInto instead of a
// concrete representation, so new representations work with existing
// consumers unchanged:
//
//	func ProjectAngle[A convert.Into[angle.Radians]](origin Point, radius float64, a A) Point
//
// The capability is called once, up front; everything after works on the
// canonical value.
package convert

import (
	"errors"
	"fmt"
)

// ErrConversion wraps any failure of a representation to produce its
// canonical value. The underlying cause stays visible to errors.Is.
var ErrConversion = errors.New("conversion to canonical value failed")

// Into is implemented by representations whose conversion cannot fail.
type Into[K any] interface {
	Into() K
}

// TryInto is implemented by representations whose conversion can fail, such
// as integer quantities that may overflow.
type TryInto[K any] interface {
	TryInto() (K, error)
}

// Canonical converts r into its canonical value. A failure is wrapped with
// ErrConversion so callers can tell it apart from their own errors.
func Canonical[K any](r TryInto[K]) (K, error) {
	k, err := r.TryInto()
	if err != nil {
		var zero K
		return zero, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return k, nil
}

// Apply converts r and passes the canonical value to fn. Errors returned by fn
// are passed through untouched.
func Apply[K, T any](r TryInto[K], fn func(K) (T, error)) (T, error) {
	k, err := Canonical(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(k)
}

// TryIntoFunc adapts a function to the TryInto capability.
type TryIntoFunc[K any] func() (K, error)

// TryInto calls f.
func (f TryIntoFunc[K]) TryInto() (K, error) {
	return f()
}

// Lift adapts an infallible representation to TryInto, for consumers that
// accept both kinds.
func Lift[K any](r Into[K]) TryInto[K] {
	return TryIntoFunc[K](func() (K, error) {
		return r.Into(), nil
	})
}
