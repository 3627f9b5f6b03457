// Package optional provides an explicit optional value type.
package optional

// Value holds a value of type T that may be absent.
// The zero Value is absent.
type Value[T any] struct {
	value T
	ok    bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// NonEmpty returns Some(s) for a non-empty string and None otherwise.
func NonEmpty(s string) Value[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.ok
}

// IsPresent reports whether a value is held.
func (v Value[T]) IsPresent() bool {
	return v.ok
}

// OrElse returns the held value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if v.ok {
		return v.value
	}
	return fallback
}

// Or returns v when present, otherwise other.
func (v Value[T]) Or(other Value[T]) Value[T] {
	if v.ok {
		return v
	}
	return other
}
