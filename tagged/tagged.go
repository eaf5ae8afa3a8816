// Package tagged provides a zero-cost phantom-typed wrapper that attaches a
// compile-time-only tag to a value. Two values with the same runtime
// representation (say, two ints) cannot be interchanged when their tags
// differ: a Value[UserID, int] does not type-check where a
// Value[CommentID, int] is expected.
//
// The tag is a phantom type parameter. It participates in static
// type-checking only and is never stored, compared, hashed, or serialized;
// a Value[Tag, A] holds exactly one field of type A.
//
// Tags are ordinary Go types used purely as markers, typically empty structs:
//
//	type UserID struct{}
//	type CommentID struct{}
//
//	user := tagged.Tag[UserID](42)
//	comment := tagged.Tag[CommentID](42)
//	// user and comment are now distinct types despite identical contents.
//
// Operations that change the wrapped value's type, or that constrain two
// arguments to share one tag, are package-level functions because Go methods
// cannot introduce type parameters. Binary combinators (Ap, AndMap, Map2,
// Bind, AndThen) declare a single Tag parameter for all their tagged
// arguments, so mixing tags is a compile error, never a runtime check.
package tagged

import (
	"fmt"
)

// Value wraps a single value of type A with the phantom tag type Tag.
// The tag has no runtime footprint: the struct layout is identical to a bare A.
// Value is an immutable value type; every combinator returns a new instance.
type Value[Tag any, A any] struct {
	value A
}

// Tag wraps a value with the given tag. The tag type is supplied explicitly
// (or inferred from the expected type at the call site) and is not validated;
// any type can serve as a tag.
func Tag[Tag any, A any](value A) Value[Tag, A] {
	return Value[Tag, A]{value: value}
}

// Untag returns the wrapped value, discarding the tag.
// Untag is the left inverse of Tag: tagged.Tag[T](v).Untag() == v.
func (t Value[Tag, A]) Untag() A {
	return t.value
}

// String returns the string representation of the wrapped value.
// The tag does not appear in the output.
func (t Value[Tag, A]) String() string {
	return fmt.Sprintf("%v", t.value)
}

// Equal compares the wrapped values of two tagged values with the same tag,
// using the provided equality function. The tag itself carries no data and
// does not take part in the comparison.
func (t Value[Tag, A]) Equal(other Value[Tag, A], eq func(A, A) bool) bool {
	return eq(t.value, other.value)
}

// Map applies f to the wrapped value, preserving the tag.
//
// Map obeys the functor laws: mapping the identity function is the identity,
// and mapping a composition equals composing two maps.
func Map[Tag any, A any, B any](f func(A) B, t Value[Tag, A]) Value[Tag, B] {
	return Value[Tag, B]{value: f(t.value)}
}

// Ap applies a tagged function to a tagged argument. Both must carry the same
// tag; the result carries it too.
func Ap[Tag any, A any, B any](fn Value[Tag, func(A) B], arg Value[Tag, A]) Value[Tag, B] {
	return Value[Tag, B]{value: fn.value(arg.value)}
}

// AndMap is Ap with mirrored argument order, for pipeline-style call sites:
// the argument first, the tagged function second.
func AndMap[Tag any, A any, B any](arg Value[Tag, A], fn Value[Tag, func(A) B]) Value[Tag, B] {
	return Ap(fn, arg)
}

// Map2 combines two tagged values sharing one tag with a binary function.
// Map2(f, a, b) is equivalent to Ap(Map(curry(f), a), b).
func Map2[Tag any, A any, B any, C any](f func(A, B) C, a Value[Tag, A], b Value[Tag, B]) Value[Tag, C] {
	return Value[Tag, C]{value: f(a.value, b.value)}
}

// Bind applies a function producing a tagged value to the contents of a
// tagged value with the same tag. It lets a generic function pin down which
// tag its result carries instead of inheriting an ambient type parameter.
func Bind[Tag any, A any, B any](f func(A) Value[Tag, B], t Value[Tag, A]) Value[Tag, B] {
	return f(t.value)
}

// AndThen is Bind with mirrored argument order: the tagged value first, the
// continuation second.
func AndThen[Tag any, A any, B any](t Value[Tag, A], f func(A) Value[Tag, B]) Value[Tag, B] {
	return f(t.value)
}

// Extend builds a new tagged value from a function that consumes the whole
// wrapper rather than just its contents. Extend(f, t) is equivalent to
// Tag[T](f(t)).
func Extend[Tag any, A any, B any](f func(Value[Tag, A]) B, t Value[Tag, A]) Value[Tag, B] {
	return Value[Tag, B]{value: f(t)}
}

// Retag reinterprets the tag of a value without touching the wrapped value.
//
// Retag is the single escape hatch that defeats the tag-safety guarantee.
// It is deliberately a named, explicit operation so that every
// reinterpretation is visible and auditable at its call site; nothing else
// in this package converts between tags.
//
// The new tag is supplied as the first type parameter so the remaining
// parameters can be inferred:
//
//	comment := tagged.Retag[CommentID](user)
func Retag[NewTag any, OldTag any, A any](t Value[OldTag, A]) Value[NewTag, A] {
	return Value[NewTag, A]{value: t.value}
}
