// Package taggedset provides an immutable ordered set whose elements carry a
// phantom tag. It is the key-only counterpart of
// [github.com/amp-labs/tagged/taggedmap]: the same underlying ordered
// container with no value component. Elements enter and leave as
// tagged.Value[Tag, K]; the tag is stripped before touching the container
// and re-applied on the way out, so it is never stored and has no effect on
// ordering or deduplication.
//
// Iteration always ascends by element order. Every operation returns a new,
// independent set; sets may be shared freely across goroutines without
// locking.
package taggedset

import (
	"iter"

	"github.com/amp-labs/tagged/internal/rbtree"
	"github.com/amp-labs/tagged/sortable"
	"github.com/amp-labs/tagged/tagged"
)

// Set is an immutable ordered collection of unique elements tagged with Tag.
// The zero value is the empty set.
type Set[Tag any, K sortable.Sortable[K]] struct {
	tree rbtree.Tree[K, struct{}]
}

// Empty returns a set with no elements.
func Empty[Tag any, K sortable.Sortable[K]]() Set[Tag, K] {
	return Set[Tag, K]{}
}

// Singleton returns a set containing the single given element.
func Singleton[Tag any, K sortable.Sortable[K]](element tagged.Value[Tag, K]) Set[Tag, K] {
	return Set[Tag, K]{tree: rbtree.Empty[K, struct{}]().Insert(element.Untag(), struct{}{})}
}

// Insert returns a set containing the element. Inserting an element that is
// already present returns an equal set.
func (s Set[Tag, K]) Insert(element tagged.Value[Tag, K]) Set[Tag, K] {
	return Set[Tag, K]{tree: s.tree.Insert(element.Untag(), struct{}{})}
}

// Remove returns a set without the element. Removing an absent element is a
// no-op, not an error.
func (s Set[Tag, K]) Remove(element tagged.Value[Tag, K]) Set[Tag, K] {
	return Set[Tag, K]{tree: s.tree.Remove(element.Untag())}
}

// IsEmpty returns true if the set contains no elements.
func (s Set[Tag, K]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Member returns true if the element exists in the set.
func (s Set[Tag, K]) Member(element tagged.Value[Tag, K]) bool {
	return s.tree.Member(element.Untag())
}

// Size returns the number of elements in the set.
func (s Set[Tag, K]) Size() int {
	return s.tree.Len()
}

// Seq returns an iterator over the set's elements in ascending order,
// tagged. Compatible with range-over-func syntax:
// for e := range s.Seq() { ... }.
func (s Set[Tag, K]) Seq() iter.Seq[tagged.Value[Tag, K]] {
	return func(yield func(tagged.Value[Tag, K]) bool) {
		for element := range s.tree.Seq() {
			if !yield(tagged.Tag[Tag](element)) {
				return
			}
		}
	}
}

// SeqDesc returns an iterator over the set's elements in descending order,
// tagged.
func (s Set[Tag, K]) SeqDesc() iter.Seq[tagged.Value[Tag, K]] {
	return func(yield func(tagged.Value[Tag, K]) bool) {
		for element := range s.tree.SeqDesc() {
			if !yield(tagged.Tag[Tag](element)) {
				return
			}
		}
	}
}

// ToList returns the set's elements in ascending order, tagged.
func (s Set[Tag, K]) ToList() []tagged.Value[Tag, K] {
	elements := make([]tagged.Value[Tag, K], 0, s.Size())

	for element := range s.Seq() {
		elements = append(elements, element)
	}

	return elements
}

// ToUntaggedList returns the set's elements in ascending order, without tags.
func (s Set[Tag, K]) ToUntaggedList() []K {
	elements := make([]K, 0, s.Size())

	for element := range s.tree.Seq() {
		elements = append(elements, element)
	}

	return elements
}

// Filter returns a set containing only the elements for which the predicate
// returns true.
func (s Set[Tag, K]) Filter(predicate func(element tagged.Value[Tag, K]) bool) Set[Tag, K] {
	out := rbtree.Empty[K, struct{}]()

	for element := range s.tree.Seq() {
		if predicate(tagged.Tag[Tag](element)) {
			out = out.Insert(element, struct{}{})
		}
	}

	return Set[Tag, K]{tree: out}
}

// Partition splits the set into two: the first contains the elements for
// which the predicate returns true, the second the rest.
func (s Set[Tag, K]) Partition(
	predicate func(element tagged.Value[Tag, K]) bool,
) (matching, rest Set[Tag, K]) {
	matchTree := rbtree.Empty[K, struct{}]()
	restTree := rbtree.Empty[K, struct{}]()

	for element := range s.tree.Seq() {
		if predicate(tagged.Tag[Tag](element)) {
			matchTree = matchTree.Insert(element, struct{}{})
		} else {
			restTree = restTree.Insert(element, struct{}{})
		}
	}

	return Set[Tag, K]{tree: matchTree}, Set[Tag, K]{tree: restTree}
}

// Union returns the set-theoretic union of the two sets.
func (s Set[Tag, K]) Union(other Set[Tag, K]) Set[Tag, K] {
	out := other.tree

	for element := range s.tree.Seq() {
		out = out.Insert(element, struct{}{})
	}

	return Set[Tag, K]{tree: out}
}

// Intersect returns the set-theoretic intersection of the two sets.
func (s Set[Tag, K]) Intersect(other Set[Tag, K]) Set[Tag, K] {
	out := rbtree.Empty[K, struct{}]()

	for element := range s.tree.Seq() {
		if other.tree.Member(element) {
			out = out.Insert(element, struct{}{})
		}
	}

	return Set[Tag, K]{tree: out}
}

// Diff returns the elements of the receiver that are absent from other.
func (s Set[Tag, K]) Diff(other Set[Tag, K]) Set[Tag, K] {
	out := rbtree.Empty[K, struct{}]()

	for element := range s.tree.Seq() {
		if !other.tree.Member(element) {
			out = out.Insert(element, struct{}{})
		}
	}

	return Set[Tag, K]{tree: out}
}

// Equal compares two sets element by element using the elements' Equals
// method. Internal tree shape is not observable and never affects the
// result.
func (s Set[Tag, K]) Equal(other Set[Tag, K]) bool {
	if s.Size() != other.Size() {
		return false
	}

	mine := s.ToUntaggedList()
	theirs := other.ToUntaggedList()

	for i := range mine {
		if !mine[i].Equals(theirs[i]) {
			return false
		}
	}

	return true
}

// FromList builds a set from a slice of tagged elements. Duplicates collapse
// per set semantics.
func FromList[Tag any, K sortable.Sortable[K]](elements []tagged.Value[Tag, K]) Set[Tag, K] {
	out := rbtree.Empty[K, struct{}]()

	for _, element := range elements {
		out = out.Insert(element.Untag(), struct{}{})
	}

	return Set[Tag, K]{tree: out}
}

// FromUntaggedList builds a set from a slice of bare elements, tagging each
// with Tag. Duplicates collapse per set semantics.
func FromUntaggedList[Tag any, K sortable.Sortable[K]](elements []K) Set[Tag, K] {
	out := rbtree.Empty[K, struct{}]()

	for _, element := range elements {
		out = out.Insert(element, struct{}{})
	}

	return Set[Tag, K]{tree: out}
}

// Map transforms every element with f, which must preserve the tag but may
// change the element type. Duplicates produced by a non-injective mapping
// collapse per set semantics, so the result may be smaller than the input.
func Map[Tag any, K sortable.Sortable[K], B sortable.Sortable[B]](
	f func(element tagged.Value[Tag, K]) tagged.Value[Tag, B], s Set[Tag, K],
) Set[Tag, B] {
	out := rbtree.Empty[B, struct{}]()

	for element := range s.tree.Seq() {
		out = out.Insert(f(tagged.Tag[Tag](element)).Untag(), struct{}{})
	}

	return Set[Tag, B]{tree: out}
}

// Foldl folds over the elements in ascending order. The fold is total: every
// element is visited, with no early exit.
func Foldl[Tag any, K sortable.Sortable[K], Acc any](
	f func(element tagged.Value[Tag, K], acc Acc) Acc, seed Acc, s Set[Tag, K],
) Acc {
	acc := seed

	for element := range s.tree.Seq() {
		acc = f(tagged.Tag[Tag](element), acc)
	}

	return acc
}

// Foldr folds over the elements in descending order.
func Foldr[Tag any, K sortable.Sortable[K], Acc any](
	f func(element tagged.Value[Tag, K], acc Acc) Acc, seed Acc, s Set[Tag, K],
) Acc {
	acc := seed

	for element := range s.tree.SeqDesc() {
		acc = f(tagged.Tag[Tag](element), acc)
	}

	return acc
}
