// Package taggedmap provides an immutable ordered map whose keys carry a
// phantom tag. It mirrors an ordinary ordered map operation-for-operation;
// the only difference is static: keys enter and leave as
// tagged.Value[Tag, K], so a key tagged for one domain cannot be used
// against a map keyed for another. Converting untagged-map code to this
// package is a mechanical, type-only edit.
//
// The tag is stripped before a key touches the underlying ordered container
// and re-applied to every key the map hands back. It is never stored;
// ordering, collision policy, and complexity are exactly those of the
// underlying tree: iteration ascends by key order, an insert over an
// existing key replaces its value, and lookups and updates are O(log n).
//
// Every operation returns a new, independent map and leaves its inputs
// untouched. Maps may be shared freely across goroutines without locking.
//
// Operations that change a result type (MapValues, Foldl, Foldr, Merge,
// FromList) are package-level functions because Go methods cannot introduce
// type parameters; everything else is a method on Map.
package taggedmap

import (
	"iter"

	"github.com/amp-labs/tagged/internal/rbtree"
	"github.com/amp-labs/tagged/optional"
	"github.com/amp-labs/tagged/sortable"
	"github.com/amp-labs/tagged/tagged"
)

// Map is an immutable ordered map from keys tagged with Tag to values of
// type V. The zero value is the empty map.
type Map[Tag any, K sortable.Sortable[K], V any] struct {
	tree rbtree.Tree[K, V]
}

// Empty returns a map with no entries.
func Empty[Tag any, K sortable.Sortable[K], V any]() Map[Tag, K, V] {
	return Map[Tag, K, V]{}
}

// Singleton returns a map containing the single given entry.
func Singleton[Tag any, K sortable.Sortable[K], V any](
	key tagged.Value[Tag, K], value V,
) Map[Tag, K, V] {
	return Map[Tag, K, V]{tree: rbtree.Empty[K, V]().Insert(key.Untag(), value)}
}

// Insert returns a map with the key bound to the value. If the key already
// exists, the new value replaces the old one (last write wins).
func (m Map[Tag, K, V]) Insert(key tagged.Value[Tag, K], value V) Map[Tag, K, V] {
	return Map[Tag, K, V]{tree: m.tree.Insert(key.Untag(), value)}
}

// Update applies a functional update to the entry for the key. The function
// receives Some(current value) or None when absent and returns the new
// binding: Some(v) inserts or replaces, None removes. An absent-to-absent
// update is a no-op.
func (m Map[Tag, K, V]) Update(
	key tagged.Value[Tag, K], f func(optional.Value[V]) optional.Value[V],
) Map[Tag, K, V] {
	current := m.Get(key)

	next, present := f(current).Get()
	if present {
		return m.Insert(key, next)
	}

	if current.NonEmpty() {
		return m.Remove(key)
	}

	return m
}

// Remove returns a map without the given key. Removing an absent key is a
// no-op, not an error.
func (m Map[Tag, K, V]) Remove(key tagged.Value[Tag, K]) Map[Tag, K, V] {
	return Map[Tag, K, V]{tree: m.tree.Remove(key.Untag())}
}

// IsEmpty returns true if the map contains no entries.
func (m Map[Tag, K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Member returns true if the key exists in the map.
func (m Map[Tag, K, V]) Member(key tagged.Value[Tag, K]) bool {
	return m.tree.Member(key.Untag())
}

// Get retrieves the value for the key. Returns Some(value) if present,
// None otherwise; Get never fails.
func (m Map[Tag, K, V]) Get(key tagged.Value[Tag, K]) optional.Value[V] {
	value, found := m.tree.Get(key.Untag())
	if !found {
		return optional.None[V]()
	}

	return optional.Some(value)
}

// Size returns the number of entries in the map.
func (m Map[Tag, K, V]) Size() int {
	return m.tree.Len()
}

// Seq returns an iterator over the map's entries in ascending key order,
// with keys tagged. Compatible with range-over-func syntax:
// for k, v := range m.Seq() { ... }.
func (m Map[Tag, K, V]) Seq() iter.Seq2[tagged.Value[Tag, K], V] {
	return func(yield func(tagged.Value[Tag, K], V) bool) {
		for key, value := range m.tree.Seq() {
			if !yield(tagged.Tag[Tag](key), value) {
				return
			}
		}
	}
}

// SeqDesc returns an iterator over the map's entries in descending key order,
// with keys tagged.
func (m Map[Tag, K, V]) SeqDesc() iter.Seq2[tagged.Value[Tag, K], V] {
	return func(yield func(tagged.Value[Tag, K], V) bool) {
		for key, value := range m.tree.SeqDesc() {
			if !yield(tagged.Tag[Tag](key), value) {
				return
			}
		}
	}
}

// Keys returns the map's keys in ascending order, tagged.
func (m Map[Tag, K, V]) Keys() []tagged.Value[Tag, K] {
	keys := make([]tagged.Value[Tag, K], 0, m.Size())

	for key := range m.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// UntaggedKeys returns the map's keys in ascending order, without tags.
func (m Map[Tag, K, V]) UntaggedKeys() []K {
	keys := make([]K, 0, m.Size())

	for key := range m.tree.Seq() {
		keys = append(keys, key)
	}

	return keys
}

// Values returns the map's values in ascending key order, one per entry.
func (m Map[Tag, K, V]) Values() []V {
	values := make([]V, 0, m.Size())

	for _, value := range m.tree.Seq() {
		values = append(values, value)
	}

	return values
}

// ToList returns the map's entries as an association list sorted ascending
// by key, with keys tagged.
func (m Map[Tag, K, V]) ToList() []Entry[tagged.Value[Tag, K], V] {
	entries := make([]Entry[tagged.Value[Tag, K], V], 0, m.Size())

	for key, value := range m.Seq() {
		entries = append(entries, Entry[tagged.Value[Tag, K], V]{Key: key, Value: value})
	}

	return entries
}

// ToUntaggedList returns the map's entries as an association list sorted
// ascending by key, without tags.
func (m Map[Tag, K, V]) ToUntaggedList() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, m.Size())

	for key, value := range m.tree.Seq() {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}

	return entries
}

// Filter returns a map containing only the entries for which the predicate
// returns true.
func (m Map[Tag, K, V]) Filter(predicate func(key tagged.Value[Tag, K], value V) bool) Map[Tag, K, V] {
	out := rbtree.Empty[K, V]()

	for key, value := range m.tree.Seq() {
		if predicate(tagged.Tag[Tag](key), value) {
			out = out.Insert(key, value)
		}
	}

	return Map[Tag, K, V]{tree: out}
}

// Partition splits the map into two: the first contains the entries for
// which the predicate returns true, the second the rest.
func (m Map[Tag, K, V]) Partition(
	predicate func(key tagged.Value[Tag, K], value V) bool,
) (matching, rest Map[Tag, K, V]) {
	matchTree := rbtree.Empty[K, V]()
	restTree := rbtree.Empty[K, V]()

	for key, value := range m.tree.Seq() {
		if predicate(tagged.Tag[Tag](key), value) {
			matchTree = matchTree.Insert(key, value)
		} else {
			restTree = restTree.Insert(key, value)
		}
	}

	return Map[Tag, K, V]{tree: matchTree}, Map[Tag, K, V]{tree: restTree}
}

// Union returns a map containing the keys of both maps. When a key exists
// in both, the receiver's value wins.
func (m Map[Tag, K, V]) Union(other Map[Tag, K, V]) Map[Tag, K, V] {
	out := other.tree

	for key, value := range m.tree.Seq() {
		out = out.Insert(key, value)
	}

	return Map[Tag, K, V]{tree: out}
}

// Intersect returns a map containing the entries of the receiver whose keys
// also exist in other. Values are taken from the receiver.
func (m Map[Tag, K, V]) Intersect(other Map[Tag, K, V]) Map[Tag, K, V] {
	out := rbtree.Empty[K, V]()

	for key, value := range m.tree.Seq() {
		if other.tree.Member(key) {
			out = out.Insert(key, value)
		}
	}

	return Map[Tag, K, V]{tree: out}
}

// Diff returns a map containing the entries of the receiver whose keys are
// absent from other.
func (m Map[Tag, K, V]) Diff(other Map[Tag, K, V]) Map[Tag, K, V] {
	out := rbtree.Empty[K, V]()

	for key, value := range m.tree.Seq() {
		if !other.tree.Member(key) {
			out = out.Insert(key, value)
		}
	}

	return Map[Tag, K, V]{tree: out}
}

// Equal compares two maps entry by entry using the provided value equality
// function. Keys are compared with their Equals method. Internal tree shape
// is not observable and never affects the result.
func (m Map[Tag, K, V]) Equal(other Map[Tag, K, V], eq func(V, V) bool) bool {
	if m.Size() != other.Size() {
		return false
	}

	mine := m.ToUntaggedList()
	theirs := other.ToUntaggedList()

	for i := range mine {
		if !mine[i].Key.Equals(theirs[i].Key) || !eq(mine[i].Value, theirs[i].Value) {
			return false
		}
	}

	return true
}

// FromList builds a map from an association list of tagged keys. When a key
// occurs more than once, the value of its last occurrence wins, matching
// repeated Insert calls.
func FromList[Tag any, K sortable.Sortable[K], V any](
	entries []Entry[tagged.Value[Tag, K], V],
) Map[Tag, K, V] {
	out := rbtree.Empty[K, V]()

	for _, entry := range entries {
		out = out.Insert(entry.Key.Untag(), entry.Value)
	}

	return Map[Tag, K, V]{tree: out}
}

// FromUntaggedList builds a map from an association list of bare keys,
// tagging every key with Tag. Duplicate keys keep the last occurrence.
func FromUntaggedList[Tag any, K sortable.Sortable[K], V any](
	entries []Entry[K, V],
) Map[Tag, K, V] {
	out := rbtree.Empty[K, V]()

	for _, entry := range entries {
		out = out.Insert(entry.Key, entry.Value)
	}

	return Map[Tag, K, V]{tree: out}
}

// MapValues transforms every value with f, passing the tagged key for
// context. Keys are unchanged, so the result has the same key set in the
// same order. (The ordered-map operation usually called "map"; the name
// MapValues avoids colliding with the Map type.)
func MapValues[Tag any, K sortable.Sortable[K], V any, B any](
	f func(key tagged.Value[Tag, K], value V) B, m Map[Tag, K, V],
) Map[Tag, K, B] {
	out := rbtree.Empty[K, B]()

	for key, value := range m.tree.Seq() {
		out = out.Insert(key, f(tagged.Tag[Tag](key), value))
	}

	return Map[Tag, K, B]{tree: out}
}

// Foldl folds over the entries in ascending key order. The fold is total:
// every entry is visited, with no early exit.
func Foldl[Tag any, K sortable.Sortable[K], V any, Acc any](
	f func(key tagged.Value[Tag, K], value V, acc Acc) Acc, seed Acc, m Map[Tag, K, V],
) Acc {
	acc := seed

	for key, value := range m.tree.Seq() {
		acc = f(tagged.Tag[Tag](key), value, acc)
	}

	return acc
}

// Foldr folds over the entries in descending key order.
func Foldr[Tag any, K sortable.Sortable[K], V any, Acc any](
	f func(key tagged.Value[Tag, K], value V, acc Acc) Acc, seed Acc, m Map[Tag, K, V],
) Acc {
	acc := seed

	for key, value := range m.tree.SeqDesc() {
		acc = f(tagged.Tag[Tag](key), value, acc)
	}

	return acc
}

// Merge walks both maps simultaneously in ascending key order, threading an
// accumulator through one callback per key: onlyLeft for keys present only
// in left, both for keys present in both (receiving both values), onlyRight
// for keys present only in right. Every key across the two maps is visited
// exactly once, and the three callbacks partition the key space. Union,
// Intersect, and Diff are all derivable from Merge.
func Merge[Tag any, K sortable.Sortable[K], A any, B any, R any](
	onlyLeft func(key tagged.Value[Tag, K], leftValue A, acc R) R,
	both func(key tagged.Value[Tag, K], leftValue A, rightValue B, acc R) R,
	onlyRight func(key tagged.Value[Tag, K], rightValue B, acc R) R,
	left Map[Tag, K, A],
	right Map[Tag, K, B],
	seed R,
) R {
	acc := seed
	pending := left.ToList()
	i := 0

	for rightKey, rightValue := range right.tree.Seq() {
		// Drain left entries that sort before the current right key.
		for i < len(pending) && pending[i].Key.Untag().LessThan(rightKey) {
			acc = onlyLeft(pending[i].Key, pending[i].Value, acc)
			i++
		}

		if i < len(pending) && pending[i].Key.Untag().Equals(rightKey) {
			acc = both(pending[i].Key, pending[i].Value, rightValue, acc)
			i++
		} else {
			acc = onlyRight(tagged.Tag[Tag](rightKey), rightValue, acc)
		}
	}

	for ; i < len(pending); i++ {
		acc = onlyLeft(pending[i].Key, pending[i].Value, acc)
	}

	return acc
}
