package sortable

import (
	"facette.io/natsort"
)

// NaturalString is a sortable wrapper type for strings ordered by natural
// sort order rather than lexicographic order. Natural order treats runs of
// digits numerically, so "file2" sorts before "file10".
//
// Use it as a key type when container iteration order should match how a
// human would sort the strings:
//
//	s := taggedset.Empty[FileTag, sortable.NaturalString]()
//	s = s.Insert(tagged.Tag[FileTag](sortable.NaturalString("file10")))
//	s = s.Insert(tagged.Tag[FileTag](sortable.NaturalString("file2")))
//	// Iterating yields: "file2", "file10"
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if this NaturalString is byte-for-byte equal to the other.
// Equality is exact; natural order only affects LessThan.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this NaturalString precedes the other in natural
// sort order.
func (s NaturalString) LessThan(other NaturalString) bool {
	if string(s) == string(other) {
		return false
	}

	return natsort.Compare(string(s), string(other))
}
