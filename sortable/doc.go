// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [String], and
// [NaturalString]. These types are designed to serve as the underlying key types
// of the ordered tagged containers (see
// [github.com/amp-labs/tagged/taggedmap.Map] and
// [github.com/amp-labs/tagged/taggedset.Set]).
//
// The Sortable interface extends [github.com/amp-labs/tagged/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
//
// # Usage
//
// Use the provided wrapper types when you need ordered tagged collections:
//
//	type UserTag struct{}
//
//	users := taggedset.Empty[UserTag, sortable.Int]()
//	users = users.Insert(tagged.Tag[UserTag](sortable.Int(42)))
//	users = users.Insert(tagged.Tag[UserTag](sortable.Int(10)))
//
//	// Elements are returned in sorted order: 10, 42
//	for _, id := range users.ToUntaggedList() {
//	    fmt.Println(int(id))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// The ordering must be total: for any two values a and b, exactly one of
// a.LessThan(b), b.LessThan(a), or a.Equals(b) holds. The ordered containers
// deduplicate and locate keys with this relation alone.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe. The tagged containers built on top of them are immutable, so
// no external synchronization is required to share them across goroutines.
package sortable
