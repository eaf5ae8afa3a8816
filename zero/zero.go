// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
// This is useful when you need to explicitly obtain the zero value of a generic type parameter.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultStr = zero.Value[string]()     // returns ""
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
