package sortable

import (
	"github.com/amp-labs/tagged/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
