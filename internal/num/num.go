// Package num provides small generic numeric helpers shared across segio
// internals.
package num

import "golang.org/x/exp/constraints"

// Roundup rounds n up to the nearest multiple of align. align must be a
// power of two.
func Roundup[T constraints.Integer](n, align T) T {
	return (n + align - 1) &^ (align - 1)
}
