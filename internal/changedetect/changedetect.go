// Package changedetect decides cheaply whether an ordered collection changed
// enough to warrant recomputing anything derived from it.
//
// The check is a sample, not a proof: a mutation confined to unsampled middle
// elements goes unnoticed. Callers accept that in exchange for constant-cost
// checks on every render.
package changedetect

import (
	"github.com/google/go-cmp/cmp"
)

// SampleThreshold is the collection size above which percentile elements are
// sampled in addition to the first and last.
const SampleThreshold = 10

var percentiles = []float64{0.25, 0.5, 0.75}

// Changed reports whether next differs from prev in length or in any sampled
// element. Elements are compared with cmp.Equal; pass options for element types
// with unexported fields.
func Changed[T any](prev, next []T, opts ...cmp.Option) bool {
	if len(prev) != len(next) {
		return true
	}
	for _, i := range SampleIndices(len(next)) {
		if !cmp.Equal(prev[i], next[i], opts...) {
			return true
		}
	}
	return false
}

// SampleIndices returns the ascending, de-duplicated positions Changed inspects
// for a collection of length n.
func SampleIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	indices := []int{0}
	if n > SampleThreshold {
		for _, p := range percentiles {
			indices = appendUnique(indices, int(p*float64(n-1)))
		}
	}
	return appendUnique(indices, n-1)
}

func appendUnique(indices []int, i int) []int {
	if indices[len(indices)-1] == i {
		return indices
	}
	return append(indices, i)
}

// Sample is a copy of the length and sampled elements of a collection. It lets
// a later collection be compared against the earlier one even when the caller
// reuses and mutates the same backing array.
type Sample[T any] struct {
	length   int
	indices  []int
	elements []T
}

// Take copies the elements of series that Changed would inspect.
func Take[T any](series []T) Sample[T] {
	indices := SampleIndices(len(series))
	elements := make([]T, len(indices))
	for k, i := range indices {
		elements[k] = series[i]
	}
	return Sample[T]{length: len(series), indices: indices, elements: elements}
}

// Changed reports whether next differs from the sampled collection in length
// or in any sampled element.
func (s Sample[T]) Changed(next []T, opts ...cmp.Option) bool {
	if s.length != len(next) {
		return true
	}
	for k, i := range s.indices {
		if !cmp.Equal(s.elements[k], next[i], opts...) {
			return true
		}
	}
	return false
}
