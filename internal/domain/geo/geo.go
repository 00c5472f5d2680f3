// Package geo computes straight-line distances between coordinate pairs and
// filters candidate sets by radius. Coordinates are treated as planar x/y
// pairs; the domain's simplified model applies no great-circle correction.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// StoreVisibilityRadius is the fixed radius, in distance units, within which
// a customer may see and order from a store.
const StoreVisibilityRadius = 30.0

// Locator is anything with a planar coordinate.
type Locator interface {
	Point() orb.Point
}

// Distance returns the Euclidean distance between two coordinate pairs.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// WithinRadius returns the candidates whose distance to origin is at most
// radius, preserving input order. The boundary is inclusive.
func WithinRadius[T Locator](origin orb.Point, radius float64, candidates []T) []T {
	result := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if Distance(origin, c.Point()) <= radius {
			result = append(result, c)
		}
	}

	return result
}
