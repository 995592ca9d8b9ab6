// Package trapmap implements a randomized-incremental trapezoidal map and
// its point-location search structure (the "search DAG") for a planar
// subdivision induced by non-crossing segments in general position.
//
// The map and the search DAG are two append-only arenas that
// cross-reference each other purely by index -- never by pointer -- so that
// splitting a trapezoid during a segment insertion can reuse an existing
// arena slot (keeping external references to it valid) without either
// structure needing to know anything about the other's internal layout.
package trapmap

import "math"

// Index addresses a slot in one of the package's arenas (points, segments,
// trapezoids, or DAG nodes). NONE is the sentinel for "absent".
type Index = uint32

// NONE is the maximum representable Index, reserved to mean "no such
// element". It plays the role of std::numeric_limits<size_t>::max() in the
// C++ lineage this package is adapted from.
const NONE Index = math.MaxUint32

// IndexedSegment is a pair of point indices, oriented so that Left precedes
// Right in lexicographic (x, y) order.
type IndexedSegment struct {
	Left, Right Index
}
