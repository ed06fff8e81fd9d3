package proximity

import (
	"errors"

	"github.com/disklib/barrierresilience/geometry"
)

// ErrNonUniformRadius is returned by KDTree.Rebuild when the disk set it
// is given does not share a single common radius.
var ErrNonUniformRadius = errors.New("proximity: kd-tree requires all disks to share one radius")

// Index is a mutable spatial index over a set of geometry objects. It is
// the sole source of adjacency information for the implicit transformed
// graph: nothing in this engine ever builds or walks an edge list.
type Index[T geometry.Number] interface {
	// Rebuild discards any previous contents and indexes objects.
	Rebuild(objects []geometry.GeometryObject[T]) error

	// AnyIntersecting returns some object still in the index that
	// intersects query, or ok == false if none does.
	AnyIntersecting(query geometry.GeometryObject[T]) (found geometry.GeometryObject[T], ok bool)

	// Delete removes o from the index, if present. Deleting an object not
	// present is a no-op.
	Delete(o geometry.GeometryObject[T])
}
