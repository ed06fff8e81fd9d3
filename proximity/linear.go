package proximity

import "github.com/disklib/barrierresilience/geometry"

// Linear is the reference Index implementation: a plain slice scanned
// front-to-back on every query. It imposes no restriction on its inputs
// (disks of any radii, any number of borders) and its results are
// reproducible — the first stored object (in Rebuild's input order,
// adjusted by prior deletions) that intersects the query always wins.
type Linear[T geometry.Number] struct {
	objects []geometry.GeometryObject[T]
}

// NewLinear constructs an empty Linear index.
func NewLinear[T geometry.Number]() *Linear[T] {
	return &Linear[T]{}
}

// Rebuild replaces the index contents with objects, in order.
func (l *Linear[T]) Rebuild(objects []geometry.GeometryObject[T]) error {
	l.objects = make([]geometry.GeometryObject[T], len(objects))
	copy(l.objects, objects)

	return nil
}

// AnyIntersecting scans the index in order and returns the first object
// that intersects query.
func (l *Linear[T]) AnyIntersecting(query geometry.GeometryObject[T]) (geometry.GeometryObject[T], bool) {
	for _, o := range l.objects {
		if geometry.Intersects[T](o, query) {
			return o, true
		}
	}

	var zero geometry.GeometryObject[T]

	return zero, false
}

// Delete removes the first object structurally equal to o, if any.
func (l *Linear[T]) Delete(o geometry.GeometryObject[T]) {
	for i, existing := range l.objects {
		if geometry.Equal[T](existing, o) {
			l.objects = append(l.objects[:i], l.objects[i+1:]...)

			return
		}
	}
}
