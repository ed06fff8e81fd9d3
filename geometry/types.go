package geometry

// Number is the constraint satisfied by a disk's coordinate type: any
// signed integer or floating-point type. Both instantiations are exercised
// by package resilience (int disks for exact combinatorial inputs, float64
// disks for measured/real-valued instances).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Point is a location in the plane.
type Point[T Number] struct {
	X, Y T
}

// Disk is a circle with a centre, a radius, and a stable index.
//
// Index is -1 until AssignIndices sets it; once set (at solve entry) it is
// never mutated again for the lifetime of a solve. Equal ignores Index,
// matching the source algorithm's convention that a disk's identity for
// geometric purposes is its shape, not its position in a slice; the
// built-in == operator (and so a Disk used as a map key) compares Index
// too.
type Disk[T Number] struct {
	Center Point[T]
	Radius T
	index  int
}

// NewDisk constructs a Disk with no assigned index.
func NewDisk[T Number](center Point[T], radius T) Disk[T] {
	return Disk[T]{Center: center, Radius: radius, index: -1}
}

// Index returns the disk's stable index, or -1 if AssignIndices has not
// been run over the slice this disk came from.
func (d Disk[T]) Index() int { return d.index }

// Equal reports whether two disks have the same centre and radius,
// ignoring their index.
func (d Disk[T]) Equal(other Disk[T]) bool {
	return d.Center == other.Center && d.Radius == other.Radius
}

// isGeometryObject marks Disk as a GeometryObject variant.
func (Disk[T]) isGeometryObject() {}

// Border is a vertical barrier at a given x coordinate.
type Border[T Number] struct {
	X      T
	IsLeft bool
}

// NewBorder constructs a Border.
func NewBorder[T Number](x T, isLeft bool) Border[T] {
	return Border[T]{X: x, IsLeft: isLeft}
}

// isGeometryObject marks Border as a GeometryObject variant.
func (Border[T]) isGeometryObject() {}

// GeometryObject is the tagged union stored and queried by a proximity
// index: either a Disk[T] or a Border[T]. Both variants are comparable
// structs, so GeometryObject values are safe map keys and support ==.
type GeometryObject[T Number] interface {
	isGeometryObject()
}

// Equal reports whether two geometry objects are the same disk (ignoring
// index) or the same border. A disk never equals a border.
func Equal[T Number](a, b GeometryObject[T]) bool {
	switch av := a.(type) {
	case Disk[T]:
		bv, ok := b.(Disk[T])
		return ok && av.Equal(bv)
	case Border[T]:
		bv, ok := b.(Border[T])
		return ok && av == bv
	default:
		return false
	}
}

// AssignIndices returns a copy of disks with stable indices 0..len(disks)
// assigned in order. The caller's slice and its elements are left
// untouched; a solve only ever mutates its own local copies.
func AssignIndices[T Number](disks []Disk[T]) []Disk[T] {
	out := make([]Disk[T], len(disks))
	for i, d := range disks {
		d.index = i
		out[i] = d
	}

	return out
}
