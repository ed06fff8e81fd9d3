package geometry

// IntersectsDiskDisk reports whether two disks have non-empty intersection;
// a disk contained entirely within another counts as intersecting, and
// tangent disks (squared distance exactly equal to the squared sum of
// radii) count as intersecting too.
func IntersectsDiskDisk[T Number](d1, d2 Disk[T]) bool {
	dx := d1.Center.X - d2.Center.X
	dy := d1.Center.Y - d2.Center.Y
	dSquared := dx*dx + dy*dy
	rSum := d1.Radius + d2.Radius

	return dSquared <= rSum*rSum
}

// IntersectsDiskBorder reports whether a disk touches or crosses a
// vertical border. A disk whose centre already lies on the border's side
// counts as intersecting regardless of radius.
func IntersectsDiskBorder[T Number](d Disk[T], b Border[T]) bool {
	if b.IsLeft {
		if d.Center.X <= b.X {
			return true
		}

		return d.Center.X-d.Radius <= b.X
	}

	if d.Center.X >= b.X {
		return true
	}

	return b.X <= d.Center.X+d.Radius
}

// IntersectsBorderBorder reports whether two borders intersect. Two
// borders on the same side always intersect (they coincide as a
// half-plane); a left and a right border intersect only when the left
// border sits at or to the right of the right border.
func IntersectsBorderBorder[T Number](b1, b2 Border[T]) bool {
	if b1.IsLeft == b2.IsLeft {
		return true
	}
	if b1.IsLeft {
		return b1.X >= b2.X
	}

	return b2.X >= b1.X
}

// Intersects dispatches on the dynamic type of g1 and g2 and answers
// whether the two geometry objects touch or overlap. It is the single
// predicate the rest of the engine relies on to decide implicit-graph
// adjacency.
func Intersects[T Number](g1, g2 GeometryObject[T]) bool {
	switch v1 := g1.(type) {
	case Disk[T]:
		switch v2 := g2.(type) {
		case Disk[T]:
			return IntersectsDiskDisk(v1, v2)
		case Border[T]:
			return IntersectsDiskBorder(v1, v2)
		}
	case Border[T]:
		switch v2 := g2.(type) {
		case Disk[T]:
			return IntersectsDiskBorder(v2, v1)
		case Border[T]:
			return IntersectsBorderBorder(v1, v2)
		}
	}

	return false
}
