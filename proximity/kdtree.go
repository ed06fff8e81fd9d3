package proximity

import (
	"sort"

	"github.com/disklib/barrierresilience/geometry"
)

// kdNode is a node of an equal-radius 2-D k-d tree over disk centres. It
// stores the full Disk so a query can hand the caller back a value that
// still carries its original stable index — the index lives nowhere else.
// Splitting alternates between the X and Y axis by depth.
type kdNode[T geometry.Number] struct {
	disk        geometry.Disk[T]
	left, right *kdNode[T]
}

// KDTree is a spatial index over disks of one common radius, plus up to
// two vertical borders kept in a flat list (with at most two entries, a
// linear scan over them costs nothing in practice).
//
// Deletion is a tombstone: the disk index is recorded as deleted and
// skipped by every later nearest-neighbour search, rather than
// restructuring the tree. For the access pattern this engine drives
// (every disk deleted at most a small constant number of times per solve)
// this is cheaper than rebalancing and never returns a stale result.
type KDTree[T geometry.Number] struct {
	root      *kdNode[T]
	byIndex   map[int]geometry.Disk[T]
	radius    T
	radiusSet bool
	borders   []geometry.Border[T]
	deleted   map[int]bool
}

// NewKDTree constructs an empty KDTree.
func NewKDTree[T geometry.Number]() *KDTree[T] {
	return &KDTree[T]{}
}

// Rebuild indexes objects: disks are inserted into the tree (after
// validating they all share one radius), borders are kept in a flat
// slice. Rebuild returns ErrNonUniformRadius if the disk set has more
// than one distinct radius.
func (k *KDTree[T]) Rebuild(objects []geometry.GeometryObject[T]) error {
	var items []geometry.Disk[T]
	var borders []geometry.Border[T]
	byIndex := make(map[int]geometry.Disk[T])

	var radius T
	var radiusSet bool

	for _, o := range objects {
		switch v := o.(type) {
		case geometry.Disk[T]:
			if !radiusSet {
				radius = v.Radius
				radiusSet = true
			} else if v.Radius != radius {
				return ErrNonUniformRadius
			}
			items = append(items, v)
			byIndex[v.Index()] = v
		case geometry.Border[T]:
			borders = append(borders, v)
		}
	}

	k.root = buildKDTree(items, 0)
	k.byIndex = byIndex
	k.radius = radius
	k.radiusSet = radiusSet
	k.borders = borders
	k.deleted = make(map[int]bool)

	return nil
}

func buildKDTree[T geometry.Number](items []geometry.Disk[T], depth int) *kdNode[T] {
	if len(items) == 0 {
		return nil
	}

	axis := depth % 2
	sort.Slice(items, func(i, j int) bool {
		if axis == 0 {
			return items[i].Center.X < items[j].Center.X
		}

		return items[i].Center.Y < items[j].Center.Y
	})

	mid := len(items) / 2
	node := &kdNode[T]{disk: items[mid]}
	node.left = buildKDTree(items[:mid], depth+1)
	node.right = buildKDTree(items[mid+1:], depth+1)

	return node
}

// AnyIntersecting first checks the (small) border list, then — for a disk
// query — runs a single nearest-neighbour search over the tree. Because
// every indexed disk shares one radius, the closest surviving disk
// intersects the query if and only if some disk does: if the nearest one
// doesn't reach, none further away can either.
func (k *KDTree[T]) AnyIntersecting(query geometry.GeometryObject[T]) (geometry.GeometryObject[T], bool) {
	for _, b := range k.borders {
		if geometry.Intersects[T](geometry.GeometryObject[T](b), query) {
			return b, true
		}
	}

	qd, ok := query.(geometry.Disk[T])
	if !ok {
		// Border query against disks: the engine only queries with a border
		// from the source, at the first layer of a search, so a full scan
		// here is rare.
		for idx, d := range k.byIndex {
			if k.deleted[idx] {
				continue
			}
			if geometry.Intersects[T](geometry.GeometryObject[T](d), query) {
				return d, true
			}
		}

		var zero geometry.GeometryObject[T]

		return zero, false
	}

	idx, found := nearestKDTree(k.root, qd.Center, k.deleted, 0)
	if !found {
		var zero geometry.GeometryObject[T]

		return zero, false
	}

	candidate := k.byIndex[idx]
	if !geometry.IntersectsDiskDisk(qd, candidate) {
		var zero geometry.GeometryObject[T]

		return zero, false
	}

	return candidate, true
}

// nearestKDTree returns the disk index of the surviving (non-deleted)
// point nearest to target, using branch-and-bound pruning on the k-d
// tree's splitting planes.
func nearestKDTree[T geometry.Number](root *kdNode[T], target geometry.Point[T], deleted map[int]bool, depth int) (int, bool) {
	if root == nil {
		return 0, false
	}

	bestIdx := -1
	var bestDist T
	haveBest := false

	consider := func(idx int, p geometry.Point[T]) {
		if deleted[idx] {
			return
		}
		dx := p.X - target.X
		dy := p.Y - target.Y
		d := dx*dx + dy*dy
		if !haveBest || d < bestDist {
			bestDist = d
			bestIdx = idx
			haveBest = true
		}
	}

	var walk func(node *kdNode[T], depth int)
	walk = func(node *kdNode[T], depth int) {
		if node == nil {
			return
		}
		consider(node.disk.Index(), node.disk.Center)

		axis := depth % 2
		var diff T
		var near, far *kdNode[T]
		if axis == 0 {
			diff = target.X - node.disk.Center.X
		} else {
			diff = target.Y - node.disk.Center.Y
		}
		if diff < 0 {
			near, far = node.left, node.right
		} else {
			near, far = node.right, node.left
		}

		walk(near, depth+1)
		if !haveBest || diff*diff < bestDist {
			walk(far, depth+1)
		}
	}

	walk(root, depth)

	return bestIdx, haveBest
}

// Delete removes o from the index: a border is dropped from the flat
// list, a disk is tombstoned so later searches skip it.
func (k *KDTree[T]) Delete(o geometry.GeometryObject[T]) {
	switch v := o.(type) {
	case geometry.Disk[T]:
		if k.deleted == nil {
			k.deleted = make(map[int]bool)
		}
		k.deleted[v.Index()] = true
	case geometry.Border[T]:
		for i, b := range k.borders {
			if b == v {
				k.borders = append(k.borders[:i], k.borders[i+1:]...)

				return
			}
		}
	}
}
