package proximity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/proximity"
)

// KDTreeSuite exercises the KDTree proximity index and cross-checks it
// against Linear over the same inputs.
type KDTreeSuite struct {
	suite.Suite
}

func (s *KDTreeSuite) TestRejectsNonUniformRadius() {
	idx := proximity.NewKDTree[int]()
	d1 := geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1)
	d2 := geometry.NewDisk(geometry.Point[int]{X: 5, Y: 0}, 2)

	err := idx.Rebuild([]geometry.GeometryObject[int]{d1, d2})
	require.ErrorIs(s.T(), err, proximity.ErrNonUniformRadius)
}

func (s *KDTreeSuite) TestFindsNearestIntersectingDisk() {
	idx := proximity.NewKDTree[int]()
	d1 := geometry.AssignIndices([]geometry.Disk[int]{
		geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1),
		geometry.NewDisk(geometry.Point[int]{X: 100, Y: 0}, 1),
	})
	objs := make([]geometry.GeometryObject[int], len(d1))
	for i, d := range d1 {
		objs[i] = d
	}
	require.NoError(s.T(), idx.Rebuild(objs))

	query := geometry.NewDisk(geometry.Point[int]{X: 1, Y: 0}, 1)
	found, ok := idx.AnyIntersecting(query)
	require.True(s.T(), ok)
	foundDisk := found.(geometry.Disk[int])
	require.Equal(s.T(), geometry.Point[int]{X: 0, Y: 0}, foundDisk.Center)
	// The returned disk must carry its original stable index, not -1 —
	// callers key the transformed graph's vertices off it.
	require.Equal(s.T(), d1[0].Index(), foundDisk.Index())
}

func (s *KDTreeSuite) TestNoIntersectionReturnsFalse() {
	idx := proximity.NewKDTree[int]()
	disks := geometry.AssignIndices([]geometry.Disk[int]{
		geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1),
	})
	require.NoError(s.T(), idx.Rebuild([]geometry.GeometryObject[int]{disks[0]}))

	query := geometry.NewDisk(geometry.Point[int]{X: 100, Y: 100}, 1)
	_, ok := idx.AnyIntersecting(query)
	require.False(s.T(), ok)
}

func (s *KDTreeSuite) TestDeleteTombstonesDisk() {
	idx := proximity.NewKDTree[int]()
	disks := geometry.AssignIndices([]geometry.Disk[int]{
		geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1),
	})
	require.NoError(s.T(), idx.Rebuild([]geometry.GeometryObject[int]{disks[0]}))

	idx.Delete(disks[0])
	_, ok := idx.AnyIntersecting(disks[0])
	require.False(s.T(), ok)
}

// TestDeleteReturnedDiskDrainsDuplicateQueries mirrors the engine's actual
// usage: it deletes the value AnyIntersecting hands back, not the disk it
// started with. If the returned disk ever lost its index, Delete would
// tombstone the wrong (or no) entry and the same disk would be returned on
// every subsequent query, so the loop below would never drain.
func (s *KDTreeSuite) TestDeleteReturnedDiskDrainsDuplicateQueries() {
	idx := proximity.NewKDTree[int]()
	disks := geometry.AssignIndices([]geometry.Disk[int]{
		geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1),
		geometry.NewDisk(geometry.Point[int]{X: 1, Y: 0}, 1),
		geometry.NewDisk(geometry.Point[int]{X: 2, Y: 0}, 1),
	})
	objs := make([]geometry.GeometryObject[int], len(disks))
	for i, d := range disks {
		objs[i] = d
	}
	require.NoError(s.T(), idx.Rebuild(objs))

	query := geometry.NewDisk(geometry.Point[int]{X: 1, Y: 0}, 100)

	seen := make(map[int]bool)
	for i := 0; i < len(disks); i++ {
		found, ok := idx.AnyIntersecting(query)
		require.True(s.T(), ok, "iteration %d: expected a remaining disk", i)

		foundDisk := found.(geometry.Disk[int])
		require.False(s.T(), seen[foundDisk.Index()], "disk %d returned more than once: Delete did not tombstone the right entry", foundDisk.Index())
		seen[foundDisk.Index()] = true

		idx.Delete(found)
	}

	_, ok := idx.AnyIntersecting(query)
	require.False(s.T(), ok, "all three disks should have been drained")
	require.ElementsMatch(s.T(), []int{0, 1, 2}, keys(seen))
}

func keys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func (s *KDTreeSuite) TestBorderIntersectionBeforeDiskSearch() {
	idx := proximity.NewKDTree[int]()
	disks := geometry.AssignIndices([]geometry.Disk[int]{
		geometry.NewDisk(geometry.Point[int]{X: 10, Y: 0}, 1),
	})
	left := geometry.NewBorder[int](0, true)
	require.NoError(s.T(), idx.Rebuild([]geometry.GeometryObject[int]{disks[0], left}))

	found, ok := idx.AnyIntersecting(geometry.GeometryObject[int](left))
	require.True(s.T(), ok)
	require.Equal(s.T(), geometry.GeometryObject[int](left), found)
}

// TestAgreesWithLinear cross-checks KDTree and Linear over the same
// random-free, hand-built equal-radius disk set.
func (s *KDTreeSuite) TestAgreesWithLinear() {
	radius := 2
	centers := []geometry.Point[int]{
		{X: 0, Y: 0}, {X: 5, Y: 5}, {X: -5, Y: 5}, {X: 10, Y: -10}, {X: 3, Y: 1},
	}
	disks := make([]geometry.Disk[int], len(centers))
	for i, c := range centers {
		disks[i] = geometry.NewDisk(c, radius)
	}
	disks = geometry.AssignIndices(disks)

	objs := make([]geometry.GeometryObject[int], len(disks))
	for i, d := range disks {
		objs[i] = d
	}

	linear := proximity.NewLinear[int]()
	kd := proximity.NewKDTree[int]()
	require.NoError(s.T(), linear.Rebuild(objs))
	require.NoError(s.T(), kd.Rebuild(objs))

	queries := []geometry.Disk[int]{
		geometry.NewDisk(geometry.Point[int]{X: 1, Y: 1}, radius),
		geometry.NewDisk(geometry.Point[int]{X: 50, Y: 50}, radius),
		geometry.NewDisk(geometry.Point[int]{X: 4, Y: 1}, radius),
	}
	for _, q := range queries {
		lfound, lok := linear.AnyIntersecting(q)
		kfound, kok := kd.AnyIntersecting(q)
		require.Equal(s.T(), lok, kok, "disagreement on query %v", q)
		if lok {
			require.Equal(s.T(), lfound.(geometry.Disk[int]).Index(), kfound.(geometry.Disk[int]).Index(), "index mismatch on query %v", q)
		}
	}
}

func TestKDTreeSuite(t *testing.T) {
	suite.Run(t, new(KDTreeSuite))
}
