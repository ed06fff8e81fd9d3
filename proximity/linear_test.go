package proximity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/proximity"
)

// LinearSuite exercises the Linear proximity index.
type LinearSuite struct {
	suite.Suite
}

func (s *LinearSuite) TestEmptyIndex() {
	idx := proximity.NewLinear[int]()
	require.NoError(s.T(), idx.Rebuild(nil))

	_, ok := idx.AnyIntersecting(geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1))
	require.False(s.T(), ok)
}

func (s *LinearSuite) TestFindsIntersectingDisk() {
	idx := proximity.NewLinear[int]()
	d1 := geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1)
	d2 := geometry.NewDisk(geometry.Point[int]{X: 10, Y: 0}, 1)
	require.NoError(s.T(), idx.Rebuild([]geometry.GeometryObject[int]{d1, d2}))

	query := geometry.NewDisk(geometry.Point[int]{X: 1, Y: 0}, 1)
	found, ok := idx.AnyIntersecting(query)
	require.True(s.T(), ok)
	require.Equal(s.T(), d1, found)
}

func (s *LinearSuite) TestDeleteRemovesObject() {
	idx := proximity.NewLinear[int]()
	d1 := geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1)
	require.NoError(s.T(), idx.Rebuild([]geometry.GeometryObject[int]{d1}))

	idx.Delete(d1)
	_, ok := idx.AnyIntersecting(d1)
	require.False(s.T(), ok)
}

func (s *LinearSuite) TestDeleteMissingObjectIsNoOp() {
	idx := proximity.NewLinear[int]()
	d1 := geometry.NewDisk(geometry.Point[int]{X: 0, Y: 0}, 1)
	require.NoError(s.T(), idx.Rebuild([]geometry.GeometryObject[int]{d1}))

	other := geometry.NewDisk(geometry.Point[int]{X: 100, Y: 100}, 1)
	idx.Delete(other)
	_, ok := idx.AnyIntersecting(d1)
	require.True(s.T(), ok)
}

func TestLinearSuite(t *testing.T) {
	suite.Run(t, new(LinearSuite))
}
