package levels

import (
	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/proximity"
	"github.com/disklib/barrierresilience/tgraph"
)

// FindLevels layers the implicit residual graph R(G′, blockedEdges) by
// BFS distance from the source, using newIndex to build the proximity
// indices it needs. disks must already carry stable indices (see
// geometry.AssignIndices).
func FindLevels[T geometry.Number](
	newIndex func() proximity.Index[T],
	disks []geometry.Disk[T],
	leftBorderX, rightBorderX T,
	blockedEdges []tgraph.Edge,
) (Result, error) {
	levelsMap := map[tgraph.Vertex]int{tgraph.Source: 0}
	prev := make(map[tgraph.Vertex]tgraph.Vertex, len(blockedEdges))
	next := make(map[tgraph.Vertex]tgraph.Vertex, len(blockedEdges))
	for _, e := range blockedEdges {
		prev[e.To] = e.From
		next[e.From] = e.To
	}

	leftBorder := geometry.NewBorder(leftBorderX, true)
	rightBorder := geometry.NewBorder(rightBorderX, false)

	idx := newIndex()
	if err := idx.Rebuild(withRightBorder(disks, rightBorder)); err != nil {
		return Result{}, err
	}

	// Layer 1: disks directly intersecting the left border (source).
	var layer1Candidates []geometry.Disk[T]
	foundSink := false
	for {
		found, ok := idx.AnyIntersecting(geometry.GeometryObject[T](leftBorder))
		if !ok {
			break
		}
		idx.Delete(found)

		if d, isDisk := found.(geometry.Disk[T]); isDisk {
			layer1Candidates = append(layer1Candidates, d)
		} else {
			foundSink = true

			break
		}
	}

	if foundSink {
		levelsMap[tgraph.Sink] = 1

		return Result{Levels: levelsMap, Reachable: true, Distance: 1, Prev: prev, Next: next}, nil
	}

	usedDisk := make(map[int]bool, len(layer1Candidates))
	var layer1 []tgraph.Vertex
	for _, d := range layer1Candidates {
		v := tgraph.DiskInbound(d.Index())
		if p, ok := prev[v]; ok && p == tgraph.Source {
			continue
		}
		levelsMap[v] = 1
		usedDisk[d.Index()] = true
		layer1 = append(layer1, v)
	}

	remaining := make([]geometry.Disk[T], 0, len(disks))
	for _, d := range disks {
		if !usedDisk[d.Index()] {
			remaining = append(remaining, d)
		}
	}
	if err := idx.Rebuild(withRightBorder(remaining, rightBorder)); err != nil {
		return Result{}, err
	}

	lastLayer := layer1
	i := 2
	for len(lastLayer) > 0 && !foundSink {
		var currentLayer []tgraph.Vertex

		if i%2 == 0 {
			for _, v := range lastLayer {
				if !v.Inbound {
					continue
				}

				if p, ok := prev[v]; ok {
					if p == tgraph.Source {
						continue
					}
					levelsMap[p] = i
					currentLayer = append(currentLayer, p)
				} else {
					out := tgraph.DiskOutbound(v.DiskIndex)
					levelsMap[out] = i
					currentLayer = append(currentLayer, out)
				}
			}
		} else {
			for _, v := range lastLayer {
				if v.Inbound {
					continue
				}

				var neighbors []geometry.Disk[T]
				for {
					found, ok := idx.AnyIntersecting(geometry.GeometryObject[T](disks[v.DiskIndex]))
					if !ok {
						break
					}
					idx.Delete(found)

					if d, isDisk := found.(geometry.Disk[T]); isDisk {
						neighbors = append(neighbors, d)
					} else {
						foundSink = true
						levelsMap[tgraph.Sink] = i

						break
					}
				}

				if foundSink {
					for _, cv := range currentLayer {
						delete(levelsMap, cv)
					}
					currentLayer = nil

					break
				}

				if len(neighbors) == 0 {
					continue
				}

				nextV, hasNext := next[v]
				for _, d := range neighbors {
					u := tgraph.DiskInbound(d.Index())
					if hasNext && nextV == u {
						continue
					}
					levelsMap[u] = i
					currentLayer = append(currentLayer, u)
				}
			}
		}

		i++
		lastLayer = currentLayer
	}

	distance := -1
	if foundSink {
		distance = levelsMap[tgraph.Sink]
	}

	return Result{Levels: levelsMap, Reachable: foundSink, Distance: distance, Prev: prev, Next: next}, nil
}

func withRightBorder[T geometry.Number](disks []geometry.Disk[T], rightBorder geometry.Border[T]) []geometry.GeometryObject[T] {
	objects := make([]geometry.GeometryObject[T], 0, len(disks)+1)
	for _, d := range disks {
		objects = append(objects, d)
	}
	objects = append(objects, rightBorder)

	return objects
}
