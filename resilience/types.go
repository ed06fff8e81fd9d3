package resilience

import (
	"context"
	"errors"
	"fmt"

	"github.com/disklib/barrierresilience/geometry"
	"github.com/disklib/barrierresilience/proximity"
)

// ErrUnsupportedConfig is returned when Config.Index names a variant this
// package does not know how to construct, or when the kd-tree index
// rejects a disk set that does not share one radius.
var ErrUnsupportedConfig = errors.New("resilience: unsupported index kind")

// IndexKind selects which proximity.Index implementation a solve runs
// over.
type IndexKind int

const (
	// IndexKindLinear selects proximity.Linear — no restriction on disk
	// radii, O(n) per query. The zero IndexKind, so a zero Config runs
	// the unrestricted variant rather than silently requiring a uniform
	// disk radius.
	IndexKindLinear IndexKind = iota

	// IndexKindKDTree selects proximity.KDTree — requires every disk to
	// share one radius (ErrUnsupportedConfig otherwise), amortised
	// O(log n) per query.
	IndexKindKDTree
)

// Config tunes a solve. The zero Config is DefaultConfig(): linear index,
// background context, no verbose logging.
type Config struct {
	// Index selects the proximity index variant a solve builds each round.
	Index IndexKind

	// Ctx allows cancellation between blocking-family rounds. Nil means
	// context.Background().
	Ctx context.Context

	// Verbose, if true, logs a progress line after every blocking-family
	// round found.
	Verbose bool
}

// DefaultConfig returns a Config using the Linear index with no
// restriction on disk radii, background context, and no verbose logging.
func DefaultConfig() Config {
	return Config{Index: IndexKindLinear, Ctx: context.Background(), Verbose: false}
}

func (c Config) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}

func indexFactory[T geometry.Number](kind IndexKind) (func() proximity.Index[T], error) {
	switch kind {
	case IndexKindKDTree:
		return func() proximity.Index[T] { return proximity.NewKDTree[T]() }, nil
	case IndexKindLinear:
		return func() proximity.Index[T] { return proximity.NewLinear[T]() }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedConfig, kind)
	}
}

// WitnessResult is the outcome of a Witness solve: the minimum number of
// disks to remove, and their indices into the caller's original slice.
type WitnessResult struct {
	// Count is the minimum vertex-cut size.
	Count int

	// DiskIndices are the indices (into the caller's original disks
	// slice) of a minimal set of disks whose removal achieves Count.
	DiskIndices []int
}
