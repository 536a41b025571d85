package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecunits"
	"github.com/hupe1980/vecunits/internal/conv"
	"github.com/hupe1980/vecunits/unit"
)

// Evaluate materializes every operand into a vector.
//
// Work is split into chunks processed by up to WithWorkers goroutines. The
// result has the order of exprs. Evaluation stops early and returns the
// context error if ctx is canceled.
func Evaluate[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](
	ctx context.Context,
	exprs []vecunits.Operand[T, D, U1, U2, U3],
	opts ...Option,
) ([]vecunits.Vector3[T, D, U1, U2, U3], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	out := make([]vecunits.Vector3[T, D, U1, U2, U3], len(exprs))
	chunks := (len(exprs) + o.chunkSize - 1) / o.chunkSize

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for lo := 0; lo < len(exprs); lo += o.chunkSize {
		hi := min(lo+o.chunkSize, len(exprs))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i].Assign(exprs[i])
			}
			return nil
		})
	}

	err := g.Wait()
	o.metrics.RecordEvaluate(len(exprs), time.Since(start), err)
	o.logger.LogEvaluate(ctx, len(exprs), chunks, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Select returns the indices of all vectors for which keep returns true.
func Select[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](
	vs []vecunits.Vector3[T, D, U1, U2, U3],
	keep func(vecunits.Vector3[T, D, U1, U2, U3]) bool,
) (*roaring.Bitmap, error) {
	if _, err := conv.IntToUint32(len(vs)); err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	bm := roaring.New()
	for i, v := range vs {
		if keep(v) {
			bm.Add(uint32(i))
		}
	}
	return bm, nil
}

// Gather returns the vectors at the indices in bm, in ascending index order.
func Gather[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D]](
	vs []vecunits.Vector3[T, D, U1, U2, U3],
	bm *roaring.Bitmap,
) ([]vecunits.Vector3[T, D, U1, U2, U3], error) {
	out := make([]vecunits.Vector3[T, D, U1, U2, U3], 0, bm.GetCardinality())

	it := bm.Iterator()
	for it.HasNext() {
		i, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, err
		}
		if i >= len(vs) {
			return nil, fmt.Errorf("gather: index %d out of range [0, %d)", i, len(vs))
		}
		out = append(out, vs[i])
	}
	return out, nil
}

// Total returns the sum of vs in the layout of the result type.
// Each vector is converted into that layout before it is added.
func Total[T unit.Number, D unit.Dimension, U1, U2, U3 unit.Unit[D], V1, V2, V3 unit.Unit[D]](
	vs []vecunits.Vector3[T, D, V1, V2, V3],
) vecunits.Vector3[T, D, U1, U2, U3] {
	var acc vecunits.Vector3[T, D, U1, U2, U3]
	for _, v := range vs {
		acc = vecunits.Combine(acc, v)
	}
	return acc
}
