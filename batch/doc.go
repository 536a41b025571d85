// Package batch materializes and filters many unit-tagged vectors at once.
//
// Evaluate materializes a slice of lazy expressions concurrently. The
// expressions are only read, so sharing operands between them is safe as
// long as nothing modifies those operands until Evaluate returns.
//
//	out, err := batch.Evaluate(ctx, exprs, batch.WithWorkers(4))
//
// Select returns the indices of matching vectors as a roaring bitmap, and
// Gather picks vectors back out by such a bitmap.
package batch
