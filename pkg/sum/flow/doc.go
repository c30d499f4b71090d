// Package flow runs independent validation checks concurrently while keeping
// the combined outcome deterministic: results are reassembled in declaration
// order before folding valid.Concat left to right, so accumulated error
// sequences are identical to the sequential fold.
//
// Common usage:
// - Gather: run checks with failure payload error over a worker pool
// - GatherWith: same for an arbitrary failure payload type
// - core.WithWorkerOptions: bound the pool size via context
package flow
