// Package worker spawns goroutines that own their input and lets the caller
// wait for them.
//
// Spawn hands a worker its argument bundle and returns a Handle; Join blocks
// until the worker has returned. There is no cancellation, result channel or
// error path on a single worker. Group runs several named runners at once and
// collects their errors.
package worker
