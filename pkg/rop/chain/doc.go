// Package chain builds typed sequential pipelines whose steps return
// (value, error). A pipeline feeds each step's value to the next and stops
// at the first step that fails or panics; the steps after it never run.
//
// Key operations:
// - Start/Then: begin a pipeline and append a step that may change the type
// - Map/Tee: append a step that cannot fail, or a success-only side effect
// - Pipe: same-typed steps in one call; Pipe2..Pipe4 for mixed types
// - Run: execute and get a rop.Result
// - Go: execute asynchronously and get a future of the output
// - RunIDFromContext: the id of the run a step belongs to, for logging
package chain
