// Package solo contains single-value, synchronous combinators over
// rop.Result. Map, Try and Switch capture a panicking callback as a
// failure. Tee, Finally, Join and ValidateAll call their callbacks directly
// and let a panic propagate.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: turn predicates into failures
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side effects on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Join: fold same-typed steps over a result, optionally stopping at the first failure
package solo
