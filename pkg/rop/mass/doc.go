// Package mass applies a function to every element of a slice and collects
// one rop.Result per element, in input order. Elements fail independently.
//
// Concurrency is unbounded unless limited through Opts or the worker options
// carried by the context (see package core). Opts can also rate limit how
// fast elements start.
package mass
