// Package core holds settings shared by the concurrent combinators. Worker
// limits travel in the context so that a caller can bound every bulk call
// made below a given point without threading options through each one.
package core
