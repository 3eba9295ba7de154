// Package solver implements the incremental, human-style strategy
// ladder: IncrementalSolve applies the first of twelve ordered
// deduction strategies that changes the board, exposing one step per
// call so a caller can animate or log the ladder's progress.
//
// The dispatcher is a tagged table of handlers routed by a closed
// StrategyTag enum, the same shape tsp.SolveWithMatrix uses to route
// Options.Algo to an algorithm function — a switch/table over a fixed
// set, not a plugin registry. Hypothetical-play strategies (9, 11, 12)
// clone the board into one scratch buffer reused across candidate
// cells within a single call, generalizing the "one arena per call"
// convention spec.md's design notes call out for strategy 10.
package solver
