// Package entrant owns the competitors of a timing session and their laps.
//
// An Entrant is one competitor: a dense integer identity (its grid column), a
// name, a vehicle number and the ordered list of lap durations in seconds.
// A Collection is the single owner of every Entrant added to it. It keeps
// identities contiguous (0..Count()-1) across removals, mediates every lap
// mutation, and reports each change to subscribers as a (column, row) pair.
//
// Readers outside the mutation path use Snapshot or the lookup methods, which
// return independent copies; changing a copy never affects the collection.
//
// The package is single-threaded by contract: callers drive it from one
// goroutine and subscribers are invoked synchronously before the mutating
// call returns.
package entrant
