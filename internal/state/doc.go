// Package state holds the single client-side snapshot of pairing data.
//
// # Overview
//
// The Store is the only owner of ClientState: the pairing record, the
// partner record, and both wishlists. Every other component reads through
// Snapshot() and writes through one of the enumerated mutators; no other
// code path touches the data.
//
// # Mutation Policy
//
// Duet applies confirm-before-apply rather than apply-then-rollback: a
// mutator runs only after its command succeeded against the service, so no
// rollback logic exists anywhere. On any failure the snapshot is simply
// left alone and the view keeps showing the last confirmed state.
//
// Mutators are total and synchronous (a slice is replaced whole, never
// partially), idempotent under repeated identical input, and never return
// errors: removing an id that is not present is a no-op, because the
// service, not this store, decides what is valid.
//
// # Concurrency Model
//
// Bubble Tea runs commands on their own goroutines while the update loop
// reads state, so the Store guards the snapshot with a readers-writer
// lock and both Snapshot and the mutators copy defensively:
//
//   - wishlist slices are cloned, not aliased
//   - pair, partner and stats records are copied before they cross the
//     package boundary
//
// The lock is held only for the copy, never across network calls or
// rendering. Concurrent in-flight commands are not serialized against each
// other; each applies its own mutation when its response lands, in
// completion order.
//
// # Zero Value
//
// A zero Store is ready to use. Initialized stays false until the first
// SetPairing, which lets the UI distinguish "still connecting" from "no
// pairing exists".
package state
