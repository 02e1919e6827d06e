// Package document provides the in-memory line sequence of the file
// being edited.
//
// Lines live in an arena of records addressed by Handle values. Each
// record holds the line buffer and the handles of its neighbours, so
// removing a line never leaves a dangling reference: a removed handle
// simply stops being valid and its slot is recycled.
//
// The document caches its head, tail and line count so boundary edits
// are O(1). Row lookups walk the chain from the nearer end.
//
// Invariants kept by every mutating method:
//
//   - Count() >= 1
//   - Count() equals the number of lines reachable from Head()
//   - every line except Tail() ends with '\n'
//
// Validate checks all of them and is meant for tests and debugging.
package document
