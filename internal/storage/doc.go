// Package storage provides the storage collaborator consumed by the
// repositories: keyed record collections plus the two association tables.
//
// The contract is deliberately small. Records are opaque JSON documents
// keyed by (Kind, id) where the id is always caller-assigned; the engine
// never generates keys. Association tables hold bare (left, right) id
// pairs with no uniqueness constraint: inserting the same pair twice
// yields two rows, and callers depend on that.
//
// Two engines implement the contract:
//
//   - Memory: mutex-guarded maps and slices, for tests and ephemeral use
//   - SQLite: a single-file database, for the CLI's persistent state
//
// Both return deterministic scan orders: records ascending by id, pairs in
// insertion order.
package storage
