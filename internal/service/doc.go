// Package service implements the relational-integrity core: the rules
// that decide when an entity may be created, linked, mutated or removed
// given the state of everything it references.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     repository dependencies
//   - Every mutating operation first runs its existence checks
//     (requirePresent/requireAbsent in guard.go), then writes
//   - Errors are returned as sentinel errors from errors.go
//   - Context is passed through to the storage collaborator
//
// # Identifiers
//
// Entity ids are caller-assigned, never generated. A create with a
// taken id fails Err<Kind>Exists; an update or delete of an absent id
// fails Err<Kind>NotFound.
//
// # The list-empty rule
//
// Listing a store with zero rows is an error (Err<Kind>ListEmpty), not
// an empty success. Derived queries apply the same gate against the
// global store, not against their filtered result: a non-empty store
// whose filter matches nothing returns an empty list. The identity
// queries ByEmailDomain and ByFullName are the exception and fail
// ErrUserNotFound on an empty match set. These asymmetries come from
// the system this one replaces and are kept deliberately.
//
// # Concurrency
//
// Core shares one RWMutex across all services. Mutations hold the
// write lock for their whole check-then-write sequence, reads hold the
// read lock, so concurrent creates with the same id cannot both
// succeed.
package service
