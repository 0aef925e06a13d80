// Package repository implements typed data access over the storage
// collaborator.
//
// Each repository wraps one record collection: it encodes and decodes the
// entity's JSON document and exposes the field scans its service needs
// (ByUserName, ByProject, ...). Repositories never check preconditions;
// existence and uniqueness rules live in the service layer. Absence is
// reported as storage.ErrNotFound.
//
// The Links repository wraps the two association tables; it is shared by
// the association service and by the cascade paths that clear link rows
// when an endpoint entity is deleted.
package repository
