package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record id is absent from its collection.
var ErrNotFound = errors.New("record not found")

// Kind names a record collection.
type Kind string

const (
	KindUser         Kind = "user"
	KindRole         Kind = "role"
	KindProject      Kind = "project"
	KindTask         Kind = "task"
	KindCategory     Kind = "category"
	KindComment      Kind = "comment"
	KindAttachment   Kind = "attachment"
	KindNotification Kind = "notification"
)

// Table names an association table.
type Table string

const (
	TableUserRoles      Table = "user_roles"
	TableTaskCategories Table = "task_categories"
)

// Record is one scanned row of a record collection.
type Record struct {
	ID   int
	Data []byte
}

// Pair is one row of an association table.
type Pair struct {
	Left  int
	Right int
}

// Records is the record-collection half of the storage contract.
type Records interface {
	// Get returns the document stored under (kind, id), or ErrNotFound.
	Get(ctx context.Context, kind Kind, id int) ([]byte, error)
	// Put stores the document under (kind, id), replacing any previous one.
	Put(ctx context.Context, kind Kind, id int, data []byte) error
	// Remove deletes the document under (kind, id), or returns ErrNotFound.
	Remove(ctx context.Context, kind Kind, id int) error
	// Scan returns every document of the collection, ascending by id.
	Scan(ctx context.Context, kind Kind) ([]Record, error)
}

// Pairs is the association-table half of the storage contract.
type Pairs interface {
	// InsertPair appends a row. Duplicates are permitted.
	InsertPair(ctx context.Context, table Table, left, right int) error
	// DeletePairs removes every row matching (left, right). Removing a
	// pair that was never inserted is not an error.
	DeletePairs(ctx context.Context, table Table, left, right int) error
	// DeleteLeft removes every row whose left id matches.
	DeleteLeft(ctx context.Context, table Table, left int) error
	// DeleteRight removes every row whose right id matches.
	DeleteRight(ctx context.Context, table Table, right int) error
	// ScanPairs returns every row of the table in insertion order.
	ScanPairs(ctx context.Context, table Table) ([]Pair, error)
}

// Store is the full collaborator handed to the repositories.
type Store interface {
	Records
	Pairs
	Close() error
}
