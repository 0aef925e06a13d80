package storage

import (
	"context"
	"sort"
	"sync"
)

// Memory is the in-memory engine. A single RWMutex guards all state, so
// each call is atomic with respect to every other call.
type Memory struct {
	mu      sync.RWMutex
	records map[Kind]map[int][]byte
	pairs   map[Table][]Pair
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		records: make(map[Kind]map[int][]byte),
		pairs:   make(map[Table][]Pair),
	}
}

// Get implements Records.
func (m *Memory) Get(ctx context.Context, kind Kind, id int) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[kind][id]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// Put implements Records.
func (m *Memory) Put(ctx context.Context, kind Kind, id int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	coll, ok := m.records[kind]
	if !ok {
		coll = make(map[int][]byte)
		m.records[kind] = coll
	}
	coll[id] = data
	return nil
}

// Remove implements Records.
func (m *Memory) Remove(ctx context.Context, kind Kind, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	coll := m.records[kind]
	if _, ok := coll[id]; !ok {
		return ErrNotFound
	}
	delete(coll, id)
	return nil
}

// Scan implements Records. Results are ordered ascending by id.
func (m *Memory) Scan(ctx context.Context, kind Kind) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	coll := m.records[kind]
	out := make([]Record, 0, len(coll))
	for id, data := range coll {
		out = append(out, Record{ID: id, Data: data})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// InsertPair implements Pairs.
func (m *Memory) InsertPair(ctx context.Context, table Table, left, right int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pairs[table] = append(m.pairs[table], Pair{Left: left, Right: right})
	return nil
}

// DeletePairs implements Pairs.
func (m *Memory) DeletePairs(ctx context.Context, table Table, left, right int) error {
	return m.deleteWhere(table, func(p Pair) bool { return p.Left == left && p.Right == right })
}

// DeleteLeft implements Pairs.
func (m *Memory) DeleteLeft(ctx context.Context, table Table, left int) error {
	return m.deleteWhere(table, func(p Pair) bool { return p.Left == left })
}

// DeleteRight implements Pairs.
func (m *Memory) DeleteRight(ctx context.Context, table Table, right int) error {
	return m.deleteWhere(table, func(p Pair) bool { return p.Right == right })
}

func (m *Memory) deleteWhere(table Table, match func(Pair) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.pairs[table]
	kept := rows[:0]
	for _, p := range rows {
		if !match(p) {
			kept = append(kept, p)
		}
	}
	m.pairs[table] = kept
	return nil
}

// ScanPairs implements Pairs. Results are in insertion order.
func (m *Memory) ScanPairs(ctx context.Context, table Table) ([]Pair, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := m.pairs[table]
	out := make([]Pair, len(rows))
	copy(out, rows)
	return out, nil
}

// Close implements Store. The memory engine has nothing to release.
func (m *Memory) Close() error { return nil }
