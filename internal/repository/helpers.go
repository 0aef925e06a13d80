package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/crewdesk/crewdesk/internal/storage"
)

func getRecord[T any](ctx context.Context, s storage.Store, kind storage.Kind, id int) (*T, error) {
	data, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", kind, id, err)
	}
	return &v, nil
}

func putRecord[T any](ctx context.Context, s storage.Store, kind storage.Kind, id int, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s %d: %w", kind, id, err)
	}
	return s.Put(ctx, kind, id, data)
}

func scanRecords[T any](ctx context.Context, s storage.Store, kind storage.Kind) ([]T, error) {
	recs, err := s.Scan(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		var v T
		if err := json.Unmarshal(rec.Data, &v); err != nil {
			return nil, fmt.Errorf("decode %s %d: %w", kind, rec.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// scanWhere returns the records matching keep, preserving scan order.
func scanWhere[T any](ctx context.Context, s storage.Store, kind storage.Kind, keep func(*T) bool) ([]T, error) {
	all, err := scanRecords[T](ctx, s, kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func existsRecord(ctx context.Context, s storage.Store, kind storage.Kind, id int) (bool, error) {
	_, err := s.Get(ctx, kind, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func countRecords(ctx context.Context, s storage.Store, kind storage.Kind) (int, error) {
	recs, err := s.Scan(ctx, kind)
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}
