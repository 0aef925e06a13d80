package service

import "context"

// existsFunc is a single-entity existence lookup. Every repository
// satisfies it with its Exists method.
type existsFunc func(ctx context.Context, id int) (bool, error)

// requirePresent fails with missing when no entity with the given id is
// stored. Used before updates, deletes and parent-reference writes.
func requirePresent(ctx context.Context, exists existsFunc, id int, missing error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return missing
	}
	return nil
}

// requireAbsent fails with taken when an entity with the given id is
// already stored. Used before creates.
func requireAbsent(ctx context.Context, exists existsFunc, id int, taken error) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if ok {
		return taken
	}
	return nil
}
