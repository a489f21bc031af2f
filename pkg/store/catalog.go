package store

import (
	"context"
	"fmt"

	"github.com/umputun/chow/pkg/domain"
)

// catalog content operations

// Snapshot returns the current immutable catalog view. The result is cached
// and shared across requests until the catalog version moves, callers must
// treat it as read-only. A read failure maps to ErrCatalogUnavailable.
func (s *Store) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	if s.snap != nil && s.snap.Version == s.version {
		snap := s.snap
		s.mu.RUnlock()
		return snap, nil
	}
	version := s.version // the version this read is for
	s.mu.RUnlock()

	var records []itemRecord
	err := s.conn.SelectContext(ctx, &records, "SELECT * FROM items ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("%w: select items: %v", ErrCatalogUnavailable, err)
	}

	items := make([]domain.Item, len(records))
	for i := range records {
		items[i] = records[i].toDomain()
	}

	if s.readHook != nil {
		s.readHook()
	}

	snap := &domain.Snapshot{Items: items, Version: version}

	s.mu.Lock()
	defer s.mu.Unlock()
	// a replace may have landed after the read started, caching the read
	// under the new version would serve stale content until the next bump
	if s.version == version {
		s.snap = snap
	}
	return snap, nil
}

// ReplaceItems swaps the full catalog content in one transaction and bumps
// the catalog version, invalidating cached snapshots and derived feature
// spaces
func (s *Store) ReplaceItems(ctx context.Context, items []domain.Item) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}

	query := `
		INSERT INTO items (id, name, brand, condition, weight_lb, weight_kg, price, calories, breed, size, life_stage, picture)
		VALUES (:id, :name, :brand, :condition, :weight_lb, :weight_kg, :price, :calories, :breed, :size, :life_stage, :picture)
	`
	for _, item := range items {
		rec := toRecord(item)
		if _, err := tx.NamedExecContext(ctx, query, rec); err != nil {
			return fmt.Errorf("insert item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit items: %w", err)
	}

	s.mu.Lock()
	s.version++
	s.snap = nil
	s.mu.Unlock()
	return nil
}

// Count returns the number of catalog items
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.conn.GetContext(ctx, &count, "SELECT count(*) FROM items"); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}
