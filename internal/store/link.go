package store

import (
	"context"
	"fmt"
)

// InsertLink records the association between a metadata id and a roles id.
// Uses ON CONFLICT DO NOTHING for idempotency - re-registering an existing
// pair is a silent no-op, never an error.
//
// Both ids must reference existing content rows; the foreign key constraints
// reject orphaned links (the service layer checks first and returns a typed
// not-found, the constraint backstops races with external deletion).
func (s *Store) InsertLink(ctx context.Context, metadataID, rolesID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scripts (metadata_id, roles_id)
		VALUES (?, ?)
		ON CONFLICT (metadata_id, roles_id) DO NOTHING
	`, metadataID, rolesID)
	if err != nil {
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// HasLink reports whether the pair (metadataID, rolesID) is registered.
func (s *Store) HasLink(ctx context.Context, metadataID, rolesID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM scripts
		WHERE metadata_id = ? AND roles_id = ?
	`, metadataID, rolesID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check link: %w", err)
	}
	return count > 0, nil
}

// LinkCount returns the number of registered links.
func (s *Store) LinkCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scripts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("link count: %w", err)
	}
	return count, nil
}
