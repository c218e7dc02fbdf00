package store

import (
	"context"
	"fmt"
)

// IDLength returns the category's current id length.
func (s *Store) IDLength(ctx context.Context, cat Category) (uint, error) {
	if !cat.Valid() {
		return 0, fmt.Errorf("id length: unknown category %q", string(cat))
	}

	var length uint
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM config WHERE key = ?
	`, cat.lengthKey()).Scan(&length)
	if err != nil {
		return 0, fmt.Errorf("id length: %w", err)
	}
	return length, nil
}

// GrowIDLength durably increments the category's id length by one and
// returns the new value.
//
// The increment is a single relative UPDATE (value = value + 1), never a
// read-modify-write pair, so two concurrent growth events cannot collapse
// into one lost update. The counter is monotonic: nothing ever decreases it.
func (s *Store) GrowIDLength(ctx context.Context, cat Category) (uint, error) {
	if !cat.Valid() {
		return 0, fmt.Errorf("grow id length: unknown category %q", string(cat))
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE config SET value = value + 1 WHERE key = ?
	`, cat.lengthKey())
	if err != nil {
		return 0, fmt.Errorf("grow id length: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("grow id length: rows affected: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("grow id length: counter %q missing", cat.lengthKey())
	}

	// Separate read is fine: the increment above already happened
	// atomically, this only reports where the counter landed.
	return s.IDLength(ctx, cat)
}
