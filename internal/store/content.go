package store

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertContent attempts to insert a content record and reports whether the
// row landed. Uses ON CONFLICT DO NOTHING, so a conflict on either unique
// column (id collision or duplicate hash) returns inserted=false rather than
// an error - conflicts are the caller's concurrency signal, which it
// disambiguates by re-reading with IDByHash.
//
// Other failures (malformed category, storage errors) are returned as-is.
func (s *Store) InsertContent(ctx context.Context, cat Category, id, hash string, payload []byte) (inserted bool, err error) {
	tbl, err := cat.table()
	if err != nil {
		return false, fmt.Errorf("insert content: %w", err)
	}

	res, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, hash, payload)
		VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING
	`, tbl), id, hash, payload)
	if err != nil {
		return false, fmt.Errorf("insert content: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert content: rows affected: %w", err)
	}
	return n > 0, nil
}

// IDByHash returns the id of the content record with the given hash.
// Returns sql.ErrNoRows if no record with that hash exists.
func (s *Store) IDByHash(ctx context.Context, cat Category, hash string) (string, error) {
	tbl, err := cat.table()
	if err != nil {
		return "", fmt.Errorf("id by hash: %w", err)
	}

	var id string
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id FROM %s WHERE hash = ?
	`, tbl), hash).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("id by hash: %w", err)
	}
	return id, nil
}

// Payload returns the payload of the content record with the given id.
// Returns sql.ErrNoRows if no record with that id exists.
func (s *Store) Payload(ctx context.Context, cat Category, id string) ([]byte, error) {
	tbl, err := cat.table()
	if err != nil {
		return nil, fmt.Errorf("payload: %w", err)
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT payload FROM %s WHERE id = ?
	`, tbl), id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("payload: %w", err)
	}
	return payload, nil
}

// HasContent reports whether a content record with the given id exists.
func (s *Store) HasContent(ctx context.Context, cat Category, id string) (bool, error) {
	tbl, err := cat.table()
	if err != nil {
		return false, fmt.Errorf("has content: %w", err)
	}

	var count int
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT COUNT(*) FROM %s WHERE id = ?
	`, tbl), id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("has content: %w", err)
	}
	return count > 0, nil
}

// ContentCount returns the number of content records in the category.
func (s *Store) ContentCount(ctx context.Context, cat Category) (int, error) {
	tbl, err := cat.table()
	if err != nil {
		return 0, fmt.Errorf("content count: %w", err)
	}

	var count int
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, tbl)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("content count: %w", err)
	}
	return count, nil
}
