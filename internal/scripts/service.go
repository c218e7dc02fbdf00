package scripts

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/scriptbin/scriptbin/internal/ident"
	"github.com/scriptbin/scriptbin/internal/store"
)

const (
	// maxInsertAttempts bounds one StorePayload call's insert-retry loop.
	maxInsertAttempts = 10

	// growthThreshold is the number of consecutive id collisions that
	// triggers a durable widening of the category's length tier.
	growthThreshold = 3
)

// Service is the content-addressed storage core. It owns no global state:
// construct one per store, as many as tests need.
//
// Safe for concurrent use; the underlying store serializes conflicting
// writes at its unique constraints.
type Service struct {
	store *store.Store
	alloc *ident.Allocator
}

// New creates a Service on the given store and allocator.
func New(st *store.Store, alloc *ident.Allocator) *Service {
	return &Service{store: st, alloc: alloc}
}

// Digest returns the content hash used for deduplication: lowercase hex
// SHA-256 of the raw payload bytes. This is an on-disk compatibility
// commitment - changing it orphans every stored hash.
func Digest(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// StorePayload stores one payload in the category and returns its id.
// Identical payloads always resolve to the same id: if the payload's hash
// is already present, the existing id is returned and nothing is written.
//
// New payloads get a freshly allocated candidate id. The insert is
// attempted without pre-checking; a lost conflict is disambiguated by
// re-reading the hash (concurrent duplicate, return the winner's id) and
// otherwise counted as an id collision. Three consecutive collisions widen
// the category's length tier. After maxInsertAttempts the call fails with
// AllocationExhaustedError.
func (s *Service) StorePayload(ctx context.Context, cat store.Category, payload []byte) (string, error) {
	if !cat.Valid() {
		return "", fmt.Errorf("store payload: unknown category %q", string(cat))
	}
	if !json.Valid(payload) {
		return "", fmt.Errorf("store payload: %w", ErrInvalidJSON)
	}

	hash := Digest(payload)

	// Fast path: the payload is already stored.
	id, err := s.store.IDByHash(ctx, cat, hash)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("store payload: %w", err)
	}

	collisions := 0
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		length, err := s.store.IDLength(ctx, cat)
		if err != nil {
			return "", fmt.Errorf("store payload: %w", err)
		}

		candidate := s.alloc.Candidate(length)
		inserted, err := s.store.InsertContent(ctx, cat, candidate, hash, payload)
		if err != nil {
			return "", fmt.Errorf("store payload: %w", err)
		}
		if inserted {
			return candidate, nil
		}

		// Lost a conflict. A concurrent writer storing the same payload
		// is the expected race: their id is the canonical one.
		id, err := s.store.IDByHash(ctx, cat, hash)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("store payload: %w", err)
		}

		// Otherwise the candidate id was taken.
		collisions++
		if collisions >= growthThreshold {
			if _, err := s.store.GrowIDLength(ctx, cat); err != nil {
				return "", fmt.Errorf("store payload: %w", err)
			}
			collisions = 0
		}
	}

	return "", &AllocationExhaustedError{Category: cat, Attempts: maxInsertAttempts}
}

// FetchPayload returns the payload stored under id. Pure lookup, no side
// effects. Returns ErrNotFound for an absent id and MalformedPayloadError
// (a NotFound-equivalent) for a stored payload that no longer parses.
func (s *Service) FetchPayload(ctx context.Context, cat store.Category, id string) ([]byte, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("fetch payload: unknown category %q", string(cat))
	}

	payload, err := s.store.Payload(ctx, cat, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("fetch payload: category %q id %q: %w", cat, id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch payload: %w", err)
	}

	if !json.Valid(payload) {
		return nil, &MalformedPayloadError{Category: cat, ID: id}
	}
	return payload, nil
}

// RegisterLink records the association between a metadata id and a roles
// id. Idempotent: registering an existing pair is a no-op. Both ids must
// already exist in their content tables, otherwise ErrNotFound.
func (s *Service) RegisterLink(ctx context.Context, metadataID, rolesID string) error {
	ok, err := s.store.HasContent(ctx, store.CategoryMetadata, metadataID)
	if err != nil {
		return fmt.Errorf("register link: %w", err)
	}
	if !ok {
		return fmt.Errorf("register link: metadata id %q: %w", metadataID, ErrNotFound)
	}

	ok, err = s.store.HasContent(ctx, store.CategoryRoles, rolesID)
	if err != nil {
		return fmt.Errorf("register link: %w", err)
	}
	if !ok {
		return fmt.Errorf("register link: roles id %q: %w", rolesID, ErrNotFound)
	}

	if err := s.store.InsertLink(ctx, metadataID, rolesID); err != nil {
		return fmt.Errorf("register link: %w", err)
	}
	return nil
}

// IsLinked reports whether the pair (metadataID, rolesID) was registered.
// Pure existence check, no side effects.
func (s *Service) IsLinked(ctx context.Context, metadataID, rolesID string) (bool, error) {
	linked, err := s.store.HasLink(ctx, metadataID, rolesID)
	if err != nil {
		return false, fmt.Errorf("is linked: %w", err)
	}
	return linked, nil
}

// FetchLinkedPair returns both payloads of a registered pair. A pair that
// was never registered yields ErrNotFound even when both ids exist - a
// guessed or mistyped combination must not look like a valid script.
func (s *Service) FetchLinkedPair(ctx context.Context, metadataID, rolesID string) (metadata, roles []byte, err error) {
	linked, err := s.store.HasLink(ctx, metadataID, rolesID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch linked pair: %w", err)
	}
	if !linked {
		return nil, nil, fmt.Errorf("fetch linked pair: (%s, %s): %w", metadataID, rolesID, ErrNotFound)
	}

	metadata, err = s.FetchPayload(ctx, store.CategoryMetadata, metadataID)
	if err != nil {
		return nil, nil, err
	}
	roles, err = s.FetchPayload(ctx, store.CategoryRoles, rolesID)
	if err != nil {
		return nil, nil, err
	}
	return metadata, roles, nil
}

// Counts reports per-category content rows, the current id lengths, and
// the number of registered links. Diagnostic surface for the status
// command.
func (s *Service) Counts(ctx context.Context) (map[store.Category]CategoryStatus, int, error) {
	out := make(map[store.Category]CategoryStatus, len(store.Categories))
	for _, cat := range store.Categories {
		count, err := s.store.ContentCount(ctx, cat)
		if err != nil {
			return nil, 0, fmt.Errorf("counts: %w", err)
		}
		length, err := s.store.IDLength(ctx, cat)
		if err != nil {
			return nil, 0, fmt.Errorf("counts: %w", err)
		}
		out[cat] = CategoryStatus{Records: count, IDLength: length}
	}

	links, err := s.store.LinkCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counts: %w", err)
	}
	return out, links, nil
}

// CategoryStatus summarizes one content namespace.
type CategoryStatus struct {
	Records  int
	IDLength uint
}
