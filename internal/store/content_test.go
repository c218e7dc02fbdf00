package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestInsertContent_Inserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`{"name":"Trouble Brewing"}`)
	inserted, err := s.InsertContent(ctx, CategoryMetadata, "g", "hash-1", payload)
	if err != nil {
		t.Fatalf("InsertContent() failed: %v", err)
	}
	if !inserted {
		t.Fatal("expected inserted=true for fresh row")
	}

	got, err := s.Payload(ctx, CategoryMetadata, "g")
	if err != nil {
		t.Fatalf("Payload() failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Payload() = %q, want %q (bit-exact round trip)", got, payload)
	}
}

func TestInsertContent_DuplicateHashConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.InsertContent(ctx, CategoryMetadata, "g", "hash-1", []byte(`{}`)); err != nil {
		t.Fatalf("first InsertContent() failed: %v", err)
	}

	// Same hash under a different id: the UNIQUE(hash) constraint loses the
	// race and the row must not land.
	inserted, err := s.InsertContent(ctx, CategoryMetadata, "x", "hash-1", []byte(`{}`))
	if err != nil {
		t.Fatalf("second InsertContent() failed: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for duplicate hash")
	}

	id, err := s.IDByHash(ctx, CategoryMetadata, "hash-1")
	if err != nil {
		t.Fatalf("IDByHash() failed: %v", err)
	}
	if id != "g" {
		t.Errorf("IDByHash() = %q, want %q (the first writer wins)", id, "g")
	}

	count, err := s.ContentCount(ctx, CategoryMetadata)
	if err != nil {
		t.Fatalf("ContentCount() failed: %v", err)
	}
	if count != 1 {
		t.Errorf("ContentCount() = %d, want 1", count)
	}
}

func TestInsertContent_DuplicateIDConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.InsertContent(ctx, CategoryMetadata, "g", "hash-1", []byte(`{}`)); err != nil {
		t.Fatalf("first InsertContent() failed: %v", err)
	}

	inserted, err := s.InsertContent(ctx, CategoryMetadata, "g", "hash-2", []byte(`{"b":1}`))
	if err != nil {
		t.Fatalf("second InsertContent() failed: %v", err)
	}
	if inserted {
		t.Error("expected inserted=false for id collision")
	}

	// The losing payload must not be reachable: its hash never landed.
	_, err = s.IDByHash(ctx, CategoryMetadata, "hash-2")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("IDByHash(colliding hash) err = %v, want sql.ErrNoRows", err)
	}
}

func TestInsertContent_CategoriesIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Identical id and hash in both categories: namespaces are independent,
	// so both inserts land.
	for _, cat := range Categories {
		inserted, err := s.InsertContent(ctx, cat, "g", "hash-1", []byte(`{}`))
		if err != nil {
			t.Fatalf("InsertContent(%s) failed: %v", cat, err)
		}
		if !inserted {
			t.Errorf("InsertContent(%s) = false, want true", cat)
		}
	}
}

func TestInsertContent_UnknownCategory(t *testing.T) {
	s := newTestStore(t)

	_, err := s.InsertContent(context.Background(), Category("bogus"), "g", "h", []byte(`{}`))
	if err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestPayload_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Payload(context.Background(), CategoryMetadata, "zzz")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Payload(absent id) err = %v, want sql.ErrNoRows", err)
	}
}

func TestHasContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.HasContent(ctx, CategoryRoles, "4")
	if err != nil {
		t.Fatalf("HasContent() failed: %v", err)
	}
	if ok {
		t.Error("HasContent(absent id) = true, want false")
	}

	if _, err := s.InsertContent(ctx, CategoryRoles, "4", "hash-r", []byte(`{}`)); err != nil {
		t.Fatalf("InsertContent() failed: %v", err)
	}

	ok, err = s.HasContent(ctx, CategoryRoles, "4")
	if err != nil {
		t.Fatalf("HasContent() failed: %v", err)
	}
	if !ok {
		t.Error("HasContent(existing id) = false, want true")
	}
}
