package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestIDLength_InitializedToOne(t *testing.T) {
	s := newTestStore(t)

	for _, cat := range Categories {
		length, err := s.IDLength(context.Background(), cat)
		if err != nil {
			t.Fatalf("IDLength(%s) failed: %v", cat, err)
		}
		if length != 1 {
			t.Errorf("IDLength(%s) = %d, want 1", cat, length)
		}
	}
}

func TestGrowIDLength(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	grown, err := s.GrowIDLength(ctx, CategoryMetadata)
	if err != nil {
		t.Fatalf("GrowIDLength() failed: %v", err)
	}
	if grown != 2 {
		t.Errorf("GrowIDLength() = %d, want 2", grown)
	}

	length, err := s.IDLength(ctx, CategoryMetadata)
	if err != nil {
		t.Fatalf("IDLength() failed: %v", err)
	}
	if length != 2 {
		t.Errorf("IDLength() = %d, want 2 after growth", length)
	}
}

func TestGrowIDLength_PerCategoryIndependent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.GrowIDLength(ctx, CategoryMetadata); err != nil {
		t.Fatalf("GrowIDLength(metadata) failed: %v", err)
	}

	length, err := s.IDLength(ctx, CategoryRoles)
	if err != nil {
		t.Fatalf("IDLength(roles) failed: %v", err)
	}
	if length != 1 {
		t.Errorf("IDLength(roles) = %d, want 1 (metadata growth must not leak)", length)
	}
}

func TestIDLength_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := s1.GrowIDLength(ctx, CategoryRoles); err != nil {
		t.Fatalf("GrowIDLength() failed: %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	length, err := s2.IDLength(ctx, CategoryRoles)
	if err != nil {
		t.Fatalf("IDLength() failed: %v", err)
	}
	if length != 2 {
		t.Errorf("IDLength() = %d after reopen, want 2 (growth is durable)", length)
	}
}

func TestGrowIDLength_UnknownCategory(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GrowIDLength(context.Background(), Category("bogus")); err == nil {
		t.Error("expected error for unknown category")
	}
}
