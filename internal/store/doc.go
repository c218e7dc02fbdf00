// Package store provides SQLite-backed durable storage for content records,
// script links, and allocator configuration.
//
// Three kinds of state are persisted:
//   - Content tables (metadata_data, roles_data): one row per distinct
//     payload per category, keyed by short id, deduplicated by SHA-256 hash
//     (UNIQUE constraint).
//   - Link table (scripts): idempotent many-to-many association between a
//     metadata id and a roles id, composite primary key.
//   - Config table: durable per-category id length counters, only ever
//     incremented.
//
// # Critical Patterns
//
// Insert-and-handle-conflict: all writes use INSERT ... ON CONFLICT DO
// NOTHING and report via RowsAffected whether the row landed. Callers treat
// a lost conflict as the expected concurrency signal, never as an error.
// There is no check-then-act anywhere in this package.
//
// Atomic counter growth: GrowIDLength issues a single relative
// UPDATE value = value + 1, so two concurrent growth events can never
// collapse into one lost update.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: link rows must reference existing content rows
package store
