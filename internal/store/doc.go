// Package store provides SQLite-backed history of conformance runs.
//
// Each run records one enumeration's Report: a summary row in runs and one
// row per check in check_results. Runs are append-only.
//
// # Ordering
//
// Runs are ordered by seq, a logical counter assigned at write time, and
// ties never occur. Queries always ORDER BY seq ASC, id COLLATE BINARY ASC.
// Run IDs are UUIDv7, so their embedded timestamp is informational only.
//
// # Schema
//
// schema.sql holds the base tables. Later changes are entries of migrations,
// applied in order past PRAGMA user_version when the store is opened. The
// database runs in WAL mode with foreign keys enforced and a 5 second busy
// timeout.
//
// Seeds are stored as decimal TEXT because SQLite integers are signed.
package store
