// Copyright (c) 2025 QuickVote contributors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists elections and receipts as JSON documents in a
key-value table.

# Persistence model

The full election map lives under a single key (ElectionsKey) and is
rewritten wholesale on every mutation. This is a deliberate single-writer
document model, not a relational one: ElectionStore.Update serializes
read-modify-write cycles so that a cast vote (counter increment, ballot
append, code flip) lands in one write, and concurrent writers degrade to
last-write-wins, never to a torn document.

An absent or corrupt document is ALWAYS treated as an empty store. Parse
faults are logged, never returned.

Receipts are small per-(election, device) documents under their own keys.

# Backends

Open selects a backend by type:

	kv, err := store.Open("sqlite", "quickvote.db")
	kv, err := store.Open("postgres", "postgres://...")
	kv, err := store.Open("memory", "")

SQLite (modernc.org/sqlite, pure Go) is the default and keeps the whole
service a single local file. Postgres shares the same single-table schema.
MemoryKV backs tests.
*/
package store
