// Package sqlite provides a persistent, SQLite-backed verse store.
//
// The store keeps one row per corpus verse: composite ID, chapter and
// verse numbers, the embedding text and the vector as a little endian
// float32 blob. Schema changes are applied through embedded migrations
// at open time. Ranking happens in process at query time; plain SQLite
// carries no vector index, and the corpus is small enough that a full
// scan per query is cheap.
package sqlite
