// Package repo contains the storage adapters implementing src/core/ports.
//
//   - PostgresRepository persists Pokemon and reviews with pgx.
//   - MemoryRepository keeps everything in process, for local runs and tests.
//
// Both satisfy ports.Store and report a missing row as a domain not found error.
package repo
