// Package ranking defines the contest ranking record model and its
// SQLite-backed storage. It includes:
//   - Record model and Store interface
//   - SQLiteStore: durable storage for ranking records
//   - Schema helpers to create the rankings table
//   - The storage error taxonomy shared by the rest of the module
package ranking
