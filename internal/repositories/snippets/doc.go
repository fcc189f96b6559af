// Package snippets provides the persistence layer for named text snippets.
//
// # Overview
//
// Repository describes the four table operations the snippet store needs:
// an atomic upsert keyed on keyword, an exact-name lookup, a literal
// substring search over visible keywords and an ordered listing of visible
// rows. PostgresRepository (pgx) and SQLiteRepository (modernc.org/sqlite)
// implement it over a dbx.DBTX, so both run against *sql.DB or *sql.Tx.
//
// # Table
//
//	CREATE TABLE snippets (
//	    keyword TEXT PRIMARY KEY,
//	    message TEXT NOT NULL,
//	    hidden  BOOLEAN NOT NULL DEFAULT FALSE
//	);
//
// The table must exist before the repositories are used.
//
// # Concurrency
//
// Upsert is a single INSERT ... ON CONFLICT statement, so concurrent writers
// of the same new keyword are serialized by the database's uniqueness check
// and the last writer wins. No application-level locking is done.
package snippets
