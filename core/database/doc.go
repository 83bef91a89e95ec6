// Package database opens the read-only database that can serve as a title corpus.
//
// It wraps GORM and supports two dialects: MySQL (a shared metadata database) and
// SQLite (a local file written by an earlier export). Nothing in this module writes
// to the database.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns check that a configured table carries the
// columns a corpus query needs before the query runs, so a misconfigured table name
// fails with a clear message instead of a driver error.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	missing, err := database.MissingColumns(db, "issues", "title", "detail_url")
package database
