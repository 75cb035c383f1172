// Package db provides database connectivity helpers and migration support.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"
)

// poolMode selects the write-safety profile of a SQLite pool.
type poolMode string

const (
	poolWrite poolMode = "write"
	poolRead  poolMode = "read"
)

// Hardened DSN parameters shared by both pools.
const (
	busyTimeoutMs = "5000"
	synchronous   = "NORMAL"
	journalMode   = "WAL"
)

// OpenSQLitePair opens the write pool (single connection, immediate
// transactions) and the read pool for the same SQLite file. SQLite allows
// one writer at a time; funneling all writes through one connection turns
// lock contention into queuing, while reads fan out over their own pool.
//
// readMaxOpen controls the read pool size (0 defaults to 4).
func OpenSQLitePair(path string, readMaxOpen int) (writeDB, readDB *sql.DB, err error) {
	writeDB, err = openSQLite(path, poolWrite, 1)
	if err != nil {
		return nil, nil, err
	}

	if readMaxOpen <= 0 {
		readMaxOpen = 4
	}
	readDB, err = openSQLite(path, poolRead, readMaxOpen)
	if err != nil {
		_ = writeDB.Close()
		return nil, nil, err
	}

	return writeDB, readDB, nil
}

func openSQLite(path string, mode poolMode, maxOpen int) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildDSN(path, mode))
	if err != nil {
		return nil, fmt.Errorf("open sqlite (%s): %w", mode, err)
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite (%s): %w", mode, err)
	}

	return db, nil
}

// buildDSN constructs a SQLite DSN with WAL journaling, a 5s busy timeout,
// and foreign keys on. The write pool additionally takes immediate
// transaction locks so writers fail fast instead of deadlocking.
func buildDSN(path string, mode poolMode) string {
	params := url.Values{}
	params.Set("_journal_mode", journalMode)
	params.Set("_busy_timeout", busyTimeoutMs)
	params.Set("_synchronous", synchronous)
	params.Set("_foreign_keys", "on")

	if mode == poolWrite {
		params.Set("_txlock", "immediate")
	}

	return path + "?" + params.Encode()
}
