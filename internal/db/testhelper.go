package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"salonhub/internal/domain"
)

// OpenTestSQLite opens a hardened SQLite write/read pool pair backed by a
// file in t.TempDir(), migrates the salonhub schema on the write pool, and
// registers cleanup.
//
// Tests that don't need the read/write split can use writeDB for everything.
func OpenTestSQLite(t *testing.T) (writeDB, readDB *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "salonhub-test.sqlite")

	writeDB, readDB, err := OpenSQLitePair(path, 4)
	if err != nil {
		t.Fatalf("open test sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = readDB.Close()
		_ = writeDB.Close()
	})

	if err := RunMigrations(t.Context(), writeDB); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}

	return writeDB, readDB
}

// SeedTestSalon inserts a salon row directly and returns its ID. It exists
// for tests whose subject is some other table but whose rows need a salon to
// satisfy the foreign key.
func SeedTestSalon(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	id := domain.NewID()
	_, err := conn.ExecContext(t.Context(),
		`INSERT INTO salons (id, name, timezone, active, created_at) VALUES (?, ?, ?, 1, ?)`,
		id, name, "UTC", time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("seed test salon: %v", err)
	}
	return id
}
