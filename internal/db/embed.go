package db

import "embed"

// migrationsFS holds the schema migrations compiled into the binary, so a
// deployment is never missing its migration files.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
