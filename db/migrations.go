// Package db holds the Postgres schema, the sqlc query sources and the
// generated query package.
package db

import "embed"

// Migrations contains the ordered *.up.sql / *.down.sql schema files
//
//go:embed migrations/*.sql
var Migrations embed.FS
