// Package db embeds the SQL migrations so the API, the migration CLI and the
// restore path all run the same schema.
package db

import "embed"

// MigrationsDir is the directory of Migrations holding the *.up.sql and *.down.sql files.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
