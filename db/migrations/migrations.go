package migrations

import "embed"

// FS holds the SQL migrations read by golang-migrate through the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 1
