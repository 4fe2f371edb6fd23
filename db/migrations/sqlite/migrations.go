package sqlite

import "embed"

// FS embeds the SQLite migration files stored in this directory.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the sqlite store migrates to.
const Version = 1
