// Package migrations embeds the SQL schema files for the verse store.
package migrations

import "embed"

// FS holds the ordered *.sql migration files applied at store open.
//
//go:embed *.sql
var FS embed.FS
