// Package migrations embeds the SQL schema migrations so the server
// binary can apply them on start without a separate tool.
package migrations

import "embed"

// FS holds the goose SQL migration files.
//
//go:embed *.sql
var FS embed.FS
