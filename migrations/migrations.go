// Package migrations embeds the database schema for use by the server and
// the standalone migrator.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
