// Package migrations embeds the SQL migration files for the rental schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
