// Package migrations embeds the goose SQL migrations for the lorebook schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
