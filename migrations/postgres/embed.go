// Package migrations embeds SQL migration files.
package migrations

import "embed"

// FS contains the application schema migrations.
//
//go:embed app/*.sql
var FS embed.FS

// Dir is the directory within FS where migrations live.
const Dir = "app"
