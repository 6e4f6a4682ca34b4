// Package migrations embeds the SQL migrations so the binaries and the
// repository tests share one schema.
package migrations

import "embed"

const PostgresDir = "postgres"

//go:embed postgres/*.sql
var FS embed.FS
