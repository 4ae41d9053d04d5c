// Package migrations embeds the schema of the timezones table, one directory
// per SQL dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
