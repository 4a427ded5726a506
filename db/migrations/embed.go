// Package migrations embeds the catalog schema so the API binary can
// create tables on first run.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
