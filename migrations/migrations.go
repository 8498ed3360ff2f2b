// Package migrations embeds the goose SQL migrations so they can be
// applied at startup and from the test helper without a filesystem path.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
