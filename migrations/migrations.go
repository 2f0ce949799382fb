// Package migrations holds the versioned schema applied by cmd/migrate.
package migrations

import "embed"

//go:embed *.sql atlas.sum
var FS embed.FS
