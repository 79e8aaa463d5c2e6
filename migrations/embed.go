package migrations

import "embed"

// Files stores forward-only SQL migrations embedded into the binary, one
// directory per supported dialect.
//
//go:embed postgres/*.sql sqlite/*.sql
var Files embed.FS
