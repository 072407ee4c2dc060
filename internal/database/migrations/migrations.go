package migrations

import "embed"

// Files contém os arquivos SQL aplicados pelo cmd/migrate
//
//go:embed cadastro_schema.sql
var Files embed.FS
