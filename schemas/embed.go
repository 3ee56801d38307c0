// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the SQL migration files of each dialect under migrations/<dialect>/.
// Each file holds one statement and files run in name order.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS
