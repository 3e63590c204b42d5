// ABOUTME: Embedded SQL migrations for the measurements database.
// ABOUTME: Applied by goose on every open; idempotent across sessions.
package migrations

import "embed"

// FS embeds all SQL migration files in this directory.
//
//go:embed *.sql
var FS embed.FS
