// Package web embeds the static assets served by the HTTP adapter.
package web

import "embed"

//go:embed static
var Static embed.FS
