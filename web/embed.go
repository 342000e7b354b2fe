// Package web provides the embedded single-page front end served by
// `oddsight serve`.
package web

import "embed"

// Assets holds the page under dist/. It talks only to the JSON API.
//
//go:embed all:dist
var Assets embed.FS
