// Package web holds the static front end served on GET /.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
