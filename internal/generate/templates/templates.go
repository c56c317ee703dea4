package templates

import "embed"

// FS holds the file skeletons generated artifacts are rendered into.
//
//go:embed *.tmpl
var FS embed.FS
