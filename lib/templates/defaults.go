package templates

import "embed"

// Eclipse settings used when the project has no template directory of its own.
//
//go:embed defaults
var defaultsFS embed.FS
