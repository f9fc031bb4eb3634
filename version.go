package decaytable

import _ "embed"

// Version is the release of the decaytable module.
//
//go:embed VERSION
var Version string
