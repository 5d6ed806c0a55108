// Package rulepacks holds the rule packs compiled into the binaries.
package rulepacks

import "embed"

//go:embed *.yaml
var FS embed.FS
