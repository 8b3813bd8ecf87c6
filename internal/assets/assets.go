// Package assets embeds files shipped with the binary.
package assets

import "embed"

// Presets holds bundled IPOPT options-file presets. Point IPOPT at one with
// option_file_name, or crib lines from them into OF_* options.
//
//go:embed presets
var Presets embed.FS
