// Package config loads the safeprint CLI's defaults from
// ~/.config/safeprint/config.toml.
//
// The core library takes no configuration of its own; this file only
// spares repetitive flags when the CLI is used interactively. Every
// field is optional:
//
//	log_file = "~/.local/share/safeprint/safeprint.log"
//	lines_limit = 10000
//	timestamp = true
//	prefix_color = "GREEN"
//	label_color = "RED"
//	theme = "Nightfox"
//
// A missing config file is not an error — defaults apply, so the CLI
// works without any setup. Paths support tilde expansion and values
// are whitespace-trimmed. Flags override whatever the file says.
package config
