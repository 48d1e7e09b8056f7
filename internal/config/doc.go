// Package config loads, normalizes, and validates ytfetch configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files from the XDG config home or the working
// directory, and honours environment overrides such as YTFETCH_OUTPUT_DIR.
// A missing file is not an error: the defaults reproduce the built-in job
// policy exactly.
package config
