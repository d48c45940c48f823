// Package config loads, normalizes, and validates sctime configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SCTIME_DATA_DIR. The Config type centralizes every knob the CLI needs so the
// session store, grid, capture, and logging components are configured in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
