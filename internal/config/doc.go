// Package config loads, normalizes, and validates subdesk configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// SUBDESK_SUBTITLE_PATHS. The [host] section doubles as the host environment
// the settings service reconciles against: installed providers, the raw
// comma-separated subtitle folder list, and the UI language.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
