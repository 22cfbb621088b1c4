// Package config loads shelf's configuration.
//
// # Overview
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. The TOML file, ~/.config/shelf/config.toml unless a path is given
//  3. SHELF_* environment variables
//
// A missing file is not an error. A file that exists but fails to parse, or a
// final configuration that fails validation, is.
//
// # Keys
//
//	api_url               base URL of the book service, including any path prefix
//	max_publication_year  upper bound for the save form (0 = built-in bound)
//	request_timeout       per-request timeout, Go duration ("5s"; empty = none)
//	log_file              zap JSON log destination
//	log_level             debug, info, warn or error
//	refresh_every         periodic list refresh, Go duration (empty = off)
//
// The matching environment variables are SHELF_API_URL,
// SHELF_MAX_PUBLICATION_YEAR, SHELF_REQUEST_TIMEOUT, SHELF_LOG_FILE,
// SHELF_LOG_LEVEL and SHELF_REFRESH_EVERY.
//
// # Path Expansion
//
// Paths beginning with ~ are expanded against the user's home directory and
// made absolute.
package config
