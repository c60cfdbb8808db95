// Package config loads runtime settings for binaries built on rootdi.
//
// Values are layered, lowest precedence first: built-in defaults, an optional
// YAML file, an optional .env file, and ROOTDI_* environment variables. Nested
// keys map to variables by replacing dots with underscores, so logging.level
// is read from ROOTDI_LOGGING_LEVEL.
package config
