// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, environment variables and bound
// command line flags. It provides type-safe access to settings needed by the
// logger and the display layer while keeping configuration details separate
// from the quantity logic.
package config
