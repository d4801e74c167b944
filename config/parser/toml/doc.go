// Package toml provides a TOML parser implementation for the config package,
// based on github.com/pelletier/go-toml/v2.
package toml
