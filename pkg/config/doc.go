// Package config handles configuration management for aoc.
// It supports loading configuration from multiple sources including
// TOML files, environment variables, and command-line flags.
package config
