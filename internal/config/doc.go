// Package config loads scaffkit settings from .scaffkit.yaml, SCAFFKIT_*
// environment variables and defaults.
package config
