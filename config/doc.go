// Package config handles loading and parsing of the experiment document
// from YAML files and environment variables. The top-level Experiment block
// holds the hub logging level, the startup tip locale, and one settings
// block per monitored device.
package config
