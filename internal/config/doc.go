// Package config defines the format-agnostic configuration model for a
// training run, along with the Loader interface for reading it from a
// concrete source. The `config.Model` is the single source of truth for the
// `driver` package; format-specific loading (HCL) lives in a separate
// package.
package config
