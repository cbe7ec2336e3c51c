// Package hcl is the HCL-specific implementation of the config.Loader
// interface. It parses plan files with hclparse, decodes them through a
// gohcl schema, and translates the result into the format-agnostic
// config.Model.
package hcl
