// Package file provides a file-based implementation of driven.ConfigStore.
//
// The store reads config.toml (go-toml) or a .yaml/.yml file (yaml.v3) once
// and exposes nested tables as dot-notation keys such as
// "registry.primary_url". It never writes back.
package file
