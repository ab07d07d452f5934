package parse

// Package parse wires the TOML engine to its input sources and output
// formats. Parsing semantics live entirely in the toml subpackage; this
// layer labels sources for diagnostics and renders parsed trees as
// ordered JSON or YAML.

import (
	"io"
	"os"

	"github.com/dzjyyds666/tomlq/parse/toml"
)

// =========================
// Input Sources
// =========================

// String parses a document held in memory. Errors are labeled "<string>".
func String(input string) (*toml.Table, error) {
	return toml.ParseNamed(input, "<string>")
}

// Reader drains r and parses the content. Read failures surface as io
// errors labeled "<stream>".
func Reader(r io.Reader) (*toml.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &toml.Error{Kind: toml.ErrIO, Source: "<stream>", Msg: err.Error(), Err: err}
	}
	return toml.ParseNamed(string(data), "<stream>")
}

// File reads and parses the file at path. The path labels error positions,
// so messages come out as path:line:column.
func File(path string) (*toml.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &toml.Error{Kind: toml.ErrIO, Source: path, Msg: err.Error(), Err: err}
	}
	return toml.ParseNamed(string(data), path)
}
