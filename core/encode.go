package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Format is an output format for a ModList
type Format string

// The supported output formats. JSON is the default.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists every supported Format, in the order they are shown to users
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// ParseFormat looks up a Format by name, case-insensitively. An empty name selects JSON.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, name, formatNames())
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Encode writes the ModList to out in the given format
func (l ModList) Encode(out io.Writer, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	case FormatTOML:
		enc := toml.NewEncoder(out)
		// Disable indentation
		enc.Indent = ""
		return enc.Encode(l)
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// Write encodes the ModList and saves it to path, creating or truncating the file.
// Nothing is written if encoding fails.
func (l ModList) Write(fs afero.Fs, path string, format Format) error {
	var buf bytes.Buffer
	if err := l.Encode(&buf, format); err != nil {
		return fmt.Errorf("failed to encode mod list as %s: %w", format, err)
	}

	f, err := fs.Create(path)
	if err != nil {
		return &FileAccessError{Op: "create", Path: path, Err: err}
	}
	defer f.Close()

	if _, err := buf.WriteTo(f); err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileAccessError{Op: "close", Path: path, Err: err}
	}
	return nil
}
