// Package loader decodes assessment documents from JSON, YAML or TOML files
package loader

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for a file extension with no decoder
var ErrUnsupportedFormat = goerr.New("unsupported assessment format")

// Format is the encoding of an assessment document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", goerr.Wrap(ErrUnsupportedFormat, "unknown file extension", goerr.V("path", path))
	}
}

// Decode reads one assessment document and validates it
func Decode(r io.Reader, format Format) (*model.Assessment, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read assessment")
	}

	var a model.Assessment
	switch format {
	case FormatJSON:
		err = json.Unmarshal(raw, &a)
	case FormatYAML:
		err = yaml.NewDecoder(bytes.NewReader(raw)).Decode(&a)
	case FormatTOML:
		err = toml.Unmarshal(raw, &a)
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "no decoder for format", goerr.V("format", format))
	}
	if err != nil {
		return nil, goerr.Wrap(model.ErrInvalidAssessment, "failed to decode assessment",
			goerr.V("format", format),
			goerr.V("error", err.Error()),
		)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Load decodes the assessment stored at path
func Load(path string) (*model.Assessment, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open assessment file", goerr.V("path", path))
	}
	defer func() { _ = f.Close() }()

	a, err := Decode(f, format)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load assessment", goerr.V("path", path))
	}
	return a, nil
}
