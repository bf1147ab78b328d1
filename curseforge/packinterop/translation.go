package packinterop

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"

	"github.com/packwiz/curseconverter/core"
	"github.com/spf13/afero"
)

var zipMagic = []byte("PK\x03\x04")

// OpenPackSource reads the file at path, which is either a JSON metadata file or a modpack zip
// containing manifest.json. The file is fully read and closed before returning.
func OpenPackSource(fs afero.Fs, path string) (ImportPackSource, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &core.FileAccessError{Op: "read", Path: path, Err: err}
	}

	if bytes.HasPrefix(data, zipMagic) {
		reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, &core.ParseError{Path: path, Err: err}
		}
		return GetZipPackSource(reader, path)
	}
	return GetDiskPackSource(data, filepath.Base(path), path), nil
}

// ReadMetadata parses the pack file of a source, detecting whether it is a CurseForge manifest
// or a CurseForge launcher instance file
func ReadMetadata(s ImportPackSource) (ImportPackMetadata, error) {
	metaFile, err := s.GetPackFile()
	if err != nil {
		return nil, &core.FileAccessError{Op: "open", Path: s.Path(), Err: err}
	}
	rdr, err := metaFile.Open()
	if err != nil {
		return nil, &core.FileAccessError{Op: "open", Path: metaFile.Name(), Err: err}
	}
	defer rdr.Close()

	fileData, err := io.ReadAll(rdr)
	if err != nil {
		return nil, &core.FileAccessError{Op: "read", Path: metaFile.Name(), Err: err}
	}

	tree, err := decodeJSON(fileData)
	if err != nil {
		var offset int64
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			offset = syntaxErr.Offset
		}
		return nil, &core.ParseError{Path: metaFile.Name(), Offset: offset, Err: err}
	}

	c := schemaChecker{path: metaFile.Name()}
	root, err := c.object(tree, "document")
	if err != nil {
		return nil, err
	}

	// A files list always means a manifest. Without one, installedAddons marks a launcher
	// instance file, and anything else is a manifest missing its files.
	if _, ok := root["files"]; ok {
		return readManifest(c, root)
	}
	if _, ok := root["installedAddons"]; ok {
		return readInstance(c, root)
	}
	return readManifest(c, root)
}

// decodeJSON decodes a single JSON document, keeping numbers as json.Number so integer
// values are copied exactly
func decodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return tree, nil
}
