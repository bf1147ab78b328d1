package packinterop

import (
	"archive/zip"
	"errors"
	"strings"

	"github.com/packwiz/curseconverter/core"
)

// ManifestFileName is the name of the manifest at the root of a CurseForge modpack zip
const ManifestFileName = "manifest.json"

type zipReaderFile struct {
	NameInternal string
	*zip.File
}

func (f zipReaderFile) Name() string {
	return f.NameInternal
}

type zipPackSource struct {
	MetaFile *zip.File
	ZipPath  string
}

func (s zipPackSource) Path() string {
	return s.ZipPath
}

func (s zipPackSource) GetPackFile() (ImportPackFile, error) {
	if s.MetaFile == nil {
		return nil, errors.New("zip source has no manifest")
	}
	return zipReaderFile{s.ZipPath + "!" + s.MetaFile.Name, s.MetaFile}, nil
}

// GetZipPackSource finds the manifest in the root of a modpack zip
func GetZipPackSource(reader *zip.Reader, path string) (ImportPackSource, error) {
	for _, v := range reader.File {
		// Some exporters write Windows-style paths, and some prefix the root with ./
		name := strings.TrimPrefix(strings.ReplaceAll(v.Name, "\\", "/"), "./")
		if v.Mode().IsDir() || !strings.EqualFold(name, ManifestFileName) {
			continue
		}
		return zipPackSource{
			MetaFile: v,
			ZipPath:  path,
		}, nil
	}
	return nil, &core.SchemaError{Path: path, Key: ManifestFileName, Reason: core.ReasonMissing}
}
