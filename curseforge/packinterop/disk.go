package packinterop

import (
	"bytes"
	"io"
)

type readerFile struct {
	NameInternal string
	Data         []byte
}

func (f readerFile) Name() string {
	return f.NameInternal
}

func (f readerFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.Data)), nil
}

type diskPackSource struct {
	MetaSource []byte
	MetaName   string
	FilePath   string
}

func (s diskPackSource) Path() string {
	return s.FilePath
}

func (s diskPackSource) GetPackFile() (ImportPackFile, error) {
	return readerFile{s.MetaName, s.MetaSource}, nil
}

// GetDiskPackSource returns a source for a metadata file that was read from disk
func GetDiskPackSource(metaSource []byte, metaName string, path string) ImportPackSource {
	return diskPackSource{
		MetaSource: metaSource,
		MetaName:   metaName,
		FilePath:   path,
	}
}
