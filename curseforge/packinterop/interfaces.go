package packinterop

import (
	"io"

	"github.com/packwiz/curseconverter/core"
)

type ImportPackFile interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type ImportPackMetadata interface {
	Name() string
	// Kind names the file format the metadata was read from
	Kind() string
	Mods() []core.AddonFileReference
}

type ImportPackSource interface {
	// Path is the location of the source on disk, used in error messages
	Path() string
	GetPackFile() (ImportPackFile, error)
}
