package curseforge

import (
	"github.com/packwiz/curseconverter/core"
	"github.com/packwiz/curseconverter/curseforge/packinterop"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options configures a conversion
type Options struct {
	Format core.Format
	// Logger receives progress messages; nil disables logging
	Logger *zap.Logger
}

// Convert reads the CurseForge pack metadata at inputPath and writes the normalized
// mod list to outputPath. The output file is not created if any step before writing fails.
func Convert(fs afero.Fs, inputPath string, outputPath string, opts Options) (core.ModList, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	format := opts.Format
	if format == "" {
		format = core.FormatJSON
	}

	logger.Debug("Reading pack metadata", zap.String("path", inputPath))
	src, err := packinterop.OpenPackSource(fs, inputPath)
	if err != nil {
		return core.ModList{}, err
	}
	meta, err := packinterop.ReadMetadata(src)
	if err != nil {
		return core.ModList{}, err
	}

	refs := meta.Mods()
	logger.Debug("Read pack metadata",
		zap.String("kind", meta.Kind()),
		zap.String("name", meta.Name()),
		zap.Int("files", len(refs)))

	modList := core.NewModList(refs)
	if err := modList.Write(fs, outputPath, format); err != nil {
		return core.ModList{}, err
	}
	logger.Debug("Wrote mod list",
		zap.String("path", outputPath),
		zap.String("format", string(format)),
		zap.Int("mods", len(modList.Mods)))
	return modList, nil
}
