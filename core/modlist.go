package core

// SourceCurse is the source tag of mods hosted on CurseForge
const SourceCurse = "curse"

// AddonFileReference references a single file of a project on CurseForge
type AddonFileReference struct {
	ProjectID int
	FileID    int
}

// ModEntry is one normalized mod reference. Fields are declared in lexicographic
// key order so every output format writes them sorted.
type ModEntry struct {
	FileID    int    `json:"fileID" toml:"fileID" yaml:"fileID"`
	ProjectID int    `json:"projectID" toml:"projectID" yaml:"projectID"`
	Source    string `json:"source" toml:"source" yaml:"source"`
}

// ModList is the normalized output document
type ModList struct {
	Mods []ModEntry `json:"mods" toml:"mods" yaml:"mods"`
}

// NewModList converts CurseForge file references into a ModList, preserving their order
func NewModList(refs []AddonFileReference) ModList {
	// Never nil, so an empty list is written as [] rather than null
	mods := make([]ModEntry, len(refs))
	for i, ref := range refs {
		mods[i] = ModEntry{
			FileID:    ref.FileID,
			ProjectID: ref.ProjectID,
			Source:    SourceCurse,
		}
	}
	return ModList{Mods: mods}
}
