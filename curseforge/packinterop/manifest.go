package packinterop

import "github.com/packwiz/curseconverter/core"

type cursePackMeta struct {
	NameInternal string `mapstructure:"-"`
	Files        []struct {
		ProjectID int `mapstructure:"projectID"`
		FileID    int `mapstructure:"fileID"`
	} `mapstructure:"files"`
}

func (c cursePackMeta) Name() string {
	return c.NameInternal
}

func (c cursePackMeta) Kind() string {
	return "CurseForge manifest"
}

func (c cursePackMeta) Mods() []core.AddonFileReference {
	list := make([]core.AddonFileReference, len(c.Files))
	for i, v := range c.Files {
		list[i] = core.AddonFileReference{
			ProjectID: v.ProjectID,
			FileID:    v.FileID,
		}
	}
	return list
}

// checkManifest ensures every entry of files has integer projectID and fileID keys.
// Other keys (minecraft, required, overrides...) are not needed and not checked.
func checkManifest(c schemaChecker, root map[string]interface{}) error {
	files, err := c.list(root, "", "files")
	if err != nil {
		return err
	}
	for i, v := range files {
		key := indexKey("files", i)
		entry, err := c.object(v, key)
		if err != nil {
			return err
		}
		if err := c.integer(entry, key, "projectID"); err != nil {
			return err
		}
		if err := c.integer(entry, key, "fileID"); err != nil {
			return err
		}
	}
	return nil
}

func readManifest(c schemaChecker, root map[string]interface{}) (ImportPackMetadata, error) {
	if err := checkManifest(c, root); err != nil {
		return nil, err
	}
	var packMeta cursePackMeta
	if err := c.decode(root, &packMeta); err != nil {
		return nil, err
	}
	packMeta.NameInternal = optionalString(root, "name")
	return packMeta, nil
}

func optionalString(obj map[string]interface{}, key string) string {
	s, _ := obj[key].(string)
	return s
}
