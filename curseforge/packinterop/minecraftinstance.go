package packinterop

import "github.com/packwiz/curseconverter/core"

// twitchInstalledPackMeta is the minecraftinstance.json file written by the CurseForge (formerly Twitch) launcher
type twitchInstalledPackMeta struct {
	NameInternal string `mapstructure:"-"`
	ModsInternal []struct {
		ID   int `mapstructure:"addonID"`
		File struct {
			ID int `mapstructure:"id"`
		} `mapstructure:"installedFile"`
	} `mapstructure:"installedAddons"`
}

func (m twitchInstalledPackMeta) Name() string {
	return m.NameInternal
}

func (m twitchInstalledPackMeta) Kind() string {
	return "CurseForge launcher instance"
}

func (m twitchInstalledPackMeta) Mods() []core.AddonFileReference {
	list := make([]core.AddonFileReference, len(m.ModsInternal))
	for i, v := range m.ModsInternal {
		list[i] = core.AddonFileReference{
			ProjectID: v.ID,
			FileID:    v.File.ID,
		}
	}
	return list
}

func checkInstance(c schemaChecker, root map[string]interface{}) error {
	addons, err := c.list(root, "", "installedAddons")
	if err != nil {
		return err
	}
	for i, v := range addons {
		key := indexKey("installedAddons", i)
		addon, err := c.object(v, key)
		if err != nil {
			return err
		}
		if err := c.integer(addon, key, "addonID"); err != nil {
			return err
		}
		file, err := c.childObject(addon, key, "installedFile")
		if err != nil {
			return err
		}
		if err := c.integer(file, joinKey(key, "installedFile"), "id"); err != nil {
			return err
		}
	}
	return nil
}

func readInstance(c schemaChecker, root map[string]interface{}) (ImportPackMetadata, error) {
	if err := checkInstance(c, root); err != nil {
		return nil, err
	}
	var packMeta twitchInstalledPackMeta
	if err := c.decode(root, &packMeta); err != nil {
		return nil, err
	}
	packMeta.NameInternal = optionalString(root, "name")
	return packMeta, nil
}
