package core

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewModListKeepsOrder(t *testing.T) {
	refs := []AddonFileReference{
		{ProjectID: 5, FileID: 9},
		{ProjectID: 1, FileID: 2},
		{ProjectID: 5, FileID: 9},
	}
	list := NewModList(refs)

	require.Len(t, list.Mods, len(refs))
	for i, ref := range refs {
		assert.Equal(t, ref.ProjectID, list.Mods[i].ProjectID)
		assert.Equal(t, ref.FileID, list.Mods[i].FileID)
		assert.Equal(t, SourceCurse, list.Mods[i].Source)
	}
}

func TestEncodeJSON(t *testing.T) {
	list := NewModList([]AddonFileReference{
		{ProjectID: 1, FileID: 2},
		{ProjectID: 5, FileID: 9},
	})

	var buf bytes.Buffer
	require.NoError(t, list.Encode(&buf, FormatJSON))

	expected := `{
  "mods": [
    {
      "fileID": 2,
      "projectID": 1,
      "source": "curse"
    },
    {
      "fileID": 9,
      "projectID": 5,
      "source": "curse"
    }
  ]
}
`
	assert.Equal(t, expected, buf.String())
}

func TestEncodeJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewModList(nil).Encode(&buf, FormatJSON))
	assert.Equal(t, "{\n  \"mods\": []\n}\n", buf.String())
}

func TestEncodeJSONSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewModList([]AddonFileReference{{ProjectID: 3, FileID: 4}}).Encode(&buf, FormatJSON))

	// Keys must appear in lexicographic order within each object
	out := buf.String()
	fileIdx := bytes.Index(buf.Bytes(), []byte(`"fileID"`))
	projectIdx := bytes.Index(buf.Bytes(), []byte(`"projectID"`))
	sourceIdx := bytes.Index(buf.Bytes(), []byte(`"source"`))
	require.True(t, fileIdx >= 0 && projectIdx >= 0 && sourceIdx >= 0, out)
	assert.Less(t, fileIdx, projectIdx)
	assert.Less(t, projectIdx, sourceIdx)

	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "curse", decoded["mods"][0]["source"])
}

func TestEncodeTOML(t *testing.T) {
	list := NewModList([]AddonFileReference{
		{ProjectID: 1, FileID: 2},
		{ProjectID: 5, FileID: 9},
	})

	var buf bytes.Buffer
	require.NoError(t, list.Encode(&buf, FormatTOML))
	assert.Contains(t, buf.String(), "[[mods]]")

	var decoded ModList
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, list, decoded)
}

func TestEncodeYAML(t *testing.T) {
	list := NewModList([]AddonFileReference{
		{ProjectID: 1, FileID: 2},
		{ProjectID: 5, FileID: 9},
	})

	var buf bytes.Buffer
	require.NoError(t, list.Encode(&buf, FormatYAML))

	expected := `mods:
  - fileID: 2
    projectID: 1
    source: curse
  - fileID: 9
    projectID: 5
    source: curse
`
	assert.Equal(t, expected, buf.String())

	var decoded ModList
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, list, decoded)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"", FormatJSON},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"toml", FormatTOML},
		{" yaml ", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteUnknownFormatCreatesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := NewModList(nil).Write(fs, "/out.json", Format("xml"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	exists, err := afero.Exists(fs, "/out.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestWriteOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out.json", []byte("a much longer previous file that must be truncated"), 0644))

	require.NoError(t, NewModList(nil).Write(fs, "/out.json", FormatJSON))

	data, err := afero.ReadFile(fs, "/out.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"mods\": []\n}\n", string(data))
}

func TestWriteReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	err := NewModList(nil).Write(fs, "/out.json", FormatJSON)

	var accessErr *FileAccessError
	require.ErrorAs(t, err, &accessErr)
	assert.Equal(t, "/out.json", accessErr.Path)
	assert.Equal(t, "create", accessErr.Op)
}
