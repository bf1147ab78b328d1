package packinterop

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/packwiz/curseconverter/core"
)

// schemaChecker checks key presence and value types in a decoded JSON tree.
// Numbers in the tree must be json.Number, see decodeJSON.
type schemaChecker struct {
	path string
}

func joinKey(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexKey(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func (c schemaChecker) missing(key string) error {
	return &core.SchemaError{Path: c.path, Key: key, Reason: core.ReasonMissing}
}

func (c schemaChecker) wrongType(key string, want string, got interface{}) error {
	return &core.SchemaError{
		Path:   c.path,
		Key:    key,
		Reason: core.ReasonWrongType,
		Err:    fmt.Errorf("expected %s, got %s", want, describeValue(got)),
	}
}

func describeValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number " + v.String()
	}
	return fmt.Sprintf("%T", v)
}

func (c schemaChecker) object(v interface{}, key string) (map[string]interface{}, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, c.wrongType(key, "object", v)
	}
	return obj, nil
}

func (c schemaChecker) field(obj map[string]interface{}, parent, key string) (interface{}, error) {
	v, ok := obj[key]
	if !ok {
		return nil, c.missing(joinKey(parent, key))
	}
	return v, nil
}

func (c schemaChecker) list(obj map[string]interface{}, parent, key string) ([]interface{}, error) {
	v, err := c.field(obj, parent, key)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]interface{})
	if !ok {
		return nil, c.wrongType(joinKey(parent, key), "array", v)
	}
	return l, nil
}

func (c schemaChecker) childObject(obj map[string]interface{}, parent, key string) (map[string]interface{}, error) {
	v, err := c.field(obj, parent, key)
	if err != nil {
		return nil, err
	}
	return c.object(v, joinKey(parent, key))
}

func (c schemaChecker) integer(obj map[string]interface{}, parent, key string) error {
	v, err := c.field(obj, parent, key)
	if err != nil {
		return err
	}
	n, ok := v.(json.Number)
	if !ok {
		return c.wrongType(joinKey(parent, key), "integer", v)
	}
	if _, err := n.Int64(); err != nil {
		return c.wrongType(joinKey(parent, key), "integer", v)
	}
	return nil
}

// decode copies a checked tree into a typed struct
func (c schemaChecker) decode(tree interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(tree); err != nil {
		return &core.SchemaError{Path: c.path, Key: "document", Reason: core.ReasonWrongType, Err: err}
	}
	return nil
}
