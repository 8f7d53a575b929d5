package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
)

// Loader decodes one config file format into v.
type Loader interface {
	Decode(data []byte, v interface{}) error
}

type tomlLoader struct{}

func (tomlLoader) Decode(data []byte, v interface{}) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

type yamlLoader struct{}

func (yamlLoader) Decode(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// loaders maps file extensions to the loader for that format.
var loaders = map[string]Loader{
	".toml": tomlLoader{},
	".yaml": yamlLoader{},
	".yml":  yamlLoader{},
}

// LoaderFor picks a loader from the extension of path.
func LoaderFor(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedConfigFormat, ext)
	}
	return l, nil
}

// DecodeFile reads path and decodes it on top of whatever v already holds,
// so fields missing from the file keep their current values.
func DecodeFile(path string, v interface{}) error {
	l, err := LoaderFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := l.Decode(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
