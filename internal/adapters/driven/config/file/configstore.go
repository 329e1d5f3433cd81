package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/clinical-trials-mcp/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultDirName is the config directory under the user's home.
const DefaultDirName = ".clinical-trials"

// DefaultFileName is the config file looked up in DefaultDirName.
const DefaultFileName = "config.toml"

// decoders maps a file extension to its unmarshal function.
// Anything not listed is read as TOML.
var decoders = map[string]func([]byte, any) error{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
}

// ConfigStore is a file-backed driven.ConfigStore.
// It is immutable after NewConfigStore returns.
type ConfigStore struct {
	path   string
	values map[string]any
}

// NewConfigStore reads the config file at path.
// An empty path means ~/.clinical-trials/config.toml. A missing file yields
// an empty store and nothing is created on disk.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName, DefaultFileName)
	}

	values, err := readValues(path)
	if err != nil {
		return nil, err
	}
	return &ConfigStore{path: path, values: values}, nil
}

// Get retrieves a raw value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string value.
func (s *ConfigStore) GetString(key string) string {
	str, _ := s.values[key].(string)
	return str
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}

func readValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		decode = toml.Unmarshal
	}

	var tree map[string]any
	if err := decode(data, &tree); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	values := make(map[string]any)
	flatten(values, "", tree)
	return values, nil
}

// flatten writes nested tables into dst under dot-joined keys,
// so {"registry": {"timeout": 5}} becomes {"registry.timeout": 5}.
func flatten(dst map[string]any, prefix string, tree map[string]any) {
	for key, value := range tree {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(dst, key, nested)
			continue
		}
		dst[key] = value
	}
}
