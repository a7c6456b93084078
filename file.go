package linelog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileFormat is the encoding of a project configuration file.
type FileFormat string

const (
	YAML FileFormat = "yaml"
	TOML FileFormat = "toml"
	JSON FileFormat = "json"
	// PackageJSON is a JSON document whose "linelog" member holds the
	// configuration; every other member is ignored.
	PackageJSON FileFormat = "package.json"
)

// PackageSection is the member of package.json read as configuration.
const PackageSection = "linelog"

var fileFormats = []FileFormat{YAML, TOML, JSON, PackageJSON}

// projectFiles are looked up in order in the project directory.
var projectFiles = []string{
	".linelog.yaml",
	".linelog.yml",
	".linelog.toml",
	".linelog.json",
	"package.json",
}

// String returns the format name.
func (f FileFormat) String() string { return string(f) }

// FileFormats returns all supported configuration file formats.
func FileFormats() []FileFormat {
	out := make([]FileFormat, len(fileFormats))
	copy(out, fileFormats)
	return out
}

// ParseFileFormat picks the format of a configuration file from its name.
func ParseFileFormat(path string) (FileFormat, error) {
	base := filepath.Base(path)
	if base == "package.json" {
		return PackageJSON, nil
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadConfigFile reads one configuration layer from path. A package.json
// without a "linelog" member yields an empty layer.
func LoadConfigFile(path string) (Config, error) {
	f, err := ParseFileFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := UnmarshalConfig(f, data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// discoverConfig looks for the first project file in dir. A directory
// without one is not an error: found is false and the layer is skipped.
func discoverConfig(dir string) (cfg Config, path string, found bool, err error) {
	for _, name := range projectFiles {
		p := filepath.Join(dir, name)
		info, statErr := os.Stat(p)
		if statErr != nil {
			if errors.Is(statErr, fs.ErrNotExist) {
				continue
			}
			return Config{}, p, false, fmt.Errorf("stat config %s: %w", p, statErr)
		}
		if info.IsDir() {
			continue
		}
		cfg, err = LoadConfigFile(p)
		return cfg, p, err == nil, err
	}
	return Config{}, "", false, nil
}

// UnmarshalConfig decodes a configuration layer encoded in format f.
func UnmarshalConfig(f FileFormat, data []byte) (Config, error) {
	var cfg Config
	switch f {
	case YAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return Config{}, fmt.Errorf("%w: line %d, column %d: %w", ErrMalformedConfig, row, col, err)
			}
			return Config{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
	case JSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
	case PackageJSON:
		var pkg map[string]json.RawMessage
		if err := json.Unmarshal(data, &pkg); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
		section, ok := pkg[PackageSection]
		if !ok || string(section) == "null" {
			return Config{}, nil
		}
		if err := json.Unmarshal(section, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %q section: %w", ErrMalformedConfig, PackageSection, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return cfg, nil
}

// WriteConfig encodes cfg in format f and writes it to w. PackageJSON wraps
// the layer in a {"linelog": ...} document.
func WriteConfig(w io.Writer, f FileFormat, cfg Config) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(cfg)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case PackageJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]Config{PackageSection: cfg})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// MarshalConfig encodes cfg in format f and returns the bytes.
func MarshalConfig(f FileFormat, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteConfig(&buf, f, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
