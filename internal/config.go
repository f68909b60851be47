// Package pathtool implements the typedpath command line tool.
package pathtool

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	typedpath "github.com/chipsenkbeil/typed-path"
	"github.com/chipsenkbeil/typed-path/internal/fspath"
	"gopkg.in/yaml.v3"
)

// DefaultConfigName is the name of the configuration file looked up in directories.
const DefaultConfigName = ".typedpath.yaml"

var (
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the tool's defaults. All fields are optional.
type Config struct {
	// Encoding of the paths given to the tool: "unix", "windows" or "native" (the default).
	Encoding string `yaml:"encoding"`
	// Checked makes joins reject fragments which could escape their base. Defaults to true.
	Checked *bool `yaml:"checked"`
	// UTF8 rejects paths which are not valid UTF-8.
	UTF8 bool `yaml:"utf8"`
	// Audit options.
	Audit AuditConfig `yaml:"audit"`
}

// AuditConfig configures the audit command.
type AuditConfig struct {
	// Skip contains glob patterns of entry names which are not audited.
	Skip []string `yaml:"skip"`
}

// EncodingKind returns the configured encoding.
func (c *Config) EncodingKind() (typedpath.EncodingKind, error) {
	switch c.Encoding {
	case "", "native":
		return typedpath.NativeKind, nil
	}
	kind, err := typedpath.EncodingKindString(c.Encoding)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return kind, nil
}

// IsChecked returns true unless checks were explicitly disabled.
func (c *Config) IsChecked() bool {
	return c.Checked == nil || *c.Checked
}

// ReadConfig parses the configuration at fp. If fp is a directory, the default configuration name
// is looked up inside it.
func ReadConfig(fp fspath.Local) (*Config, error) {
	info, err := os.Stat(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	if info.IsDir() {
		fp = filepath.Join(fp, DefaultConfigName)
	}
	data, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := cfg.EncodingKind(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig reads the default configuration in dir, falling back to an empty configuration if it
// does not exist.
func FindConfig(dir fspath.Local) (*Config, error) {
	cfg, err := ReadConfig(filepath.Join(dir, DefaultConfigName))
	if errors.Is(err, ErrMissingConfig) {
		return &Config{}, nil
	}
	return cfg, err
}
