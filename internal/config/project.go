package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig is the top-level `.phpparse.yaml` project configuration.
type ProjectConfig struct {
	// Include lists glob patterns of source files to analyze. Defaults to
	// `**/*.php`; the other recognized extensions are not in the default.
	Include []string `yaml:"include,omitempty"`

	// Exclude lists glob patterns to skip even when matched by Include.
	Exclude []string `yaml:"exclude,omitempty"`

	// PHPVersion records the `php_version` setting. It is loaded but not
	// consulted: the parser accepts the same syntax whatever it holds.
	PHPVersion string `yaml:"php_version,omitempty"`

	// Strict records the `strict` setting. It is loaded but not consulted:
	// diagnostic severities do not change with it.
	Strict bool `yaml:"strict,omitempty"`
}

// LoadProjectConfig reads and parses a `.phpparse.yaml` file.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseProjectConfig(data, path)
}

// ParseProjectConfig parses `.phpparse.yaml` content from bytes. The path
// argument is used only for error messages.
func ParseProjectConfig(data []byte, path string) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *ProjectConfig) setDefaults() {
	if len(c.Include) == 0 {
		c.Include = []string{"**/*.php"}
	}
}

// FindProjectConfig searches for `.phpparse.yaml` starting from dir and
// walking up to parent directories, the way a linter locates its nearest
// project config.
func FindProjectConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ".phpparse.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		candidate = filepath.Join(dir, ".phpparse.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load locates and parses the nearest `.phpparse.yaml` above dir, returning
// a zero-value default ProjectConfig (not an error) when none is found.
func Load(dir string) (*ProjectConfig, error) {
	path, err := FindProjectConfig(dir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := &ProjectConfig{}
		cfg.setDefaults()
		return cfg, nil
	}
	return LoadProjectConfig(path)
}
