// Package config provides the configuration loader for packship.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/packship/packship/internal/core/domain"
	"github.com/packship/packship/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up when no explicit path
// is given.
const DefaultFilename = "packship.yaml"

const defaultStatePath = ".packship/versions.json"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at path and returns the project.
func (l *Loader) Load(path string) (*domain.Project, error) {
	return Load(path)
}

// Shipfile represents the structure of the packship.yaml configuration file.
type Shipfile struct {
	Version string     `yaml:"version"`
	Root    string     `yaml:"root"`
	State   string     `yaml:"state"`
	Publish PublishDTO `yaml:"publish"`
}

// PublishDTO represents the publish command configuration.
type PublishDTO struct {
	Cmd []string          `yaml:"cmd"`
	Env map[string]string `yaml:"env"`
}

// Load reads a configuration file from the given path and returns a
// domain.Project. Relative paths in the file are resolved against the
// configuration file's directory.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var shipfile Shipfile
	if err := yaml.Unmarshal(data, &shipfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if strings.TrimSpace(shipfile.Root) == "" {
		return nil, zerr.With(zerr.New("content root missing in config"), "path", path)
	}
	if len(shipfile.Publish.Cmd) == 0 {
		return nil, zerr.With(zerr.New("publish command missing in config"), "path", path)
	}

	base := filepath.Dir(path)
	statePath := shipfile.State
	if statePath == "" {
		statePath = defaultStatePath
	}

	return &domain.Project{
		ContentRoot:    resolve(base, shipfile.Root),
		StatePath:      resolve(base, statePath),
		PublishCommand: shipfile.Publish.Cmd,
		PublishEnv:     shipfile.Publish.Env,
	}, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
