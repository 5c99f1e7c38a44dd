package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations.
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
	Gen      *GenConfig
}

// Loader loads engine configuration from JSON files through fs.FS.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a loader over an fs.FS (e.g. an embedded tree).
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadPhysics loads physics.json.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.read("physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.json.
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.read("entities.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadGen loads gen.json.
func (l *Loader) LoadGen() (*GenConfig, error) {
	var cfg GenConfig
	if err := l.read("gen.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads every config file.
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}
	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}
	gen, err := l.LoadGen()
	if err != nil {
		return nil, err
	}
	return &GameConfig{Physics: physics, Entities: entities, Gen: gen}, nil
}

func (l *Loader) read(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
