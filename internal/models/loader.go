package models

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/world.yaml
var defaultWorldYAML []byte

type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	Start              string     `yaml:"start"`
	GoalLocation       string     `yaml:"goal_location"`
	ComponentsRequired int        `yaml:"components_required"`
	Locations          []Location `yaml:"locations"`
	Items              []Item     `yaml:"items"`
}

// DefaultWorld returns a fresh copy of the built-in crash-landing world.
func DefaultWorld() (*World, error) {
	w, err := LoadWorldFromBytes(defaultWorldYAML)
	if err != nil {
		return nil, fmt.Errorf("loading built-in world: %w", err)
	}
	return w, nil
}

// LoadWorldFromFile reads and validates a world YAML file.
//
// Precondition: path must point to a YAML world file.
// Postcondition: Returns a validated World or a non-nil error.
func LoadWorldFromFile(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	return LoadWorldFromBytes(data)
}

// LoadWorldFromBytes parses and validates a world from YAML bytes.
func LoadWorldFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	yw := file.World
	for i := range yw.Locations {
		yw.Locations[i].Description = strings.TrimSpace(yw.Locations[i].Description)
	}
	if yw.GoalLocation == "" {
		yw.GoalLocation = yw.Start
	}

	w, err := NewWorld(yw.Start, yw.GoalLocation, yw.ComponentsRequired, yw.Locations, yw.Items)
	if err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}

// LoadWorld loads the world file at path, or the built-in world when path is
// empty.
func LoadWorld(path string) (*World, error) {
	if path == "" {
		return DefaultWorld()
	}
	return LoadWorldFromFile(path)
}
