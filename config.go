package tether

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the static interaction setup of a scene: which groups exist, which
// pointer source provides each group, how draggables behave, and how follower
// strips tile. It is applied once at setup and never renegotiated.
type Config struct {
	Groups     map[string]Group           `yaml:"groups"`
	Sources    []SourceConfig             `yaml:"sources"`
	Draggables map[string]DraggableConfig `yaml:"draggables,omitempty"`
	Strips     map[string]StripConfig     `yaml:"strips,omitempty"`
}

// SourceConfig names a pointer source and the groups it provides.
type SourceConfig struct {
	Name   string   `yaml:"name"`
	Groups []string `yaml:"groups"`
}

// DraggableConfig is a named draggable preset.
type DraggableConfig struct {
	Groups []string `yaml:"groups"`
	Hook   *Vec2    `yaml:"hook,omitempty"`
	Drop   string   `yaml:"drop,omitempty"` // "leave" | "reset"
	LockY  bool     `yaml:"lock_y,omitempty"`
}

// LoadConfig parses and validates a YAML config.
func LoadConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	return LoadConfig(data)
}

// Validate reports unknown group names, groups claimed by two sources, and
// invalid drop policies or strips.
func (c *Config) Validate() error {
	owner := make(map[Group]string)
	for _, src := range c.Sources {
		groups, err := c.resolve(src.Groups)
		if err != nil {
			return fmt.Errorf("source %q: %w", src.Name, err)
		}
		for i, g := range groups {
			if slices.Contains(groups[:i], g) {
				return fmt.Errorf("source %q: group %d listed more than once", src.Name, g)
			}
			if prev, ok := owner[g]; ok {
				return fmt.Errorf("source %q: group %d already provided by source %q", src.Name, g, prev)
			}
			owner[g] = src.Name
		}
	}
	for _, name := range sortedKeys(c.Draggables) {
		d := c.Draggables[name]
		if _, err := c.resolve(d.Groups); err != nil {
			return fmt.Errorf("draggable %q: %w", name, err)
		}
		if _, err := ParseDropPolicy(d.Drop); err != nil {
			return fmt.Errorf("draggable %q: %w", name, err)
		}
	}
	for _, name := range sortedKeys(c.Strips) {
		if err := c.Strips[name].Validate(); err != nil {
			return fmt.Errorf("strip %q: %w", name, err)
		}
	}
	return nil
}

// Group looks up a group by name.
func (c *Config) Group(name string) (Group, error) {
	g, ok := c.Groups[name]
	if !ok {
		return 0, fmt.Errorf("unknown group %q", name)
	}
	return g, nil
}

func (c *Config) resolve(names []string) ([]Group, error) {
	gs := make([]Group, 0, len(names))
	for _, n := range names {
		g, err := c.Group(n)
		if err != nil {
			return nil, err
		}
		gs = append(gs, g)
	}
	return gs, nil
}

// PointerSource builds the named source bound to cam.
func (c *Config) PointerSource(name string, cam *Camera) (PointerSource, error) {
	for _, src := range c.Sources {
		if src.Name != name {
			continue
		}
		groups, err := c.resolve(src.Groups)
		if err != nil {
			return PointerSource{}, fmt.Errorf("source %q: %w", name, err)
		}
		return PointerSource{Camera: cam, Groups: groups}, nil
	}
	return PointerSource{}, fmt.Errorf("unknown source %q", name)
}

// Draggable builds the named draggable preset.
func (c *Config) Draggable(name string) (Draggable, error) {
	dc, ok := c.Draggables[name]
	if !ok {
		return Draggable{}, fmt.Errorf("unknown draggable %q", name)
	}
	groups, err := c.resolve(dc.Groups)
	if err != nil {
		return Draggable{}, fmt.Errorf("draggable %q: %w", name, err)
	}
	policy, err := ParseDropPolicy(dc.Drop)
	if err != nil {
		return Draggable{}, fmt.Errorf("draggable %q: %w", name, err)
	}
	d := Draggable{Groups: groups, Drop: policy, LockY: dc.LockY}
	if dc.Hook != nil {
		hook := *dc.Hook
		d.Hook = &hook
	}
	return d, nil
}

// Strip returns the named follower strip layout.
func (c *Config) Strip(name string) (StripConfig, error) {
	sc, ok := c.Strips[name]
	if !ok {
		return StripConfig{}, fmt.Errorf("unknown strip %q", name)
	}
	return sc, nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
