package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cpereira/forcedraw/pkg/layout"
)

// paramsFile is the TOML schema for simulation parameter files:
//
//	[simulation]
//	spring_force = 1.0
//	spring_scale = 1.0
//	repulsion_scale = 5000.0
//	speed = 1.0
//	steps_per_frame = 20
//	canvas_width = 500.0
//	canvas_height = 500.0
//	padding_factor = 0.2
//	node_size = 20.0
//	node_degree_scaler = 5.0
//	node_border = 2.0
//	seed = 0
//
// Omitted keys keep their defaults.
type paramsFile struct {
	Simulation layout.Config `toml:"simulation"`
}

// loadConfig returns the simulation parameters to use: the defaults,
// overlaid with the TOML file at path when path is non-empty. The
// merged config is validated before it is returned.
func loadConfig(path string) (layout.Config, error) {
	cfg := layout.DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return layout.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		pf := paramsFile{Simulation: cfg}
		if err := toml.Unmarshal(data, &pf); err != nil {
			return layout.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg = pf.Simulation
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}
