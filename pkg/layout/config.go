package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure returned from
// [Config.Validate]. Use errors.Is to test for it.
var ErrInvalidConfig = errors.New("invalid layout config")

// Config holds the immutable per-run simulation parameters. All tunables
// that were module-level constants in ancestral force-directed drawers
// live here so that independently-configured engines can coexist.
//
// The zero value is not usable - start from [DefaultConfig].
type Config struct {
	// SpringForce scales the attractive force between adjacent vertices:
	// force = SpringForce · ln(distance/SpringScale) / vertexCount.
	SpringForce float64 `toml:"spring_force" json:"spring_force"`

	// SpringScale is the distance at which the attractive force crosses
	// zero. Below it adjacent vertices are pushed apart by the spring.
	SpringScale float64 `toml:"spring_scale" json:"spring_scale"`

	// RepulsionScale scales the inverse-square repulsion applied between
	// every pair of distinct vertices: force = RepulsionScale / distance².
	RepulsionScale float64 `toml:"repulsion_scale" json:"repulsion_scale"`

	// Speed multiplies the accumulated force before it displaces a vertex
	// in each step.
	Speed float64 `toml:"speed" json:"speed"`

	// StepsPerFrame is the number of simulation steps an animating host
	// is expected to run between renders. The engine itself imposes no
	// timing policy; this is advisory for hosts.
	StepsPerFrame int `toml:"steps_per_frame" json:"steps_per_frame"`

	// CanvasWidth and CanvasHeight bound the initial spawn region in
	// model units. The spawn region grows with vertexCount^0.3 so larger
	// graphs spread out.
	CanvasWidth  float64 `toml:"canvas_width" json:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height" json:"canvas_height"`

	// PaddingFactor is the fraction of the canvas kept free as a margin,
	// both when spawning and when auto-fitting. Must be in [0, 0.5).
	PaddingFactor float64 `toml:"padding_factor" json:"padding_factor"`

	// NodeSize is the base node diameter in screen units.
	NodeSize float64 `toml:"node_size" json:"node_size"`

	// NodeDegreeScaler is the extra diameter per vertex degree, applied
	// only when the graph's vertex degrees are not all equal.
	NodeDegreeScaler float64 `toml:"node_degree_scaler" json:"node_degree_scaler"`

	// NodeBorder is the border width added around a node; it inflates
	// both the drawn node and its hitbox.
	NodeBorder float64 `toml:"node_border" json:"node_border"`

	// Seed seeds the random initial placement. Zero selects a
	// time-derived seed, making layouts non-deterministic run to run.
	Seed int64 `toml:"seed" json:"seed"`
}

// DefaultConfig returns the stock simulation parameters.
func DefaultConfig() Config {
	return Config{
		SpringForce:      1,
		SpringScale:      1,
		RepulsionScale:   5000,
		Speed:            1,
		StepsPerFrame:    20,
		CanvasWidth:      500,
		CanvasHeight:     500,
		PaddingFactor:    0.2,
		NodeSize:         20,
		NodeDegreeScaler: 5,
		NodeBorder:       2,
	}
}

// Validate checks that every parameter is usable and returns a
// descriptive error wrapping [ErrInvalidConfig] otherwise. Engines
// refuse to run with an invalid config rather than produce NaN or
// Infinity positions silently.
func (c Config) Validate() error {
	switch {
	case c.SpringForce <= 0:
		return fmt.Errorf("%w: spring force must be positive, got %v", ErrInvalidConfig, c.SpringForce)
	case c.SpringScale <= 0:
		return fmt.Errorf("%w: spring scale must be positive, got %v", ErrInvalidConfig, c.SpringScale)
	case c.RepulsionScale <= 0:
		return fmt.Errorf("%w: repulsion scale must be positive, got %v", ErrInvalidConfig, c.RepulsionScale)
	case c.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %v", ErrInvalidConfig, c.Speed)
	case c.StepsPerFrame < 1:
		return fmt.Errorf("%w: steps per frame must be at least 1, got %d", ErrInvalidConfig, c.StepsPerFrame)
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas must have positive dimensions, got %vx%v", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.PaddingFactor < 0 || c.PaddingFactor >= 0.5:
		return fmt.Errorf("%w: padding factor must be in [0, 0.5), got %v", ErrInvalidConfig, c.PaddingFactor)
	case c.NodeSize <= 0:
		return fmt.Errorf("%w: node size must be positive, got %v", ErrInvalidConfig, c.NodeSize)
	case c.NodeDegreeScaler < 0:
		return fmt.Errorf("%w: node degree scaler must not be negative, got %v", ErrInvalidConfig, c.NodeDegreeScaler)
	case c.NodeBorder < 0:
		return fmt.Errorf("%w: node border must not be negative, got %v", ErrInvalidConfig, c.NodeBorder)
	}
	return nil
}
