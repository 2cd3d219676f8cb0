package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpereira/forcedraw/pkg/graph"
)

// layoutCommand creates the layout command: simulate a graph file and
// write the layout artifact.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		steps      int
		configPath string
		seed       int64
		output     string
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Run the force simulation and write a layout artifact",
		Long: `Run the force simulation and write a layout artifact.

The layout command reads a node-link graph file, spawns every vertex at
a random position, advances the force simulation a fixed number of
steps, and writes the resulting positions, edge curves, and auto-fit
viewport as JSON. The simulation runs exactly the requested number of
steps; there is no convergence detection.

Use 'render' to go directly from a graph file to an SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], configPath, steps, seed, output)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1000, "simulation steps to run")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML simulation parameter file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "spawn seed (0 = time-derived)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runLayout(input, configPath string, steps int, seed int64, output string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	prog := newProgress(c.Logger)
	eng, err := simulate(cfg, g, steps)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	prog.done(fmt.Sprintf("Simulated %d steps over %d vertices", steps, g.VertexCount()))

	art, err := buildArtifact(eng)
	if err != nil {
		return err
	}

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(art); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	if output != "" {
		c.Logger.Info("Wrote layout", "path", output)
	}
	return nil
}

// defaultOutput derives an output path from the input path and a new
// extension, e.g. graph.json -> graph.svg.
func defaultOutput(input, ext string) string {
	base := strings.TrimSuffix(input, ".json")
	return base + ext
}
