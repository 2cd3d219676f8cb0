package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/render"
)

// renderCommand creates the render command: simulate a graph file and
// render the final layout as SVG via Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		steps      int
		configPath string
		seed       int64
		output     string
		dotOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a simulated layout to SVG",
		Long: `Render a simulated layout to SVG.

The render command runs the same simulation as 'layout' and then hands
the pinned vertex positions to Graphviz (neato) for SVG output. Use
--dot to inspect the intermediate DOT instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if seed != 0 {
				cfg.Seed = seed
			}

			g, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			prog := newProgress(c.Logger)
			eng, err := simulate(cfg, g, steps)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			dot, err := render.ToDOT(eng)
			if err != nil {
				return err
			}

			if dotOnly {
				if output == "" {
					output = defaultOutput(args[0], ".dot")
				}
				if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Wrote %s", output))
				return nil
			}

			svg, err := render.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return fmt.Errorf("render svg: %w", err)
			}
			if output == "" {
				output = defaultOutput(args[0], ".svg")
			}
			if err := os.WriteFile(output, svg, 0o644); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Wrote %s", output))
			return nil
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1000, "simulation steps to run")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML simulation parameter file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "spawn seed (0 = time-derived)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: derived from input)")
	cmd.Flags().BoolVar(&dotOnly, "dot", false, "write DOT instead of SVG")

	return cmd
}
