package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cpereira/forcedraw/pkg/geom"
	"github.com/cpereira/forcedraw/pkg/graph"
	"github.com/cpereira/forcedraw/pkg/layout"
	"github.com/cpereira/forcedraw/pkg/viewport"
)

// Viewer styles
var (
	vertexStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	vertexDragStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	edgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// frameMsg drives the simulation at a fixed rate.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// viewerModel is the bubbletea model for the interactive viewer. The
// terminal cell grid doubles as the screen plane: the viewport maps
// model coordinates straight to cells, so hit-testing and dragging use
// the mouse cell position unchanged.
type viewerModel struct {
	engine *layout.Engine
	view   *viewport.Viewport
	cfg    layout.Config

	paused  bool
	panning bool
	panFrom geom.Point

	width  int
	height int
}

func newViewerModel(e *layout.Engine, cfg layout.Config) viewerModel {
	return viewerModel{
		engine: e,
		view:   viewport.New(80, 24),
		cfg:    cfg,
		width:  80,
		height: 24,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return frameTick()
}

func (m viewerModel) fit() {
	b, ok := m.engine.Bounds()
	if !ok {
		return
	}
	m.view.Fit(b, len(m.engine.Order()), m.cfg.PaddingFactor)
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if !m.paused {
			_ = m.engine.Advance(m.cfg.StepsPerFrame)
		}
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = float64(msg.Width)
		m.view.Height = float64(msg.Height - 2)
		m.fit()

	case tea.MouseMsg:
		p := geom.Point{X: float64(msg.X), Y: float64(msg.Y)}
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button != tea.MouseButtonLeft {
				break
			}
			if id, ok := m.engine.HitTest(m.view, p); ok {
				_ = m.engine.BeginDrag(id)
			} else {
				m.panning = true
				m.panFrom = p
			}
		case tea.MouseActionMotion:
			if _, ok := m.engine.Dragged(); ok {
				_ = m.engine.UpdateDrag(m.view.ToModel(p))
			} else if m.panning {
				m.view.Pan(p.X-m.panFrom.X, p.Y-m.panFrom.Y)
				m.panFrom = p
			}
		case tea.MouseActionRelease:
			m.engine.EndDrag()
			m.panning = false
		}

	case tea.KeyMsg:
		center := geom.Point{X: m.view.Width / 2, Y: m.view.Height / 2}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "f":
			m.fit()
		case "+", "=":
			m.view.ZoomAround(1.25, center)
		case "-", "_":
			m.view.ZoomAround(0.8, center)
		case "up":
			m.view.Pan(0, 2)
		case "down":
			m.view.Pan(0, -2)
		case "left":
			m.view.Pan(4, 0)
		case "right":
			m.view.Pan(-4, 0)
		}
	}

	return m, nil
}

func (m viewerModel) View() string {
	rows := m.height - 2
	if rows < 1 || m.width < 1 {
		return ""
	}

	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, m.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	plot := func(p geom.Point, cell string) {
		x, y := int(p.X+0.5), int(p.Y+0.5)
		if x >= 0 && x < m.width && y >= 0 && y < rows {
			grid[y][x] = cell
		}
	}

	// Edges first so vertices draw over them.
	dot := edgeStyle.Render("·")
	for _, s := range m.engine.Spots() {
		for _, c := range m.engine.SpotCurves(s) {
			from := m.view.ToScreen(c.From)
			to := m.view.ToScreen(c.To)
			ctrl := m.view.ToScreen(c.Control)
			steps := int(geom.Dist(from, to)) + int(geom.Dist(from, ctrl))
			if steps < 8 {
				steps = 8
			}
			for i := 1; i < steps; i++ {
				t := float64(i) / float64(steps)
				u := 1 - t
				// Quadratic Bezier through the control point.
				p := geom.Point{
					X: u*u*from.X + 2*u*t*ctrl.X + t*t*to.X,
					Y: u*u*from.Y + 2*u*t*ctrl.Y + t*t*to.Y,
				}
				plot(p, dot)
			}
		}
	}

	dragged, dragging := m.engine.Dragged()
	for _, v := range m.engine.Graph().Vertices() {
		pos, ok := m.engine.Position(v.ID)
		if !ok {
			continue
		}
		sp := m.view.ToScreen(pos)
		mark := vertexStyle.Render("●")
		if dragging && v.ID == dragged {
			mark = vertexDragStyle.Render("●")
		}
		plot(sp, mark)
		lx, ly := int(sp.X+0.5)+2, int(sp.Y+0.5)
		if ly >= 0 && ly < rows {
			for i, r := range v.Element {
				if lx+i < 0 || lx+i >= m.width {
					continue
				}
				grid[ly][lx+i] = labelStyle.Render(string(r))
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteString("\n")
	}

	state := "running"
	if m.paused {
		state = "paused"
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		" %s  zoom %.2f  drag: mouse  pan: arrows/drag  +/- zoom  f fit  space %s  q quit",
		state, m.view.Zoom, map[bool]string{true: "resume", false: "pause"}[m.paused])))

	return b.String()
}

// viewCommand creates the view command: an interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		configPath string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "view <graph.json>",
		Short: "View a layout interactively in the terminal",
		Long: `View a layout interactively in the terminal.

The simulation runs live while the viewer is open. Vertices can be
dragged with the mouse; a dragged vertex is pinned to the pointer and
excluded from force displacement until released.`,
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
				return err
			}

			eng, err := layout.New(cfg)
			if err != nil {
				return err
			}
			if err := eng.Bind(g); err != nil {
				return err
			}

			p := tea.NewProgram(newViewerModel(eng, cfg),
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML simulation parameter file")
	cmd.Flags().Int64Var(&seed, "seed", 0, "spawn placement seed (0 uses the current time)")

	return cmd
}
