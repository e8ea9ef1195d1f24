package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkoster/mandelgrid/internal/analysis"
	"github.com/pkoster/mandelgrid/internal/mandel"
	"github.com/pkoster/mandelgrid/internal/storage"
)

const (
	canvasWidth  = 80
	canvasHeight = 30
	panFraction  = 0.1
	zoomStep     = 2.0
)

// Explorer is the interactive viewport browser. Every move recomputes the
// full grid for the new window, so the screen always shows a complete
// classification pass, never an approximation of one.
type Explorer struct {
	region     mandel.Region
	regionName string
	home       mandel.Region
	homeName   string
	regionIdx  int

	grid     *mandel.Grid
	coverage float64
	elapsed  time.Duration

	canvas    *Canvas
	store     *storage.Store
	crosshair bool
	showHelp  bool
	status    string

	width, height int
}

// NewExplorer starts a session over the given viewport. The store may be
// nil, in which case snapshots are disabled.
func NewExplorer(name string, r mandel.Region, st *storage.Store) Explorer {
	e := Explorer{
		region:     r,
		regionName: name,
		home:       r,
		homeName:   name,
		regionIdx:  -1,
		canvas:     NewCanvas(canvasWidth, canvasHeight),
		store:      st,
		width:      80,
		height:     24,
	}
	for i, n := range mandel.RegionNames() {
		if n == name {
			e.regionIdx = i
			break
		}
	}
	e.recompute()
	return e
}

func (e Explorer) Init() tea.Cmd { return nil }

// Update handles input events. The fractal is static, so there is no tick
// loop; the grid is recomputed only when the viewport changes.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case "left", "h":
			sx, _ := e.region.Span()
			e.moveTo(e.region.Shifted(-panFraction*sx, 0))
		case "right", "l":
			sx, _ := e.region.Span()
			e.moveTo(e.region.Shifted(panFraction*sx, 0))
		case "up", "k":
			_, sy := e.region.Span()
			e.moveTo(e.region.Shifted(0, -panFraction*sy))
		case "down", "j":
			_, sy := e.region.Span()
			e.moveTo(e.region.Shifted(0, panFraction*sy))
		case "+", "=":
			e.moveTo(e.region.Zoomed(1 / zoomStep))
		case "-", "_":
			e.moveTo(e.region.Zoomed(zoomStep))
		case "r":
			e.region, e.regionName = e.home, e.homeName
			e.recompute()
		case "tab":
			e.cycleRegion()
		case "c":
			e.crosshair = !e.crosshair
			e.draw()
		case "s":
			e.snapshot()
		case "?":
			e.showHelp = !e.showHelp
		}
	case tea.WindowSizeMsg:
		e.width, e.height = msg.Width, msg.Height
	}
	return e, nil
}

// moveTo pans or zooms to a new window. Anything reached by moving is no
// longer the named landmark, so the label switches to custom.
func (e *Explorer) moveTo(r mandel.Region) {
	e.region = r
	e.regionName = "custom"
	e.recompute()
}

func (e *Explorer) cycleRegion() {
	names := mandel.RegionNames()
	e.regionIdx = (e.regionIdx + 1) % len(names)
	e.regionName = names[e.regionIdx]
	e.region, _ = mandel.RegionByName(e.regionName)
	e.recompute()
}

func (e *Explorer) recompute() {
	start := time.Now()
	e.grid = mandel.NewFromRegion(e.region)
	e.elapsed = time.Since(start)
	e.coverage = analysis.Coverage(e.grid)
	e.status = ""
	e.draw()
}

func (e *Explorer) draw() {
	e.canvas.DrawMembership(e.grid)
	if e.crosshair {
		dotsX, dotsY := canvasWidth*2, canvasHeight*4
		e.canvas.DrawLine(0, dotsY/2, dotsX-1, dotsY/2)
		e.canvas.DrawLine(dotsX/2, 0, dotsX/2, dotsY-1)
	}
}

func (e *Explorer) snapshot() {
	if e.store == nil {
		e.status = "no gallery configured"
		return
	}
	id, err := e.store.Save(e.regionName, e.region, e.grid, e.elapsed)
	if err != nil {
		e.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	e.status = "saved " + id
}

// View renders the TUI interface.
func (e Explorer) View() string {
	canvasView := canvasStyle.Render(e.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("MANDELGRID") + "\n")
	s.WriteString(fmt.Sprintf("%s\n\n", e.regionName))

	center := e.region.Center()
	sx, sy := e.region.Span()
	s.WriteString(labelStyle.Render("Center") + valueStyle.Render(center.String()) + "\n")
	s.WriteString(labelStyle.Render("Span") + valueStyle.Render(fmt.Sprintf("%.3g x %.3g", sx, sy)) + "\n")
	s.WriteString(labelStyle.Render("Coverage") + valueStyle.Render(fmt.Sprintf("%.1f%%", e.coverage*100)) + "\n")
	s.WriteString(labelStyle.Render("Budget") + valueStyle.Render(fmt.Sprintf("%d", mandel.IterBudget)) + "\n")
	s.WriteString(labelStyle.Render("Compute") + valueStyle.Render(fmt.Sprintf("%dms", e.elapsed.Milliseconds())) + "\n")

	if e.status != "" {
		s.WriteString("\n" + statusStyle.Render(e.status) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nhjkl:Pan +/-:Zoom R:Reset\nTab:Region C:Cross S:Save\n?:Help Q:Quit"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if e.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Arrows/HJKL - Pan a tenth of span   ║
║  +           - Zoom in (halve span)  ║
║  -           - Zoom out (double)     ║
║  Tab         - Cycle named regions   ║
║  R           - Reset to start        ║
║  C           - Toggle crosshair      ║
║  S           - Snapshot to gallery   ║
║  ?           - Toggle this help      ║
║  Q           - Quit                  ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// RunExplorer launches the TUI over the given viewport.
func RunExplorer(name string, r mandel.Region, st *storage.Store) error {
	return tea.NewProgram(NewExplorer(name, r, st), tea.WithAltScreen()).Start()
}
