package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wallery/wallery/pkg/catalog"
	"github.com/wallery/wallery/pkg/tape"
	"github.com/wallery/wallery/pkg/wall"
)

// Editor styles
var (
	editorTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editorHintStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editorStatusStyle = lipgloss.NewStyle().Foreground(colorGray)

	catalogSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	catalogNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	catalogPlacedStyle   = lipgloss.NewStyle().Foreground(colorDim)

	headerLightStyle = lipgloss.NewStyle().Background(lipgloss.Color("254")).Foreground(lipgloss.Color("238")).Bold(true)
	headerDarkStyle  = lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250")).Bold(true)
	furnitureStyle   = lipgloss.NewStyle().Foreground(colorDim)
	cardTitleStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	cardFillStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// Frame border tones, indexed by variant-1. Wood tones for plain
// frames, gold tones for ornate ones.
var (
	woodTones   = []lipgloss.Color{"94", "130", "137"}
	ornateTones = []lipgloss.Color{"178", "172", "136"}
)

// cardBorder is the rune set drawn around a hung artwork.
type cardBorder struct {
	tl, tr, bl, br, h, v string
}

var (
	plainCardBorder  = cardBorder{"┌", "┐", "└", "┘", "─", "│"}
	ornateCardBorder = cardBorder{"╔", "╗", "╚", "╝", "═", "║"}
)

const (
	catalogPaneWidth = 32 // columns reserved for the catalog list
	bodyTopRow       = 2  // rows above the panes: title and hints
	nudgeStep        = 20 // wall pixels moved per arrow press

	minEditorWidth  = 60
	minEditorHeight = 16
)

// =============================================================================
// hangModel - Interactive wall editor
// =============================================================================

// tapeSampledMsg delivers an asynchronous tape sample back to the
// update loop. Decoration draws happen there, where the session rng
// lives.
type tapeSampledMsg struct {
	artworkID string
	at        wall.Point
	color     tape.Color
	ok        bool
}

// hangModel is the bubbletea model for the interactive wall editor. The
// left pane lists the catalog, the right pane projects the wall canvas
// onto terminal cells.
type hangModel struct {
	ctx  context.Context
	app  *app
	rng  *rand.Rand
	arts []catalog.Artwork

	cursor  int
	offset  int
	pending map[string]bool // artwork ids with a sample in flight
	width   int
	height  int
	status  string
}

func newHangModel(ctx context.Context, a *app, rng *rand.Rand) hangModel {
	return hangModel{
		ctx:     ctx,
		app:     a,
		rng:     rng,
		arts:    a.catalog.Artworks(),
		pending: map[string]bool{},
		status:  "pick an artwork and press enter to hang it",
	}
}

func (m hangModel) Init() tea.Cmd {
	return nil
}

func (m hangModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tapeSampledMsg:
		return m.handleSampled(msg)
	}
	return m, nil
}

func (m hangModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(m.arts)-1 {
			m.cursor++
			if visible := m.wallRows(); m.cursor >= m.offset+visible {
				m.offset = m.cursor - visible + 1
			}
		}
	case "enter":
		return m.placeSelected()
	case "tab", "r":
		m.app.engine.SwitchRoom(m.app.state.ActiveRoom().Other())
		m.status = fmt.Sprintf("switched to the %s", m.app.state.ActiveRoom())
	case "f":
		return m.cycleSelected()
	case "x", "backspace":
		return m.removeSelected()
	case "d":
		m.status = m.app.state.ToggleAppearance() + " appearance"
	case "left":
		return m.nudgeSelected(-nudgeStep, 0)
	case "right":
		return m.nudgeSelected(nudgeStep, 0)
	case "shift+up":
		return m.nudgeSelected(0, -nudgeStep)
	case "shift+down":
		return m.nudgeSelected(0, nudgeStep)
	}
	return m, nil
}

// selected returns the artwork under the catalog cursor.
func (m hangModel) selected() (catalog.Artwork, bool) {
	if m.cursor < 0 || m.cursor >= len(m.arts) {
		return catalog.Artwork{}, false
	}
	return m.arts[m.cursor], true
}

func (m hangModel) placeSelected() (tea.Model, tea.Cmd) {
	art, ok := m.selected()
	if !ok {
		return m, nil
	}
	if room, placed := m.app.state.PlacedRoom(art.ID); placed {
		m.status = fmt.Sprintf("%q is already hung in the %s", art.Title, room)
		return m, nil
	}
	if m.pending[art.ID] {
		return m, nil
	}
	m.pending[art.ID] = true
	m.status = fmt.Sprintf("sampling tape color for %q...", art.Title)
	return m, sampleTape(m.ctx, m.app.resolver, art.ID, art.Image, wall.DefaultPlacePosition)
}

// sampleTape fetches and samples the artwork image off the update loop.
func sampleTape(ctx context.Context, resolver *tape.Resolver, artworkID, imageRef string, at wall.Point) tea.Cmd {
	return func() tea.Msg {
		c, err := resolver.Resolve(ctx, imageRef, false)
		return tapeSampledMsg{artworkID: artworkID, at: at, color: c, ok: err == nil}
	}
}

func (m hangModel) handleSampled(msg tapeSampledMsg) (tea.Model, tea.Cmd) {
	delete(m.pending, msg.artworkID)

	art, ok := m.app.catalog.Get(msg.artworkID)
	if !ok {
		return m, nil
	}
	tapeColor := tape.Fallback
	if msg.ok {
		tapeColor = tape.DeriveFrom(msg.color, m.rng, m.app.cfg.Tape.Palette)
	}
	deco := wall.Decorate(m.rng, tapeColor)
	if _, placed := m.app.engine.Place(art, msg.at, deco); placed {
		m.status = fmt.Sprintf("hung %q in the %s", art.Title, m.app.state.ActiveRoom())
	}
	return m, nil
}

func (m hangModel) cycleSelected() (tea.Model, tea.Cmd) {
	art, ok := m.selected()
	if !ok {
		return m, nil
	}
	next, err := m.app.engine.CycleFrame(art.ID)
	if err != nil {
		m.status = fmt.Sprintf("%q is not hung in this room", art.Title)
		return m, nil
	}
	m.status = fmt.Sprintf("framed %q with %s", art.Title, next)
	return m, nil
}

func (m hangModel) removeSelected() (tea.Model, tea.Cmd) {
	art, ok := m.selected()
	if !ok {
		return m, nil
	}
	if m.app.engine.Remove(art.ID) {
		m.status = fmt.Sprintf("removed %q", art.Title)
	} else {
		m.status = fmt.Sprintf("%q is not hung in this room", art.Title)
	}
	return m, nil
}

func (m hangModel) nudgeSelected(dx, dy float64) (tea.Model, tea.Cmd) {
	art, ok := m.selected()
	if !ok {
		return m, nil
	}
	p, ok := m.app.state.Find(m.app.state.ActiveRoom(), art.ID)
	if !ok {
		m.status = fmt.Sprintf("%q is not hung in this room", art.Title)
		return m, nil
	}
	if err := m.app.engine.BeginDrag(art.ID, p.Position()); err != nil {
		return m, nil
	}
	moved, _ := m.app.engine.UpdateDrag(wall.Point{X: p.X + dx, Y: p.Y + dy})
	m.app.engine.EndDrag()
	m.status = fmt.Sprintf("moved %q to %s", art.Title, formatPoint(moved.Position()))
	return m, nil
}

// =============================================================================
// Mouse handling - Click to grab, motion to drag, release to drop
// =============================================================================

func (m hangModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, ok := m.catalogIndexAt(msg.X, msg.Y); ok {
			// Clicking a catalog entry hangs it at the standard landing
			// spot, same as pressing enter on it.
			m.cursor = idx
			return m.placeSelected()
		}
		point, ok := m.wallPointAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if id, hit := m.placementAt(point); hit {
			if err := m.app.engine.BeginDrag(id, point); err == nil {
				m.status = "dragging " + id
			}
		}
	case tea.MouseActionMotion:
		if _, dragging := m.app.engine.Dragging(); !dragging {
			return m, nil
		}
		if point, ok := m.wallPointAt(msg.X, msg.Y); ok {
			m.app.engine.UpdateDrag(point)
		}
	case tea.MouseActionRelease:
		if id, dragging := m.app.engine.Dragging(); dragging {
			m.app.engine.EndDrag()
			if p, ok := m.app.state.Find(m.app.state.ActiveRoom(), id); ok {
				m.status = fmt.Sprintf("dropped at %s", formatPoint(p.Position()))
			}
		}
	}
	return m, nil
}

// placementAt hit-tests the active collection in reverse z-order, so
// the topmost card wins.
func (m hangModel) placementAt(p wall.Point) (string, bool) {
	collection := m.app.state.ActiveCollection()
	for i := len(collection) - 1; i >= 0; i-- {
		pl := collection[i]
		art, ok := m.app.catalog.Get(pl.ArtworkID)
		if !ok {
			continue
		}
		size := wall.RenderedSize(art.Width, art.Height)
		if p.X >= pl.X && p.X <= pl.X+size.Width && p.Y >= pl.Y && p.Y <= pl.Y+size.Height {
			return pl.ArtworkID, true
		}
	}
	return "", false
}

// wallPointAt maps a terminal cell to wall coordinates. The Y result is
// negative inside the header band.
func (m hangModel) wallPointAt(x, y int) (wall.Point, bool) {
	cols, rows := m.wallPaneSize()
	col := x - catalogPaneWidth - 1
	row := y - bodyTopRow
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return wall.Point{}, false
	}
	geo := m.app.engine.Geometry()
	canvasX := (float64(col) + 0.5) * geo.CanvasWidth / float64(cols)
	canvasY := (float64(row) + 0.5) * geo.CanvasHeight / float64(rows)
	return wall.Point{X: canvasX, Y: canvasY - geo.HeaderHeight}, true
}

// catalogIndexAt maps a terminal cell to a catalog entry.
func (m hangModel) catalogIndexAt(x, y int) (int, bool) {
	if x >= catalogPaneWidth {
		return 0, false
	}
	idx := y - bodyTopRow + m.offset
	if idx < 0 || idx >= len(m.arts) {
		return 0, false
	}
	return idx, true
}

// =============================================================================
// View - Catalog pane and projected wall pane
// =============================================================================

func (m hangModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < minEditorWidth || m.height < minEditorHeight {
		return editorHintStyle.Render(fmt.Sprintf("terminal too small, need at least %dx%d", minEditorWidth, minEditorHeight))
	}

	var b strings.Builder
	b.WriteString(editorTitleStyle.Render("wallery"))
	b.WriteString(editorStatusStyle.Render(" · " + string(m.app.state.ActiveRoom())))
	b.WriteString("\n")
	b.WriteString(editorHintStyle.Render("↑/↓ browse  ⏎ hang  f frame  x remove  ←/→ ⇧↑/⇧↓ nudge  tab room  d appearance  q quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewCatalog(), " ", m.viewWall()))
	b.WriteString("\n")
	b.WriteString(editorStatusStyle.Render(m.status))
	return b.String()
}

func (m hangModel) viewCatalog() string {
	visible := m.wallRows()
	end := m.offset + visible
	if end > len(m.arts) {
		end = len(m.arts)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		art := m.arts[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		note := ""
		room, placed := m.app.state.PlacedRoom(art.ID)
		switch {
		case m.pending[art.ID]:
			note = " …"
		case placed:
			note = " · " + string(room)
		}

		line := truncateLine(cursor+art.Title+note, catalogPaneWidth-1)
		switch {
		case i == m.cursor:
			b.WriteString(catalogSelectedStyle.Render(line))
		case placed:
			b.WriteString(catalogPlacedStyle.Render(line))
		default:
			b.WriteString(catalogNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(catalogPaneWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m hangModel) viewWall() string {
	cols, rows := m.wallPaneSize()
	g := newCellGrid(cols, rows)
	geo := m.app.engine.Geometry()
	room := m.app.state.ActiveRoom()
	dark := m.app.state.Prefs().Appearance == wall.AppearanceDark

	m.paintHeader(g, geo, room, dark)
	m.paintFurniture(g, geo, room)

	selectedID := ""
	if art, ok := m.selected(); ok {
		selectedID = art.ID
	}
	for _, p := range m.app.state.Collection(room) {
		m.paintCard(g, geo, p, p.ArtworkID == selectedID)
	}

	return g.String()
}

// paintHeader draws the reserved band at the top of the canvas.
func (m hangModel) paintHeader(g *cellGrid, geo wall.Geometry, room wall.Room, dark bool) {
	style := headerLightStyle
	if dark {
		style = headerDarkStyle
	}
	_, headerRows := m.toCell(geo, 0, geo.HeaderHeight)
	if headerRows < 1 {
		headerRows = 1
	}
	g.fill(0, 0, g.cols-1, headerRows-1, style.Render(" "))

	label := roomLabel(room)
	g.text(1, headerRows/2, label, style)
	g.text(g.cols-len("wallery")-1, headerRows/2, "wallery", style)
}

// paintFurniture draws the bench or bed band at the bottom of the
// canvas.
func (m hangModel) paintFurniture(g *cellGrid, geo wall.Geometry, room wall.Room) {
	_, top := m.toCell(geo, 0, geo.CanvasHeight-geo.FurnitureHeight(room))
	if top >= g.rows {
		return
	}

	if room == wall.RoomBedroom {
		// Bed: pillow, mattress slab, feet.
		c0, c1 := g.cols*3/10, g.cols*7/10
		g.fill(c0+1, top, c0+4, top, furnitureStyle.Render("▄"))
		g.fill(c0, top+1, c1, top+1, furnitureStyle.Render("█"))
		g.set(c0, top+2, furnitureStyle.Render("▌"))
		g.set(c1, top+2, furnitureStyle.Render("▐"))
		return
	}

	// Bench: slab with two legs.
	c0, c1 := g.cols*35/100, g.cols*65/100
	g.fill(c0, top+1, c1, top+1, furnitureStyle.Render("▄"))
	g.set(c0+1, top+2, furnitureStyle.Render("█"))
	g.set(c1-1, top+2, furnitureStyle.Render("█"))
}

// paintCard draws one hung artwork as a bordered card.
func (m hangModel) paintCard(g *cellGrid, geo wall.Geometry, p wall.Placement, selected bool) {
	art, ok := m.app.catalog.Get(p.ArtworkID)
	if !ok {
		return
	}
	size := wall.RenderedSize(art.Width, art.Height)
	c0, r0 := m.toCell(geo, p.X, geo.HeaderHeight+p.Y)
	c1, r1 := m.toCell(geo, p.X+size.Width, geo.HeaderHeight+p.Y+size.Height)
	if c1 < c0+3 {
		c1 = c0 + 3
	}
	if r1 < r0+2 {
		r1 = r0 + 2
	}

	frame := p.Frame
	if frame == "" {
		frame = wall.FrameNone
	}
	tapeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Decoration.TapeColor))

	switch frame {
	case wall.FramePlain:
		style := lipgloss.NewStyle().Foreground(variantColor(woodTones, p.Decoration.WoodVariant))
		m.paintCardBody(g, c0+1, r0+1, c1-1, r1-1, art.Title, selected)
		drawCardBorder(g, c0, r0, c1, r1, plainCardBorder, style.Bold(selected))
	case wall.FrameOrnate:
		style := lipgloss.NewStyle().Foreground(variantColor(ornateTones, p.Decoration.OrnateVariant))
		m.paintCardBody(g, c0+1, r0+1, c1-1, r1-1, art.Title, selected)
		drawCardBorder(g, c0, r0, c1, r1, ornateCardBorder, style.Bold(selected))
	case wall.FrameWashi:
		m.paintCardBody(g, c0, r0, c1, r1, art.Title, selected)
		tl, tr, bl, br := "╱", "╲", "╲", "╱"
		if p.Decoration.TapeTilt {
			tl, tr, bl, br = "╲", "╱", "╱", "╲"
		}
		g.set(c0, r0, tapeStyle.Render(tl))
		g.set(c1, r0, tapeStyle.Render(tr))
		g.set(c0, r1, tapeStyle.Render(bl))
		g.set(c1, r1, tapeStyle.Render(br))
	default:
		m.paintCardBody(g, c0, r0, c1, r1, art.Title, selected)
		mid := (c0 + c1) / 2
		if p.Decoration.TapeTilt {
			mid--
		}
		g.set(mid, r0, tapeStyle.Render("▀"))
		g.set(mid+1, r0, tapeStyle.Render("▀"))
	}
}

// paintCardBody fills the card interior and centers the title on its
// middle row.
func (m hangModel) paintCardBody(g *cellGrid, c0, r0, c1, r1 int, title string, selected bool) {
	g.fill(c0, r0, c1, r1, cardFillStyle.Render("░"))

	width := c1 - c0 + 1
	if width < 1 {
		return
	}
	label := truncateLine(title, width)
	col := c0 + (width-len([]rune(label)))/2
	style := cardTitleStyle
	if selected {
		style = catalogSelectedStyle
	}
	g.text(col, (r0+r1)/2, label, style)
}

// =============================================================================
// Helpers
// =============================================================================

// cellGrid is a fixed-size grid of pre-styled screen cells.
type cellGrid struct {
	cols, rows int
	cells      [][]string
}

func newCellGrid(cols, rows int) *cellGrid {
	cells := make([][]string, rows)
	for r := range cells {
		row := make([]string, cols)
		for c := range row {
			row[c] = " "
		}
		cells[r] = row
	}
	return &cellGrid{cols: cols, rows: rows, cells: cells}
}

func (g *cellGrid) set(col, row int, cell string) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row][col] = cell
}

func (g *cellGrid) fill(col0, row0, col1, row1 int, cell string) {
	for r := row0; r <= row1; r++ {
		for c := col0; c <= col1; c++ {
			g.set(c, r, cell)
		}
	}
}

// text writes a string one styled cell at a time, clipping at the grid
// edges.
func (g *cellGrid) text(col, row int, s string, style lipgloss.Style) {
	for i, r := range []rune(s) {
		g.set(col+i, row, style.Render(string(r)))
	}
}

func (g *cellGrid) String() string {
	lines := make([]string, g.rows)
	for r, row := range g.cells {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func drawCardBorder(g *cellGrid, c0, r0, c1, r1 int, b cardBorder, style lipgloss.Style) {
	g.set(c0, r0, style.Render(b.tl))
	g.set(c1, r0, style.Render(b.tr))
	g.set(c0, r1, style.Render(b.bl))
	g.set(c1, r1, style.Render(b.br))
	for c := c0 + 1; c < c1; c++ {
		g.set(c, r0, style.Render(b.h))
		g.set(c, r1, style.Render(b.h))
	}
	for r := r0 + 1; r < r1; r++ {
		g.set(c0, r, style.Render(b.v))
		g.set(c1, r, style.Render(b.v))
	}
}

// variantColor picks a tone by 1-based variant, tolerating out-of-range
// values from hand-written snapshots.
func variantColor(tones []lipgloss.Color, variant int) lipgloss.Color {
	if variant < 1 || variant > len(tones) {
		return tones[0]
	}
	return tones[variant-1]
}

// wallPaneSize returns the wall pane's cell dimensions.
func (m hangModel) wallPaneSize() (int, int) {
	cols := m.width - catalogPaneWidth - 1
	rows := m.height - bodyTopRow - 1
	if cols < 20 {
		cols = 20
	}
	if rows < 10 {
		rows = 10
	}
	return cols, rows
}

func (m hangModel) wallRows() int {
	_, rows := m.wallPaneSize()
	return rows
}

// toCell maps canvas coordinates to a grid cell.
func (m hangModel) toCell(geo wall.Geometry, canvasX, canvasY float64) (int, int) {
	cols, rows := m.wallPaneSize()
	col := int(canvasX * float64(cols) / geo.CanvasWidth)
	row := int(canvasY * float64(rows) / geo.CanvasHeight)
	return col, row
}

// roomLabel returns the header label for a room.
func roomLabel(room wall.Room) string {
	name := string(room)
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// truncateLine cuts a line to at most width cells, marking the cut with
// an ellipsis.
func truncateLine(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(runes[:width-1]) + "…"
}
