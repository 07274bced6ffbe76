// Package render draws engine frames onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/roadrush/constants"
	"github.com/lixenwraith/roadrush/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lane marker pattern in canvas pixels
const (
	laneDashLength = 40
	lanePeriod     = 80
)

var (
	styleRoad      = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleLane      = styleRoad.Foreground(tcell.ColorWhite)
	styleShoulder  = styleRoad.Foreground(tcell.ColorGray)
	styleCar       = styleRoad.Foreground(tcell.ColorYellow)
	styleCarBoost  = styleRoad.Foreground(tcell.ColorOrangeRed)
	stylePed       = styleRoad.Foreground(tcell.ColorFuchsia)
	styleText      = styleRoad.Foreground(tcell.ColorWhite)
	styleBoostText = styleRoad.Foreground(tcell.ColorYellow).Bold(true)
	styleOverlay   = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite).Bold(true)
)

// TerminalRenderer scales the canvas onto the full terminal
type TerminalRenderer struct {
	screen  tcell.Screen
	printer *message.Printer
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen:  screen,
		printer: message.NewPrinter(language.English),
	}
}

// Draw renders one frame and flushes it to the terminal
func (r *TerminalRenderer) Draw(f engine.Frame) {
	r.screen.Clear()
	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 || f.CanvasWidth <= 0 || f.CanvasHeight <= 0 {
		r.screen.Show()
		return
	}
	vp := viewport{cols: cols, rows: rows, w: f.CanvasWidth, h: f.CanvasHeight}

	r.drawRoad(vp, f.RoadOffset)

	carStyle := styleCar
	if f.Boosting {
		carStyle = styleCarBoost
	}
	r.fillRect(vp, f.Vehicle, constants.GlyphCar, carStyle)
	for _, o := range f.Obstacles {
		r.fillRect(vp, o, constants.GlyphPedestrian, stylePed)
	}

	r.drawHUD(vp, f)

	for _, p := range f.Particles {
		r.drawParticle(vp, p)
	}

	if f.Over {
		r.drawGameOver(vp, f.Score)
	}

	r.screen.Show()
}

// viewport maps canvas pixels to terminal cells
type viewport struct {
	cols, rows int
	w, h       float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.w))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * float64(v.rows) / v.h))
}

// canvasY returns the canvas y at the centre of a terminal row
func (v viewport) canvasY(row int) float64 {
	return (float64(row) + 0.5) * v.h / float64(v.rows)
}

// cellSpan converts [lo, hi) canvas range into an inclusive cell range, at least one cell wide
func cellSpan(lo, hi float64, cells int, size float64) (int, int) {
	first := int(math.Floor(lo * float64(cells) / size))
	last := int(math.Ceil(hi*float64(cells)/size)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// RoadTileY returns the y inside the road tile visible at canvas y
// The tile is drawn at offset and at offset-height, so every y shows exactly one copy
func RoadTileY(y, offset, height float64) float64 {
	t := math.Mod(y-offset, height)
	if t < 0 {
		t += height
	}
	return t
}

// LaneDash reports whether the lane marker is painted at tile y
func LaneDash(tileY float64) bool {
	return math.Mod(tileY, lanePeriod) < laneDashLength
}

func (r *TerminalRenderer) drawRoad(v viewport, offset float64) {
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleRoad)
		}
		r.screen.SetContent(0, y, constants.GlyphShoulder, nil, styleShoulder)
		r.screen.SetContent(v.cols-1, y, constants.GlyphShoulder, nil, styleShoulder)

		if !LaneDash(RoadTileY(v.canvasY(y), offset, v.h)) {
			continue
		}
		r.screen.SetContent(v.col(v.w/3), y, constants.GlyphLane, nil, styleLane)
		r.screen.SetContent(v.col(2*v.w/3), y, constants.GlyphLane, nil, styleLane)
	}
}

func (r *TerminalRenderer) fillRect(v viewport, rect engine.Rect, glyph rune, style tcell.Style) {
	x0, x1 := cellSpan(rect.X, rect.Right(), v.cols, v.w)
	y0, y1 := cellSpan(rect.Y, rect.Bottom(), v.rows, v.h)
	for y := max(y0, 0); y <= min(y1, v.rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, v.cols-1); x++ {
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// drawParticle shades the wind mark by its alpha over the black road
func (r *TerminalRenderer) drawParticle(v viewport, p engine.Particle) {
	x, y := v.col(p.X), v.row(p.Y)
	if x < 0 || x >= v.cols || y < 0 || y >= v.rows {
		return
	}
	level := int32(math.Max(0, math.Min(1, p.Alpha)) * 255)
	style := styleRoad.Foreground(tcell.NewRGBColor(level, level, level))
	r.screen.SetContent(x, y, constants.GlyphWind, nil, style)
}

func (r *TerminalRenderer) drawHUD(v viewport, f engine.Frame) {
	r.drawText(1, v.rows-1, r.ScoreText(f.Score), styleText)

	if f.Boosting {
		r.drawText(v.cols-len(constants.TextBoost)-2, 0, constants.TextBoost, styleBoostText)
		r.drawText(v.cols-constants.BoostGaugeWidth-2, 1, BoostGauge(f, constants.BoostGaugeWidth), styleBoostText)
	}

	status := CooldownText(f)
	r.drawText((v.cols-len(status))/2, 0, status, styleText)
}

func (r *TerminalRenderer) drawGameOver(v viewport, score int) {
	lines := []string{
		"",
		constants.TextGameOver,
		r.ScoreText(score),
		constants.TextRestart,
		"",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4

	top := (v.rows - len(lines)) / 2
	left := (v.cols - width) / 2
	for i, l := range lines {
		y := top + i
		for x := left; x < left+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleOverlay)
		}
		r.drawText(left+(width-len(l))/2, y, l, styleOverlay)
	}
}

func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// ScoreText formats the score with digit grouping
func (r *TerminalRenderer) ScoreText(score int) string {
	return r.printer.Sprintf("Score: %d", score)
}

// BoostGauge renders the remaining boost as a bar of width cells, rounded up
// so the last tick of a boost still shows one full cell
func BoostGauge(f engine.Frame, width int) string {
	filled := int(math.Ceil(f.BoostFraction() * float64(width)))
	filled = max(0, min(filled, width))
	return strings.Repeat(string(constants.GlyphGaugeFull), filled) +
		strings.Repeat(string(constants.GlyphGaugeEmpty), width-filled)
}

// CooldownText is the boost status line
func CooldownText(f engine.Frame) string {
	if f.Cooldown > 0 {
		return fmt.Sprintf("Boost Cooldown: %.1fs", f.CooldownSeconds(constants.CooldownDisplayDivisor))
	}
	return constants.TextBoostReady
}
