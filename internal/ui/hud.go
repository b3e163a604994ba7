//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"termlife/internal/command"
)

// HUD renders the status panel to the right of the board and turns clicks on
// its buttons into commands.
type HUD struct {
	width        int
	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
	status       Status
	rows         []hudRow
	out          *command.Queue

	pixel *ebiten.Image
}

type hudRow struct {
	row       Row
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD with the given panel width that pushes button
// presses onto out.
func NewHUD(width int, out *command.Queue) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, out: out}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Update refreshes the displayed status and handles button clicks. offsetX is
// the screen x coordinate of the panel's left edge.
func (h *HUD) Update(st Status, offsetX int) {
	h.status = st
	h.panelOffsetX = offsetX
	h.layoutRows(st.Rows())

	if h.out == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	x -= h.panelOffsetX
	for _, r := range h.rows {
		if r.row.Minus != "" && pointInRect(x, y, r.minusRect) {
			h.out.Push(r.row.Minus)
			return
		}
		if r.row.Plus != "" && pointInRect(x, y, r.plusRect) {
			h.out.Push(r.row.Plus)
			return
		}
	}
}

// Draw renders the panel at x offset on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 22, G: 24, B: 30, A: 255})
	h.drawRows()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRows() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.status.Title(), face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, r := range h.rows {
		labelY := r.top + labelBaseline
		text.Draw(h.panel, r.row.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if r.row.Label == "State" && h.status.Paused {
			valueColor = color.RGBA{R: 240, G: 190, B: 90, A: 255}
		}
		bounds := text.BoundString(face, r.row.Value)
		valueX := r.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, r.row.Value, face, valueX, labelY, valueColor)

		if r.row.Minus != "" {
			h.drawButton(r.minusRect, "-")
		}
		if r.row.Plus != "" {
			label := "+"
			if r.row.Minus == "" {
				label = ">"
			}
			h.drawButton(r.plusRect, label)
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutRows(rows []Row) {
	h.rows = h.rows[:0]
	for i, r := range rows {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.rows = append(h.rows, hudRow{row: r, top: top, minusRect: minusRect, plusRect: plusRect})
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
