//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"termlife/internal/core"
)

// Overlay draws optional visuals on top of the board: a border marking the
// hard edges of a bounded board and an optional cell grid.
type Overlay struct {
	size     core.Size
	scale    int
	showGrid bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay for a board of the given size.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the cell grid with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay. wrap selects whether the edge border is shown.
func (o *Overlay) Draw(screen *ebiten.Image, wrap bool) {
	if o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	w := float64(o.size.W * scale)
	h := float64(o.size.H * scale)

	if o.showGrid && scale >= 4 {
		line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for x := 1; x < o.size.W; x++ {
			o.drawRect(screen, float64(x*scale), 0, 1, h, line)
		}
		for y := 1; y < o.size.H; y++ {
			o.drawRect(screen, 0, float64(y*scale), w, 1, line)
		}
	}

	if !wrap {
		edge := color.RGBA{R: 200, G: 60, B: 60, A: 255}
		const t = 2
		o.drawRect(screen, 0, 0, w, t, edge)
		o.drawRect(screen, 0, h-t, w, t, edge)
		o.drawRect(screen, 0, 0, t, h, edge)
		o.drawRect(screen, w-t, 0, t, h, edge)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
