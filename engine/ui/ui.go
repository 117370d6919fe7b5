package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPad   = 10
	lineHeight = 16
	noticeTTL  = 240 // frames
)

// HUD draws the dashboard chrome around the 3D viewport: a title bar, the
// dimension summary panel, a key-binding footer, and transient notices.
type HUD struct {
	ScreenW, ScreenH int

	face text.Face

	notice       string
	noticeFrames int
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW: sw,
		ScreenH: sh,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Resize updates the layout for a new screen size
func (h *HUD) Resize(w, ht int) {
	h.ScreenW, h.ScreenH = w, ht
}

// SetNotice shows a transient message (e.g. a rejected dimension edit)
func (h *HUD) SetNotice(msg string) {
	h.notice = msg
	h.noticeFrames = noticeTTL
}

// Tick ages transient state; call once per frame
func (h *HUD) Tick() {
	if h.noticeFrames > 0 {
		h.noticeFrames--
	}
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image, title string, summary []string, fps float64) {
	h.drawTopBar(screen, title, fps)
	h.drawSummaryPanel(screen, summary)
	h.drawFooter(screen)
	h.drawNotice(screen)
}

func (h *HUD) drawTopBar(screen *ebiten.Image, title string, fps float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), 26, color.RGBA{0, 0, 0, 180}, false)
	h.print(screen, title, panelPad, 6, color.RGBA{235, 235, 245, 255})
	fpsText := fmt.Sprintf("FPS %.0f", fps)
	h.print(screen, fpsText, h.ScreenW-len(fpsText)*7-panelPad, 6, color.RGBA{150, 150, 170, 255})
}

func (h *HUD) drawSummaryPanel(screen *ebiten.Image, summary []string) {
	w := 0
	for _, line := range summary {
		if lw := len(line) * 7; lw > w {
			w = lw
		}
	}
	pw := float32(w + 2*panelPad)
	ph := float32(len(summary)*lineHeight + 2*panelPad)
	py := float32(36)
	vector.DrawFilledRect(screen, 0, py, pw, ph, color.RGBA{20, 20, 40, 200}, false)
	vector.StrokeRect(screen, 0, py, pw, ph, 1, color.RGBA{80, 80, 120, 255}, false)

	y := int(py) + panelPad
	for _, line := range summary {
		h.print(screen, line, panelPad, y, color.RGBA{210, 215, 230, 255})
		y += lineHeight
	}
}

func (h *HUD) drawFooter(screen *ebiten.Image) {
	const help = "[Drag] Rotate  [Shift+Drag/MMB] Pan  [Scroll] Zoom  [R] Reset  [G] Grid  [X] Axes  " +
		"[Q/A] Top  [W/S] Bottom  [E/D] Height  [[/]] Segments"
	barH := float32(22)
	y := float32(h.ScreenH) - barH
	vector.DrawFilledRect(screen, 0, y, float32(h.ScreenW), barH, color.RGBA{0, 0, 0, 160}, false)
	h.print(screen, help, panelPad, int(y)+4, color.RGBA{160, 165, 185, 255})
}

func (h *HUD) drawNotice(screen *ebiten.Image) {
	if h.noticeFrames == 0 || h.notice == "" {
		return
	}
	w := float32(len(h.notice)*7 + 2*panelPad)
	x := (float32(h.ScreenW) - w) / 2
	y := float32(40)
	vector.DrawFilledRect(screen, x, y, w, 24, color.RGBA{90, 20, 20, 220}, false)
	vector.StrokeRect(screen, x, y, w, 24, 1, color.RGBA{200, 70, 70, 255}, false)
	h.print(screen, h.notice, int(x)+panelPad, int(y)+5, color.RGBA{255, 200, 200, 255})
}

func (h *HUD) print(screen *ebiten.Image, s string, x, y int, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}
