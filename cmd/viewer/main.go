package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/skamp931/frustum-viewer/engine/input"
	"github.com/skamp931/frustum-viewer/engine/render3d"
	"github.com/skamp931/frustum-viewer/engine/scene"
	"github.com/skamp931/frustum-viewer/engine/ui"
	"github.com/skamp931/frustum-viewer/engine/viewercfg"
)

const (
	diameterStep = 0.1
	heightStep   = 0.1
)

// Game implements ebiten.Game interface
type Game struct {
	scene    *scene.Scene
	renderer *render3d.MeshRenderer
	hud      *ui.HUD
	input    *input.State
	style    render3d.Style

	showGrid bool
	showAxes bool

	screenW, screenH int
}

func NewGame(prefs viewercfg.Prefs, params scene.Params) (*Game, error) {
	s, err := scene.New(params)
	if err != nil {
		return nil, err
	}

	meshColor, err := render3d.ParseColor(prefs.MeshColor)
	if err != nil {
		return nil, err
	}

	g := &Game{
		scene:    s,
		renderer: render3d.NewMeshRenderer(prefs.WindowWidth, prefs.WindowHeight),
		hud:      ui.NewHUD(prefs.WindowWidth, prefs.WindowHeight),
		input:    input.NewState(),
		style:    render3d.Style{Color: meshColor, Opacity: prefs.MeshOpacity},
		showGrid: prefs.ShowGrid,
		showAxes: prefs.ShowAxes,
		screenW:  prefs.WindowWidth,
		screenH:  prefs.WindowHeight,
	}

	// Frame the initial mesh
	g.renderer.Camera.FitBounds(s.Mesh().Bounds())

	// Surface rejected edits on the HUD; accepted ones show up through the
	// scene itself on the next frame.
	s.Bus().On(scene.EvtParamsRejected, func(e scene.Event) {
		g.hud.SetNotice(fmt.Sprint(e.Payload))
	})

	return g, nil
}

func (g *Game) Update() error {
	g.input.Update()
	g.hud.Tick()

	g.handleCamera()
	g.handleToggles()
	g.handleDimensionKeys()

	g.scene.Bus().Dispatch()
	return nil
}

func (g *Game) handleCamera() {
	cam := g.renderer.Camera

	// Left-drag orbits; with shift (or middle mouse) it pans instead
	if g.input.Dragging || g.input.MiddlePressed {
		if g.input.ShiftPressed || g.input.MiddlePressed {
			cam.Pan(float64(g.input.MouseDX), float64(g.input.MouseDY))
		} else {
			cam.Rotate(-float64(g.input.MouseDX)*0.01, float64(g.input.MouseDY)*0.01)
		}
	}

	if g.input.ScrollY != 0 {
		cam.Dolly(g.input.ScrollY)
	}

	if g.input.IsKeyJustPressed(ebiten.KeyR) {
		cam.FitBounds(g.scene.Mesh().Bounds())
	}
	if g.input.IsKeyJustPressed(ebiten.KeyEscape) {
		cam.Reset()
	}
}

func (g *Game) handleToggles() {
	if g.input.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if g.input.IsKeyJustPressed(ebiten.KeyX) {
		g.showAxes = !g.showAxes
	}
}

func (g *Game) handleDimensionKeys() {
	type nudge struct {
		key ebiten.Key
		f   func(*scene.Params)
	}
	nudges := []nudge{
		{ebiten.KeyQ, func(p *scene.Params) { p.TopDiameter += diameterStep }},
		{ebiten.KeyA, func(p *scene.Params) { p.TopDiameter = max(0, p.TopDiameter-diameterStep) }},
		{ebiten.KeyW, func(p *scene.Params) { p.BottomDiameter += diameterStep }},
		{ebiten.KeyS, func(p *scene.Params) { p.BottomDiameter = max(0, p.BottomDiameter-diameterStep) }},
		{ebiten.KeyE, func(p *scene.Params) { p.Height += heightStep }},
		{ebiten.KeyD, func(p *scene.Params) { p.Height -= heightStep }},
		{ebiten.KeyBracketRight, func(p *scene.Params) { p.Segments++ }},
		{ebiten.KeyBracketLeft, func(p *scene.Params) { p.Segments-- }},
	}
	for _, n := range nudges {
		if g.input.KeyRepeat(n.key) {
			// Rejected edits keep the old mesh; the bus handler shows why
			_ = g.scene.Edit(n.f)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawSkyGradient(screen)

	bounds := g.scene.Mesh().Bounds()
	if g.showGrid {
		g.renderer.DrawFloorGrid(screen, bounds)
	}
	if g.showAxes {
		g.renderer.DrawAxes(screen, g.scene.Params().Center, bounds.Size().Len()*0.6)
	}

	g.renderer.DrawMesh(screen, g.scene.Mesh(), g.style)

	g.hud.Draw(screen, g.scene.Params().Title(), g.scene.Summary(), ebiten.ActualFPS())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.screenW || outsideHeight != g.screenH {
		g.screenW, g.screenH = outsideWidth, outsideHeight
		g.renderer.Camera.Resize(outsideWidth, outsideHeight)
		g.hud.Resize(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

func main() {
	configPath := flag.String("config", viewercfg.DefaultPath, "preferences file")
	top := flag.Float64("top", 0, "top diameter in meters")
	bottom := flag.Float64("bottom", 0, "bottom diameter in meters")
	height := flag.Float64("height", 0, "height in meters")
	segments := flag.Int("segments", 0, "angular segments (>= 3)")
	flag.Parse()

	prefs, err := viewercfg.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	params := scene.Params{
		TopDiameter:    prefs.Dimensions.TopDiameter,
		BottomDiameter: prefs.Dimensions.BottomDiameter,
		Height:         prefs.Dimensions.Height,
		Segments:       prefs.Dimensions.Segments,
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "top":
			params.TopDiameter = *top
		case "bottom":
			params.BottomDiameter = *bottom
		case "height":
			params.Height = *height
		case "segments":
			params.Segments = *segments
		}
	})

	game, err := NewGame(prefs, params)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(prefs.WindowWidth, prefs.WindowHeight)
	ebiten.SetWindowTitle("Frustum Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	// Persist the dimensions the viewer was closed on
	p := game.scene.Params()
	prefs.Dimensions = viewercfg.Dimensions{
		TopDiameter:    p.TopDiameter,
		BottomDiameter: p.BottomDiameter,
		Height:         p.Height,
		Segments:       p.Segments,
	}
	prefs.ShowGrid = game.showGrid
	prefs.ShowAxes = game.showAxes
	if err := viewercfg.Save(*configPath, prefs); err != nil {
		log.Printf("saving preferences: %v", err)
	}
}
