package main

import (
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goplan/internal/interaction"
	"github.com/philipparndt/goplan/internal/layer"
	"go.uber.org/zap"
)

var layerKinds = []layer.SurfaceKind{layer.Wall, layer.Floor, layer.Ceiling, layer.Hidden}

// inputState remembers what raylib only reports as levels
type inputState struct {
	fingers  int
	lastX    float32
	lastY    float32
	hasMouse bool
}

// handleInput forwards window input to the dispatcher and handles the
// viewer's own camera and keyboard controls
func (v *Viewer) handleInput() {
	d := v.state.Dispatcher

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		v.camera.Rotate(float64(delta.Y)*0.01, -float64(delta.X)*0.01)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.camera.Zoom(-float64(wheel) * 0.1)
	}

	if v.handleTouch() {
		return
	}

	mouse := rl.GetMousePosition()
	if !v.input.hasMouse || mouse.X != v.input.lastX || mouse.Y != v.input.lastY {
		d.Handle(interaction.PointerMove{X: float64(mouse.X), Y: float64(mouse.Y)})
		v.input.lastX, v.input.lastY = mouse.X, mouse.Y
		v.input.hasMouse = true
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		d.Handle(interaction.PointerDown{X: float64(mouse.X), Y: float64(mouse.Y), Button: interaction.PrimaryButton})
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		d.Handle(interaction.PointerUp{X: float64(mouse.X), Y: float64(mouse.Y), Button: interaction.PrimaryButton})
	}

	v.handleKeys()
}

// handleTouch turns touch point count changes into touch events. It reports
// whether touch input is active this frame.
func (v *Viewer) handleTouch() bool {
	d := v.state.Dispatcher
	count := int(rl.GetTouchPointCount())
	prev := v.input.fingers
	v.input.fingers = count

	if count == 0 && prev == 0 {
		return false
	}

	pos := rl.GetTouchPosition(0)
	switch {
	case count > prev:
		d.Handle(interaction.TouchStart{X: float64(pos.X), Y: float64(pos.Y), Fingers: count, At: time.Now()})
	case count < prev:
		d.Handle(interaction.TouchEnd{})
	case count > 0:
		d.Handle(interaction.TouchMove{X: float64(pos.X), Y: float64(pos.Y)})
	}
	return true
}

func (v *Viewer) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyU):
		if _, ok := v.state.Engine.Undo(); ok {
			v.notify("Removed last measurement")
		}

	case rl.IsKeyPressed(rl.KeyE):
		data, err := v.state.Export()
		if err == nil {
			err = os.WriteFile(exchangeFile, data, 0644)
		}
		if err != nil {
			v.logger.Warn("export failed", zap.Error(err))
			v.notify("Export failed: %v", err)
			return
		}
		v.notify("Exported %d measurement(s) to %s", v.state.Engine.Len(), exchangeFile)

	case rl.IsKeyPressed(rl.KeyI):
		data, err := os.ReadFile(exchangeFile)
		if err != nil {
			v.notify("Import failed: %v", err)
			return
		}
		n, err := v.state.Import(data)
		if err != nil {
			v.notify("Import failed: %v", err)
			return
		}
		v.notify("Imported %d measurement(s)", n)

	case rl.IsKeyPressed(rl.KeyTab):
		if len(v.layerNames) > 0 {
			v.layerIndex = (v.layerIndex + 1) % len(v.layerNames)
		}

	case rl.IsKeyPressed(rl.KeyK):
		if len(v.layerNames) == 0 {
			return
		}
		name := v.layerNames[v.layerIndex]
		v.state.SetLayerKind(name, nextKind(v.state.Styles()[name].Kind))
		v.notify("%s is now %s", name, v.state.Styles()[name].Kind)
	}
}

func nextKind(kind layer.SurfaceKind) layer.SurfaceKind {
	for i, k := range layerKinds {
		if k == kind {
			return layerKinds[(i+1)%len(layerKinds)]
		}
	}
	return layer.Wall
}
