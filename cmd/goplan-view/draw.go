package main

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"github.com/philipparndt/goplan/internal/interaction"
	"github.com/philipparndt/goplan/internal/measure"
	"github.com/philipparndt/goplan/internal/scene"
	"github.com/philipparndt/goplan/pkg/geometry"
)

var (
	measureColor   = rl.NewColor(255, 200, 0, 255)
	previewColor   = rl.NewColor(255, 200, 0, 160)
	exactColor     = rl.Yellow
	snappedColor   = rl.Red
	indicatorSize  = float32(0.06)
	probeRadius    = float32(14)
	statusDuration = 3 * time.Second
)

func vec(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func materialColor(m *scene.Material) rl.Color {
	c := m.Color
	return rl.NewColor(c.R, c.G, c.B, uint8(m.Opacity*255))
}

// camera3D converts the orbit camera for raylib, which expects degrees
func (v *Viewer) camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(v.camera.Position),
		Target:     vec(v.camera.Target),
		Up:         vec(v.camera.Up),
		Fovy:       float32(v.camera.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

// drawScene draws opaque primitives first, then glass
func (v *Viewer) drawScene() {
	s := v.state.Scene()
	if s == nil {
		return
	}

	rl.DrawGrid(40, 1)

	for _, transparent := range []bool{false, true} {
		for i := range s.Group.Primitives {
			p := &s.Group.Primitives[i]
			if p.Material.Transparent() != transparent {
				continue
			}
			switch p.Kind {
			case scene.BoxPrimitive:
				drawBox(p)
			case scene.LinePrimitive:
				rl.DrawLine3D(vec(p.Start), vec(p.End), materialColor(p.Material))
			}
		}
	}
}

func drawBox(p *scene.Primitive) {
	q := p.Box.Rotation
	yaw := 2 * math.Atan2(q.V[1], q.W)
	size := vec(p.Size())
	c := materialColor(p.Material)

	rl.PushMatrix()
	rl.Translatef(float32(p.Box.Center.X), float32(p.Box.Center.Y), float32(p.Box.Center.Z))
	rl.Rotatef(float32(yaw*180/math.Pi), 0, 1, 0)
	rl.DrawCubeV(rl.Vector3{}, size, c)
	if !p.Material.Transparent() {
		rl.DrawCubeWiresV(rl.Vector3{}, size, rl.NewColor(60, 60, 60, 255))
	}
	rl.PopMatrix()
}

func (v *Viewer) drawIndicator() {
	ind := v.state.Dispatcher.Indicator()
	if !ind.Visible() {
		return
	}
	c := exactColor
	if ind.State == interaction.IndicatorSnapped {
		c = snappedColor
	}
	rl.DrawSphere(vec(ind.Position), indicatorSize, c)
}

func (v *Viewer) drawUI() {
	y := int32(10)
	line := func(text string, c rl.Color) {
		rl.DrawText(text, 10, y, 16, c)
		y += 20
	}

	engine := v.state.Engine
	ind := v.state.Dispatcher.Indicator()

	line(fmt.Sprintf("Measurements: %d", engine.Len()), rl.White)
	line(fmt.Sprintf("Target: %s", ind.State), rl.LightGray)
	if preview, ok := engine.Preview(); ok {
		line(fmt.Sprintf("Measuring: %s", preview.Label.Text), measureColor)
	}
	if len(v.layerNames) > 0 {
		name := v.layerNames[v.layerIndex]
		line(fmt.Sprintf("Layer: %s (%s)", name, v.state.Styles()[name].Kind), rl.LightGray)
	}

	if probing, x, py := v.state.Dispatcher.Probing(); probing {
		rl.DrawCircleLines(int32(x), int32(py), probeRadius, measureColor)
	}

	if v.status != "" && time.Since(v.statusAt) < statusDuration {
		rl.DrawText(v.status, 10, int32(rl.GetScreenHeight())-50, 16, rl.Green)
	}

	help := "Click: measure  Right drag: orbit  Wheel: zoom  U: undo  E/I: export/import  Tab/K: layer kind"
	rl.DrawText(help, 10, int32(rl.GetScreenHeight())-25, 14, rl.Gray)
}

// measurementRenderer keeps the drawables behind measurement handles
type measurementRenderer struct {
	lines   map[uuid.UUID]measure.Measurement
	order   []uuid.UUID
	preview *measure.Preview
}

func newMeasurementRenderer() *measurementRenderer {
	return &measurementRenderer{lines: make(map[uuid.UUID]measure.Measurement)}
}

func (r *measurementRenderer) Add(m measure.Measurement) {
	r.lines[m.Handle] = m
	r.order = append(r.order, m.Handle)
}

func (r *measurementRenderer) Remove(handle uuid.UUID) {
	delete(r.lines, handle)
	for i, h := range r.order {
		if h == handle {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *measurementRenderer) ShowPreview(p measure.Preview) {
	r.preview = &p
}

func (r *measurementRenderer) HidePreview() {
	r.preview = nil
}

func (r *measurementRenderer) draw() {
	for _, m := range r.committed() {
		rl.DrawLine3D(vec(m.Start), vec(m.End), measureColor)
		rl.DrawSphere(vec(m.Start), indicatorSize/2, measureColor)
		rl.DrawSphere(vec(m.End), indicatorSize/2, measureColor)
	}
	if r.preview != nil {
		rl.DrawLine3D(vec(r.preview.Start), vec(r.preview.End), previewColor)
	}
}

// drawLabels projects the labels with the orbit camera, skipping those
// behind it
func (r *measurementRenderer) drawLabels(camera *interaction.Camera) {
	label := func(l measure.Label, c rl.Color) {
		x, y, depth := camera.Project(l.Position)
		if depth <= 0 {
			return
		}
		width := rl.MeasureText(l.Text, 16)
		rl.DrawText(l.Text, int32(x)-width/2, int32(y)-8, 16, c)
	}
	for _, m := range r.committed() {
		label(m.Label(), measureColor)
	}
	if r.preview != nil {
		label(r.preview.Label, previewColor)
	}
}

// committed returns the drawn measurements in commit order
func (r *measurementRenderer) committed() []measure.Measurement {
	out := make([]measure.Measurement, 0, len(r.order))
	for _, h := range r.order {
		out = append(out, r.lines[h])
	}
	return out
}
