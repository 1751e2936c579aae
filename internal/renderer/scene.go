package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// backgroundColor is the fixed clear color behind both quads.
var backgroundColor = mgl32.Vec4{0.2, 0.2, 0.2, 1.0}

// surface is the slice of Mesh the frame loop depends on.
type surface interface {
	Bind()
	Draw(r DrawRegion)
}

// pipeline is the slice of Program the frame loop depends on.
type pipeline interface {
	Use()
}

// Pass pairs a program with the quad region it draws and an optional per-draw
// uniform update. Adding a quad is a data change, not a structural one.
type Pass struct {
	Program *Program
	Region  DrawRegion
	Update  func(t float64)
}

type pass struct {
	program pipeline
	region  DrawRegion
	update  func(t float64)
}

// Scene drives one frame: clear, bind the shared mesh once, then draw every
// pass in order with its own program.
type Scene struct {
	mesh   surface
	passes []pass
	clear  func()
}

// NewScene assembles the frame driver over a mesh and its ordered passes.
func NewScene(mesh *Mesh, passes ...Pass) *Scene {
	s := &Scene{mesh: mesh, clear: clearBackground}
	for _, p := range passes {
		s.passes = append(s.passes, pass{program: p.Program, region: p.Region, update: p.Update})
	}
	return s
}

// Draw renders one frame at host clock value t. The pass order is fixed, the
// mesh is bound exactly once, and nothing is allocated or freed here.
func (s *Scene) Draw(t float64) {
	s.clear()
	s.mesh.Bind()
	for _, p := range s.passes {
		p.program.Use()
		if p.update != nil {
			p.update(t)
		}
		s.mesh.Draw(p.region)
	}
}

// clearBackground re-asserts the clear color every frame rather than assuming
// a prior frame left it set.
func clearBackground() {
	gl.ClearColor(backgroundColor[0], backgroundColor[1], backgroundColor[2], backgroundColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
