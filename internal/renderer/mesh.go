package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved layout shared by every program's vertex stage.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

const (
	vertexStride = int32(unsafe.Sizeof(Vertex{}))

	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// vertexAttrib is one entry of the fixed attribute layout.
type vertexAttrib struct {
	location   uint32
	components int32
	offset     uintptr
}

// vertexLayout is declared once; both programs link the same vertex stage, so
// one layout serves every draw.
var vertexLayout = []vertexAttrib{
	{location: 0, components: 3, offset: 0},     // position
	{location: 1, components: 2, offset: 3 * 4}, // texcoord
}

// QuadVertices is the canonical two-quad geometry: quad 0 on the left half of
// the window, quad 1 on the right. The quads share no vertices, so each one
// can be restyled independently.
var QuadVertices = []Vertex{
	// quad 0
	{Position: mgl32.Vec3{-0.9, 0.5, 0.0}, TexCoord: mgl32.Vec2{0.0, 1.0}},
	{Position: mgl32.Vec3{-0.9, 0.0, 0.0}, TexCoord: mgl32.Vec2{0.0, 0.0}},
	{Position: mgl32.Vec3{-0.5, 0.0, 0.0}, TexCoord: mgl32.Vec2{1.0, 0.0}},
	{Position: mgl32.Vec3{-0.5, 0.5, 0.0}, TexCoord: mgl32.Vec2{1.0, 1.0}},

	// quad 1
	{Position: mgl32.Vec3{0.5, 0.5, 0.0}, TexCoord: mgl32.Vec2{0.0, 1.0}},
	{Position: mgl32.Vec3{0.5, 0.0, 0.0}, TexCoord: mgl32.Vec2{0.0, 0.0}},
	{Position: mgl32.Vec3{0.9, 0.0, 0.0}, TexCoord: mgl32.Vec2{1.0, 0.0}},
	{Position: mgl32.Vec3{0.9, 0.5, 0.0}, TexCoord: mgl32.Vec2{1.0, 1.0}},
}

// QuadIndices splits each quad into two triangles.
var QuadIndices = []uint32{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
}

// DrawRegion identifies one quad's slice of the shared index buffer.
type DrawRegion struct {
	Offset int   // first index
	Count  int32 // number of indices
}

// Mesh owns the vertex array, vertex buffer and index buffer for all quads,
// for the lifetime of the application.
type Mesh struct {
	vao, vbo, ebo uint32
	regions       []DrawRegion
}

// UploadMesh creates the GPU buffers for the given interleaved vertices and
// indices and records one draw region per quad.
func UploadMesh(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{regions: quadRegions(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	for _, attr := range vertexLayout {
		gl.EnableVertexAttribArray(attr.location)
		gl.VertexAttribPointerWithOffset(attr.location, attr.components, gl.FLOAT, false, vertexStride, attr.offset)
	}

	gl.BindVertexArray(0)

	return m
}

// quadRegions slices an index buffer into fixed 6-index quad regions. The
// split is structural: it depends on the index count alone, never on buffer
// content.
func quadRegions(indexCount int) []DrawRegion {
	regions := make([]DrawRegion, 0, indexCount/indicesPerQuad)
	for off := 0; off+indicesPerQuad <= indexCount; off += indicesPerQuad {
		regions = append(regions, DrawRegion{Offset: off, Count: indicesPerQuad})
	}
	return regions
}

// Region returns the i-th quad's slice of the index buffer.
func (m *Mesh) Region(i int) DrawRegion {
	return m.regions[i]
}

// Bind activates the vertex/index buffers and attribute layout as one unit
// for subsequent draws.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Draw issues one indexed draw over the given region. The mesh must be bound.
func (m *Mesh) Draw(r DrawRegion) {
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.Count, gl.UNSIGNED_INT, uintptr(r.Offset)*4)
}

// Release deletes the vertex array and both buffers.
func (m *Mesh) Release() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}
