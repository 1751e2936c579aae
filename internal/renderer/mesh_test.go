package renderer

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadRegionsAreStructural(t *testing.T) {
	regions := quadRegions(len(QuadIndices))
	require.Len(t, regions, 2)
	assert.Equal(t, DrawRegion{Offset: 0, Count: 6}, regions[0])
	assert.Equal(t, DrawRegion{Offset: 6, Count: 6}, regions[1])

	// The split depends on the index count alone, not on buffer content.
	regions = quadRegions(18)
	require.Len(t, regions, 3)
	assert.Equal(t, DrawRegion{Offset: 12, Count: 6}, regions[2])

	assert.Empty(t, quadRegions(0))
}

func TestQuadsShareNoVertices(t *testing.T) {
	require.Len(t, QuadVertices, 2*verticesPerQuad)
	require.Len(t, QuadIndices, 2*indicesPerQuad)

	for quad := 0; quad < 2; quad++ {
		lo := uint32(quad * verticesPerQuad)
		hi := lo + verticesPerQuad
		for _, idx := range QuadIndices[quad*indicesPerQuad : (quad+1)*indicesPerQuad] {
			assert.GreaterOrEqual(t, idx, lo, "quad %d index out of its vertex block", quad)
			assert.Less(t, idx, hi, "quad %d index out of its vertex block", quad)
		}
	}
}

func TestVertexLayoutMatchesStruct(t *testing.T) {
	var v Vertex
	assert.Equal(t, int32(20), vertexStride)

	require.Len(t, vertexLayout, 2)
	assert.Equal(t, uint32(0), vertexLayout[0].location)
	assert.Equal(t, int32(3), vertexLayout[0].components)
	assert.Equal(t, unsafe.Offsetof(v.Position), vertexLayout[0].offset)

	assert.Equal(t, uint32(1), vertexLayout[1].location)
	assert.Equal(t, int32(2), vertexLayout[1].components)
	assert.Equal(t, unsafe.Offsetof(v.TexCoord), vertexLayout[1].offset)
}
