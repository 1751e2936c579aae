package renderer

import (
	"runtime"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext creates a hidden window with a current 3.3 core context.
// Tests that need a live driver skip when no display is available.
func newTestContext(t *testing.T) {
	t.Helper()
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		t.Skipf("no display available: %v", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(64, 64, "quadwave test", nil, nil)
	if err != nil {
		glfw.Terminate()
		t.Skipf("no GL context available: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		t.Skipf("GL entry points unavailable: %v", err)
	}

	t.Cleanup(func() {
		window.Destroy()
		glfw.Terminate()
	})
}

// buildPrograms compiles the embedded sources and links both programs against
// the one shared vertex stage, releasing the stages on test cleanup.
func buildPrograms(t *testing.T) (normal, wave *Program) {
	t.Helper()

	vertex, err := CompileStage(VertexShaderSource, VertexStage)
	require.NoError(t, err)
	t.Cleanup(vertex.Release)

	normalFrag, err := CompileStage(NormalFragmentSource, FragmentStage)
	require.NoError(t, err)
	t.Cleanup(normalFrag.Release)

	waveFrag, err := CompileStage(WaveFragmentSource, FragmentStage)
	require.NoError(t, err)
	t.Cleanup(waveFrag.Release)

	normal, err = LinkProgram(vertex, normalFrag)
	require.NoError(t, err)
	t.Cleanup(normal.Release)

	wave, err = LinkProgram(vertex, waveFrag)
	require.NoError(t, err)
	t.Cleanup(wave.Release)

	return normal, wave
}

func TestUniformLookupAcrossPrograms(t *testing.T) {
	newTestContext(t)
	normal, wave := buildPrograms(t)

	loc, ok := wave.Locate("time")
	assert.True(t, ok, "wave program declares time")
	assert.GreaterOrEqual(t, loc, int32(0))

	_, ok = normal.Locate("time")
	assert.False(t, ok, "normal program declares no time uniform")

	_, ok = wave.Locate("nonexistent")
	assert.False(t, ok)
	_, ok = normal.Locate("nonexistent")
	assert.False(t, ok)
}

func TestSetFloatSkipsMissingUniform(t *testing.T) {
	newTestContext(t)
	normal, wave := buildPrograms(t)

	wave.Use()
	assert.True(t, wave.SetFloat("time", 1.25))

	normal.Use()
	assert.False(t, normal.SetFloat("time", 1.25))

	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestCompileErrorCarriesDiagnostic(t *testing.T) {
	newTestContext(t)

	stage, err := CompileStage("#version 330 core\nvoid main() { this is not glsl }\n", FragmentStage)
	assert.Nil(t, stage)

	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, FragmentStage, cerr.Kind)
	assert.NotEmpty(t, cerr.Log)
}

func TestRenderedFrameReportsNoError(t *testing.T) {
	newTestContext(t)
	normal, wave := buildPrograms(t)

	mesh := UploadMesh(QuadVertices, QuadIndices)
	t.Cleanup(mesh.Release)

	scene := NewScene(mesh,
		Pass{Program: normal, Region: mesh.Region(0)},
		Pass{Program: wave, Region: mesh.Region(1), Update: func(ft float64) {
			wave.SetFloat("time", float32(ft))
		}},
	)

	scene.Draw(0.0)

	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}
