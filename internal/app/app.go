package app

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"quadwave/internal/config"
	"quadwave/internal/renderer"
)

// App owns the window, the GL context and every GPU resource. Everything is
// created once in New and released once in Cleanup; the frame loop itself
// allocates nothing.
type App struct {
	window *glfw.Window

	normal *renderer.Program
	wave   *renderer.Program
	mesh   *renderer.Mesh
	scene  *renderer.Scene
}

// New creates the window, loads the GL entry points and builds the two
// programs, the shared mesh and the frame driver.
func New() (*App, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("GLFW init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	cfg := config.Get()
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window creation failed: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("OpenGL init failed: %w", err)
	}
	fmt.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	if cfg.Rendering.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	app := &App{window: window}
	if err := app.initScene(); err != nil {
		app.Cleanup()
		return nil, err
	}

	app.setupCallbacks()

	return app, nil
}

// initScene compiles the shared vertex stage and both fragment stages, links
// the two programs, uploads the two-quad mesh and assembles the passes. A
// failed compile or link aborts startup: drawing with an invalid program is
// undefined.
func (app *App) initScene() error {
	vertex, err := renderer.CompileStage(renderer.VertexShaderSource, renderer.VertexStage)
	if err != nil {
		return fmt.Errorf("vertex stage: %w", err)
	}
	defer vertex.Release()

	normalFrag, err := renderer.CompileStage(renderer.NormalFragmentSource, renderer.FragmentStage)
	if err != nil {
		return fmt.Errorf("normal fragment stage: %w", err)
	}
	defer normalFrag.Release()

	waveFrag, err := renderer.CompileStage(renderer.WaveFragmentSource, renderer.FragmentStage)
	if err != nil {
		return fmt.Errorf("wave fragment stage: %w", err)
	}
	defer waveFrag.Release()

	// One vertex stage, two programs. The stages are released once both
	// links are done.
	app.normal, err = renderer.LinkProgram(vertex, normalFrag)
	if err != nil {
		return fmt.Errorf("normal program: %w", err)
	}
	app.wave, err = renderer.LinkProgram(vertex, waveFrag)
	if err != nil {
		return fmt.Errorf("wave program: %w", err)
	}

	app.mesh = renderer.UploadMesh(renderer.QuadVertices, renderer.QuadIndices)

	wave := app.wave
	app.scene = renderer.NewScene(app.mesh,
		renderer.Pass{Program: app.normal, Region: app.mesh.Region(0)},
		renderer.Pass{Program: wave, Region: app.mesh.Region(1), Update: func(t float64) {
			wave.SetFloat("time", float32(t))
		}},
	)

	return nil
}

func (app *App) setupCallbacks() {
	app.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	app.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
}

// Run drives the frame loop until the window is asked to close.
func (app *App) Run() error {
	cfg := config.Get()
	lastTime := time.Now()
	frames := 0

	for !app.window.ShouldClose() {
		glfw.PollEvents()

		app.scene.Draw(glfw.GetTime())
		app.window.SwapBuffers()

		frames++
		if cfg.Rendering.ShowFPS && time.Since(lastTime) >= time.Second {
			app.window.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Window.Title, frames))
			frames = 0
			lastTime = time.Now()
		}
	}

	return nil
}

// Cleanup releases every GPU resource and the window, in reverse creation
// order.
func (app *App) Cleanup() {
	if app.mesh != nil {
		app.mesh.Release()
	}
	if app.wave != nil {
		app.wave.Release()
	}
	if app.normal != nil {
		app.normal.Release()
	}
	if app.window != nil {
		app.window.Destroy()
	}
	glfw.Terminate()
}
