// Package game wires the engine packages into the demo loop.
package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/gloamdev/gloam/internal/assets"
	"github.com/gloamdev/gloam/internal/config"
	"github.com/gloamdev/gloam/internal/engine/camera"
	"github.com/gloamdev/gloam/internal/engine/input"
	"github.com/gloamdev/gloam/internal/engine/model"
	"github.com/gloamdev/gloam/internal/engine/renderer"
	"github.com/gloamdev/gloam/internal/engine/shader"
	"github.com/gloamdev/gloam/internal/engine/window"
	"github.com/gloamdev/gloam/internal/logger"
)

const speedStep = 0.01

// Game owns the window, renderer, scene content and the main loop.
type Game struct {
	config *config.Config

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	assets   *assets.Manager

	program shader.Program
	camera  *camera.FirstPerson
	world   *World

	running bool
}

// New creates the game: window and GL context, shaders, camera, and
// the world populated from the configured model list.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		input:  input.New(),
		assets: assets.NewManager(cfg.Assets.Root),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      "Gloam",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	// A broken shader pair is survivable: the loop runs and clears,
	// draws are skipped until the program is valid.
	g.program, err = shader.LoadProgram(
		g.assets.ShaderPath(cfg.Assets.VertexShader),
		g.assets.ShaderPath(cfg.Assets.FragmentShader),
	)
	if err != nil {
		logger.Error("shader program failed, drawing disabled", zap.Error(err))
	}

	g.camera = camera.NewFirstPerson(
		mgl32.Vec3{0, eyeHeight, 3},
		cfg.Camera.Speed,
		cfg.Camera.Sensitivity,
	)

	g.world = NewWorld()
	g.populateWorld(cfg.Assets.Models)

	sdl.SetRelativeMouseMode(false)

	return g, nil
}

// populateWorld loads each configured model and places the instances
// in a row facing the camera start position. A model that fails to
// load is placed empty and logged; the demo keeps running.
func (g *Game) populateWorld(names []string) {
	spacing := float32(2.5)
	startX := -spacing * float32(len(names)-1) / 2

	for i, name := range names {
		loader := model.New(g.assets)
		if err := loader.Load(name); err != nil {
			logger.Error("model load failed",
				zap.String("model", name),
				zap.Error(err),
			)
		}
		g.world.Objects = append(g.world.Objects, &Object{
			Model:    loader,
			Position: mgl32.Vec3{startX + float32(i)*spacing, 0, -3},
			Scale:    1,
		})
	}
}

// Run drives the main loop until quit is requested.
func (g *Game) Run() {
	g.running = true
	logger.Info("entering main loop", zap.Int("fps_limit", g.config.Graphics.FPSLimit))

	var frameDelay uint32
	if g.config.Graphics.FPSLimit > 0 {
		frameDelay = uint32(1000 / g.config.Graphics.FPSLimit)
	}

	for g.running {
		frameStart := sdl.GetTicks()

		if g.input.Update() {
			g.running = false
		}
		g.handleEvents()
		g.update()
		g.render()
		g.window.SwapBuffers()

		if frameDelay > 0 {
			elapsed := sdl.GetTicks() - frameStart
			if elapsed < frameDelay {
				sdl.Delay(frameDelay - elapsed)
			}
		}
	}
}

// handleEvents processes the discrete events from the last poll.
func (g *Game) handleEvents() {
	for _, e := range g.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			g.renderer.Resize(e.Width, e.Height)

		case input.EventKeyDown:
			switch g.input.ActionFor(e.Key) {
			case input.ActionQuit:
				g.running = false
			case input.ActionJump:
				g.world.Jump()
			case input.ActionInteract:
				g.world.Interact(g.camera)
			case input.ActionToggleView:
				g.world.ToggleView()
			}

		case input.EventMouseMove:
			g.camera.ProcessMouse(float32(e.MouseX), float32(e.MouseY))

		case input.EventMouseDown:
			if e.Button == sdl.BUTTON_LEFT {
				if g.world.Player.MeleeView {
					g.world.StartSwing()
				} else {
					g.world.ToggleFlashlight()
				}
			}
		}
	}
}

// update applies held movement actions and advances world state.
func (g *Game) update() {
	var forward, right float32
	if g.input.Held(input.ActionMoveForward) {
		forward++
	}
	if g.input.Held(input.ActionMoveBack) {
		forward--
	}
	if g.input.Held(input.ActionStrafeRight) {
		right++
	}
	if g.input.Held(input.ActionStrafeLeft) {
		right--
	}
	g.camera.Move(forward, right)

	if g.input.Held(input.ActionSpeedUp) {
		g.camera.AdjustSpeed(speedStep)
	}
	if g.input.Held(input.ActionSpeedDown) {
		g.camera.AdjustSpeed(-speedStep)
	}

	g.world.StepPhysics(g.camera)
	g.world.TickSwing()
}

// render draws the frame. With no valid shader program only the clear
// happens.
func (g *Game) render() {
	g.renderer.Begin()

	if !g.program.Valid() {
		return
	}
	g.program.Use()

	projection := mgl32.Perspective(
		mgl32.DegToRad(g.config.Camera.FOV),
		g.renderer.Aspect(),
		g.config.Camera.Near,
		g.config.Camera.Far,
	)
	view := g.camera.ViewMatrix()

	gl.UniformMatrix4fv(g.program.Uniform("projection"), 1, false, &projection[0])
	gl.UniformMatrix4fv(g.program.Uniform("view"), 1, false, &view[0])
	gl.Uniform1i(g.program.Uniform("diffuseTex"), 0)

	flashOn := int32(0)
	if g.world.Player.Flashlight {
		flashOn = 1
	}
	gl.Uniform1i(g.program.Uniform("flashlightOn"), flashOn)
	gl.Uniform3f(g.program.Uniform("flashlightPos"),
		g.camera.Position.X(), g.camera.Position.Y(), g.camera.Position.Z())
	gl.Uniform3f(g.program.Uniform("flashlightDir"),
		g.camera.Front.X(), g.camera.Front.Y(), g.camera.Front.Z())

	modelLoc := g.program.Uniform("model")
	for _, o := range g.world.Objects {
		var m mgl32.Mat4
		if o.Carried {
			m = g.world.CarriedTransform(g.camera)
			m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(-g.world.SwingAngle())))
		} else {
			m = o.ModelMatrix()
		}
		gl.UniformMatrix4fv(modelLoc, 1, false, &m[0])
		o.Model.Draw()
	}
}

// Close releases GPU resources and tears down the window.
func (g *Game) Close() {
	for _, o := range g.world.Objects {
		o.Model.Release()
	}
	g.program.Delete()
	g.window.Close()
}
