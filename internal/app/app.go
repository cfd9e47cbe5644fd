// Package app runs the interactive world map: window, input, and the GL
// frame loop around a face.Face.
package app

import (
	"fmt"
	"image"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/watchcore/internal/config"
	"github.com/Faultbox/watchcore/internal/engine/debug"
	"github.com/Faultbox/watchcore/internal/engine/input"
	"github.com/Faultbox/watchcore/internal/engine/renderer"
	"github.com/Faultbox/watchcore/internal/engine/ripple"
	"github.com/Faultbox/watchcore/internal/engine/scene"
	"github.com/Faultbox/watchcore/internal/engine/texture"
	"github.com/Faultbox/watchcore/internal/engine/window"
	"github.com/Faultbox/watchcore/internal/face"
	"github.com/Faultbox/watchcore/internal/logger"
	"github.com/Faultbox/watchcore/pkg/math"
)

// App is the main application instance.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	mapView  *scene.MapRenderer
	face     *face.Face
	snapshot *debug.Snapshots

	start           time.Time
	snapshotPending bool
}

// New creates the window, GL resources, and face described by cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.Int("width", cfg.Display.Width),
		zap.Int("height", cfg.Display.Height),
		zap.String("reference_zone", cfg.Terminator.ReferenceZone),
	)

	a := &App{config: cfg}

	f, err := face.New(cfg, loadBaseMap(cfg.Terminator.MapImage))
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	a.face = f

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: [4]float32{0, 0, 0, 1},
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.mapView, err = scene.NewMapRenderer()
	if err != nil {
		a.renderer.Close()
		a.window.Close()
		return nil, fmt.Errorf("failed to create map renderer: %w", err)
	}

	w, h := a.window.Size()
	a.input = input.New(w, h)
	a.snapshot = debug.NewSnapshots(config.ConfigDir(), "watchcore")

	logger.Info("app initialized successfully")
	return a, nil
}

// loadBaseMap returns the configured map image, or nil for the generated
// graticule when none is set or it cannot be read.
func loadBaseMap(path string) image.Image {
	if path == "" {
		return nil
	}
	img, err := texture.LoadImage(path)
	if err != nil {
		logger.Warn("map image unavailable, using graticule", zap.String("path", path), zap.Error(err))
		return nil
	}
	return img
}

// Run starts the main loop and returns when the window is closed.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()

	frameCount := 0
	fpsTimer := a.start
	lastTime := a.start

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		clock := a.clock(now)

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents(clock)

		// 2. Update map and waves
		if img, changed := a.face.Refresh(now); changed {
			a.mapView.SetScene(img)
		}
		a.mapView.SetRipples(a.face.Frame(clock))

		// 3. Render
		w, h := a.window.Size()
		a.renderer.Begin()
		a.mapView.Render(clock, w, h)
		a.renderer.End()
		if a.snapshotPending {
			a.saveSnapshot()
			a.snapshotPending = false
		}

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if now.Sub(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
				zap.Int("waves", a.face.Field().Len()),
			)
			frameCount = 0
			fpsTimer = now
		}
	}

	return nil
}

// clock returns the ripple clock: seconds since Run started.
func (a *App) clock(now time.Time) float64 {
	return now.Sub(a.start).Seconds()
}

func (a *App) handleEvents(clock float64) {
	for _, event := range a.input.Events() {
		id := ripple.PointerID(event.Pointer)
		pos := math.Vec2{X: event.X, Y: event.Y}

		switch event.Type {
		case input.EventWindowResize:
			dw, dh := a.window.DrawableSize()
			a.renderer.Resize(dw, dh)
		case input.EventKeyDown:
			a.handleKey(event.Key)
		case input.EventPointerDown:
			if a.face.PointerDown(id, pos, clock) {
				logger.Debug("wave", zap.Int64("pointer", event.Pointer), zap.Float32("x", pos.X), zap.Float32("y", pos.Y))
			}
		case input.EventPointerMove:
			a.face.PointerMove(id, pos, clock)
		case input.EventPointerUp:
			a.face.PointerUp(id)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_R:
		a.face.Field().Reset()
		a.mapView.SetScene(a.face.ForceRefresh(time.Now()))
		logger.Info("reset waves and map")
	case sdl.SCANCODE_S:
		if err := a.config.Save(); err != nil {
			logger.Error("saving config failed", zap.Error(err))
			return
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	case sdl.SCANCODE_F12:
		a.snapshotPending = true
	}
}

// saveSnapshot writes the back buffer as a PNG. Call before swapping.
func (a *App) saveSnapshot() {
	path, err := a.snapshot.SaveFrame(a.renderer.ReadPixels())
	if err != nil {
		logger.Error("snapshot failed", zap.Error(err))
		return
	}
	logger.Info("snapshot saved", zap.String("path", path))
}

// Close releases all resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.mapView != nil {
		a.mapView.Destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
