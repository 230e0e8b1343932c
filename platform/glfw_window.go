// Package platform hosts a bridge UI in a standalone GLFW window,
// standing in for a plugin host: it delivers input/idle/paint callbacks
// and services repaint requests.
package platform

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pluginui/imbridge/bridge"
)

// Config for the host window.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window implements bridge.Host. Repaint requests are posted as a flag
// and serviced on the next loop iteration, mirroring a host whose paint
// callback runs at its own discretion.
type Window struct {
	w            *glfw.Window
	ui           *bridge.UI
	needsRepaint bool
}

// NewWindow creates the GLFW window and makes its GL context current.
// Must be called on the main thread.
func NewWindow(cfg Config) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return &Window{w: win}, nil
}

// Repaint implements bridge.Host.
func (g *Window) Repaint() { g.needsRepaint = true }

// Attach wires the window callbacks to the UI's event handlers.
func (g *Window) Attach(ui *bridge.UI) {
	g.ui = ui

	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w < 1 || h < 1 {
			return
		}
		ui.Reshape(uint(w), uint(h))
		g.needsRepaint = true
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ui.OnMotion(bridge.MotionEvent{X: x, Y: y})
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		ui.OnMouse(bridge.MouseEvent{
			Button: hostMouseButton(b),
			Press:  action == glfw.Press,
		})
	})
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		ui.OnScroll(bridge.ScrollEvent{DeltaX: xoff, DeltaY: yoff})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		press := action == glfw.Press
		if sp, ok := specialKey(key); ok {
			ui.OnSpecial(bridge.SpecialEvent{Key: sp, Press: press})
			return
		}
		if r, ok := printableKey(key); ok {
			ui.OnKeyboard(bridge.KeyboardEvent{Key: r, Press: press})
		}
	})
}

// Run drives the host loop: poll events, tick the UI's idle callback, and
// paint when a repaint was requested. Blocks until the window closes.
func (g *Window) Run() error {
	if g.ui == nil {
		return fmt.Errorf("platform: no UI attached")
	}
	w, h := g.w.GetFramebufferSize()
	g.ui.Reshape(uint(w), uint(h))

	for !g.w.ShouldClose() {
		glfw.PollEvents()
		g.ui.Idle()
		if g.needsRepaint {
			g.needsRepaint = false
			g.ui.Display()
			g.w.SwapBuffers()
		} else {
			time.Sleep(time.Millisecond)
		}
	}
	log.Println("host window closed")
	return nil
}

// Close destroys the window after the UI has been torn down.
func (g *Window) Close() {
	g.w.Destroy()
	glfw.Terminate()
}

// hostMouseButton converts GLFW's 0-based buttons to host codes starting
// at 1 (left=1, middle=2, right=3).
func hostMouseButton(b glfw.MouseButton) int {
	switch b {
	case glfw.MouseButtonLeft:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	case glfw.MouseButtonRight:
		return 3
	default:
		return int(b) + 1
	}
}

func specialKey(key glfw.Key) (bridge.Key, bool) {
	switch key {
	case glfw.KeyLeft:
		return bridge.KeyLeft, true
	case glfw.KeyRight:
		return bridge.KeyRight, true
	case glfw.KeyUp:
		return bridge.KeyUp, true
	case glfw.KeyDown:
		return bridge.KeyDown, true
	case glfw.KeyPageUp:
		return bridge.KeyPageUp, true
	case glfw.KeyPageDown:
		return bridge.KeyPageDown, true
	case glfw.KeyHome:
		return bridge.KeyHome, true
	case glfw.KeyEnd:
		return bridge.KeyEnd, true
	case glfw.KeyInsert:
		return bridge.KeyInsert, true
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return bridge.KeyShift, true
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return bridge.KeyControl, true
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return bridge.KeyAlt, true
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return bridge.KeySuper, true
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return bridge.KeyF1 + bridge.Key(key-glfw.KeyF1), true
	}
	return 0, false
}

// printableKey maps GLFW key codes to the raw character the host would
// deliver. GLFW letter codes are uppercase ASCII; hosts deliver lowercase
// for an unshifted press, which the bridge folds back for key tracking.
func printableKey(key glfw.Key) (rune, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return 'a' + rune(key-glfw.KeyA), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return '0' + rune(key-glfw.Key0), true
	}
	switch key {
	case glfw.KeySpace:
		return ' ', true
	case glfw.KeyTab:
		return '\t', true
	case glfw.KeyEnter:
		return '\r', true
	case glfw.KeyBackspace:
		return '\b', true
	case glfw.KeyEscape:
		return 27, true
	case glfw.KeyDelete:
		return 127, true
	}
	return 0, false
}
