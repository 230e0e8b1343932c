package bridge

import (
	"fmt"
	"math"
	"time"

	"github.com/pluginui/imbridge/colors"
	"github.com/pluginui/imbridge/imdraw"
	"github.com/pluginui/imbridge/imtk"
)

// DefaultRepaintInterval is the minimum time between frame builds once the
// first frame has been painted.
const DefaultRepaintInterval = 15 * time.Millisecond

// Presenter is the rendering backend surface: device setup/teardown plus
// clear and draw-data submission for an actual paint.
type Presenter interface {
	Setup() error
	Clear(width, height int, c colors.Color)
	Render(dd *imdraw.DrawData, width, height int)
	Shutdown()
}

// Config sets the initial UI surface.
type Config struct {
	Width, Height   int
	BackgroundColor colors.Color
	RepaintInterval time.Duration
	ScaleFactor     float32 // display scale applied to coordinates; 0 means 1.0
}

// UI owns the toolkit context for one plugin window and drives the
// build/diff/repaint cycle from host callbacks. All methods must be called
// from the host's UI thread.
type UI struct {
	host      Host
	ctx       *imtk.Context
	presenter Presenter
	cache     drawCache

	background colors.Color
	interval   time.Duration
	scale      float32

	lastPainted time.Time
	everPainted bool

	now func() time.Time
}

// New creates the toolkit context, installs the key map, and initializes
// the presenter's device objects. A presenter setup failure is returned,
// not ignored.
func New(host Host, producer imtk.FrameProducer, presenter Presenter, cfg Config) (*UI, error) {
	u := &UI{
		host:       host,
		presenter:  presenter,
		background: cfg.BackgroundColor,
		interval:   cfg.RepaintInterval,
		scale:      cfg.ScaleFactor,
		now:        time.Now,
	}
	if u.background == (colors.Color{}) {
		u.background = colors.DefaultBackground
	}
	if u.interval <= 0 {
		u.interval = DefaultRepaintInterval
	}
	if u.scale <= 0 {
		u.scale = 1
	}

	u.ctx = imtk.CreateContext(producer)
	restore := u.ctx.MakeCurrent()
	defer restore()

	io := u.ctx.IO()
	io.DisplaySize[0] = roundScaled(u.scale, float64(cfg.Width))
	io.DisplaySize[1] = roundScaled(u.scale, float64(cfg.Height))
	installKeyMap(io)

	if err := presenter.Setup(); err != nil {
		u.ctx.Destroy()
		return nil, fmt.Errorf("presenter setup: %w", err)
	}
	return u, nil
}

// Close tears everything down in reverse-init order: presenter device
// objects first, then the draw cache, then the toolkit context.
func (u *UI) Close() {
	restore := u.ctx.MakeCurrent()
	defer restore()
	u.presenter.Shutdown()
	u.cache.release()
	u.ctx.Destroy()
}

// SetBackgroundColor sets the clear color used on paint.
func (u *UI) SetBackgroundColor(c colors.Color) { u.background = c }

// SetRepaintInterval sets the minimum time between frame builds.
func (u *UI) SetRepaintInterval(d time.Duration) { u.interval = d }

// SetScaleFactor sets the display scale applied to pointer coordinates
// and the display size on reshape.
func (u *UI) SetScaleFactor(f float32) {
	if f > 0 {
		u.scale = f
	}
}

// Idle is the host's idle callback. The host may call it arbitrarily
// often; a frame is built only on the first call ever, or once the
// repaint interval has elapsed since the last actual paint. A repaint is
// requested only when the built frame differs from the cached one.
func (u *UI) Idle() {
	build := true
	if u.everPainted {
		build = u.now().Sub(u.lastPainted) > u.interval
	}
	if build && u.buildFrame() {
		u.host.Repaint()
	}
}

// buildFrame runs one toolkit frame and reports whether its output
// differs from the cached frame. On change the cache is replaced.
func (u *UI) buildFrame() bool {
	restore := u.ctx.MakeCurrent()
	defer restore()

	u.ctx.NewFrame()
	dd := u.ctx.Render()
	if dd == nil || !dd.Valid {
		return false
	}
	if u.cache.equals(dd) {
		return false
	}
	u.cache.capture(dd)
	return true
}

// Display is the host's paint callback: clear to the background color,
// submit the last frame's draw lists if valid, and record the paint time.
// The interval gate measures against this timestamp, not the request.
func (u *UI) Display() {
	restore := u.ctx.MakeCurrent()
	defer restore()

	io := u.ctx.IO()
	w, h := int(io.DisplaySize[0]), int(io.DisplaySize[1])
	u.presenter.Clear(w, h, u.background)

	if dd := u.ctx.DrawData(); dd != nil && dd.Valid {
		u.presenter.Render(dd, w, h)
	}

	u.lastPainted = u.now()
	u.everPainted = true
}

// Reshape updates the toolkit's display size from new window dimensions.
func (u *UI) Reshape(width, height uint) {
	restore := u.ctx.MakeCurrent()
	defer restore()

	io := u.ctx.IO()
	io.DisplaySize[0] = roundScaled(u.scale, float64(width))
	io.DisplaySize[1] = roundScaled(u.scale, float64(height))
}

func roundScaled(scale float32, v float64) float32 {
	return float32(math.Round(float64(scale) * v))
}

// installKeyMap wires the toolkit's navigation keys to KeysDown slots.
// Special keys occupy indices counted down from the top of the array so
// they cannot collide with the ASCII range.
func installKeyMap(io *imtk.IO) {
	io.KeyMap[imtk.KeyTab] = '\t'
	io.KeyMap[imtk.KeyLeftArrow] = specialKeyIndex(KeyLeft)
	io.KeyMap[imtk.KeyRightArrow] = specialKeyIndex(KeyRight)
	io.KeyMap[imtk.KeyUpArrow] = specialKeyIndex(KeyUp)
	io.KeyMap[imtk.KeyDownArrow] = specialKeyIndex(KeyDown)
	io.KeyMap[imtk.KeyPageUp] = specialKeyIndex(KeyPageUp)
	io.KeyMap[imtk.KeyPageDown] = specialKeyIndex(KeyPageDown)
	io.KeyMap[imtk.KeyHome] = specialKeyIndex(KeyHome)
	io.KeyMap[imtk.KeyEnd] = specialKeyIndex(KeyEnd)
	io.KeyMap[imtk.KeyInsert] = specialKeyIndex(KeyInsert)
	io.KeyMap[imtk.KeyDelete] = 127
	io.KeyMap[imtk.KeyBackspace] = '\b'
	io.KeyMap[imtk.KeySpace] = ' '
	io.KeyMap[imtk.KeyEnter] = '\r'
	io.KeyMap[imtk.KeyEscape] = 27
	io.KeyMap[imtk.KeyA] = 'A'
	io.KeyMap[imtk.KeyC] = 'C'
	io.KeyMap[imtk.KeyV] = 'V'
	io.KeyMap[imtk.KeyX] = 'X'
	io.KeyMap[imtk.KeyY] = 'Y'
	io.KeyMap[imtk.KeyZ] = 'Z'
}

func specialKeyIndex(k Key) int {
	return imtk.KeysDownSize - int(k)
}
