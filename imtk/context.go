package imtk

import "github.com/pluginui/imbridge/imdraw"

// FrameProducer fills one frame with content. This is the plugin's draw
// logic: it reads the IO state and returns the frame's draw output.
// Returning nil or a DrawData with Valid false means "nothing to draw".
type FrameProducer interface {
	BuildFrame(io *IO) *imdraw.DrawData
}

// FrameProducerFunc adapts a plain function to FrameProducer.
type FrameProducerFunc func(io *IO) *imdraw.DrawData

func (f FrameProducerFunc) BuildFrame(io *IO) *imdraw.DrawData { return f(io) }

// Context owns the toolkit-side state for one UI: the IO record and the
// draw output of the most recent frame build. Exactly one context is
// "current" at a time; toolkit-style APIs operate on the current context.
type Context struct {
	io       IO
	producer FrameProducer
	drawData *imdraw.DrawData
}

// current is the toolkit's implicit active context. It is process-global
// by contract; callers scope access with MakeCurrent.
var current *Context

// CreateContext allocates a context bound to the given frame producer.
func CreateContext(p FrameProducer) *Context {
	return &Context{producer: p}
}

// Destroy releases the context. It must not be current afterwards and no
// toolkit call may outlive it.
func (c *Context) Destroy() {
	if current == c {
		current = nil
	}
	c.drawData = nil
	c.producer = nil
}

// Current returns the active context, or nil.
func Current() *Context { return current }

// MakeCurrent activates the context and returns a restore func that
// reinstates whatever was current before. Use as:
//
//	defer ctx.MakeCurrent()()
func (c *Context) MakeCurrent() func() {
	prev := current
	current = c
	return func() { current = prev }
}

// IO returns the context's input state.
func (c *Context) IO() *IO { return &c.io }

// NewFrame marks the start of a frame build.
func (c *Context) NewFrame() {}

// Render runs the frame producer against the current IO state, consumes
// the per-frame input accumulators, and records the resulting draw data.
func (c *Context) Render() *imdraw.DrawData {
	dd := c.producer.BuildFrame(&c.io)
	c.io.consumeFrameInput()
	c.drawData = dd
	return dd
}

// DrawData returns the output of the most recent frame build, or nil.
func (c *Context) DrawData() *imdraw.DrawData { return c.drawData }
