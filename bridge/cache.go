package bridge

import (
	"bytes"

	"github.com/pluginui/imbridge/imdraw"
)

// drawCache holds a deep copy of the last accepted frame's draw lists.
// It always reflects exactly the last frame for which a repaint was
// requested, or is empty before the first one. Backing buffers are reused
// across captures to keep the UI thread free of allocator churn.
type drawCache struct {
	lists []cachedList
}

type cachedList struct {
	flags imdraw.ListFlags
	cmds  []imdraw.DrawCmd
	idx   []imdraw.DrawIdx
	vtx   []imdraw.DrawVert
}

// equals reports whether dd is byte-identical to the cached frame:
// same list count, and per list same flags plus byte-for-byte equal
// command/index/vertex buffers, compared positionally.
func (c *drawCache) equals(dd *imdraw.DrawData) bool {
	if len(dd.Lists) != len(c.lists) {
		return false
	}
	for i, l := range dd.Lists {
		p := &c.lists[i]
		if l.Flags != p.flags {
			return false
		}
		if !bytes.Equal(imdraw.CmdBytes(l.Cmds), imdraw.CmdBytes(p.cmds)) {
			return false
		}
		if !bytes.Equal(imdraw.IdxBytes(l.Idx), imdraw.IdxBytes(p.idx)) {
			return false
		}
		if !bytes.Equal(imdraw.VtxBytes(l.Vtx), imdraw.VtxBytes(p.vtx)) {
			return false
		}
	}
	return true
}

// capture replaces the cached frame with a deep copy of dd. Whole-frame
// replace only; there is no partial update.
func (c *drawCache) capture(dd *imdraw.DrawData) {
	for len(c.lists) < len(dd.Lists) {
		c.lists = append(c.lists, cachedList{})
	}
	c.lists = c.lists[:len(dd.Lists)]
	for i, l := range dd.Lists {
		p := &c.lists[i]
		p.flags = l.Flags
		p.cmds = append(p.cmds[:0], l.Cmds...)
		p.idx = append(p.idx[:0], l.Idx...)
		p.vtx = append(p.vtx[:0], l.Vtx...)
	}
}

// release drops the cached frame and its buffers.
func (c *drawCache) release() {
	c.lists = nil
}
