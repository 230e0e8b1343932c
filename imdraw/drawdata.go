// Package imdraw holds the vector draw output produced by one immediate-mode
// render pass: ordered draw lists of commands plus the vertex/index buffers
// they reference.
package imdraw

// DrawVert is one interleaved vertex: position, UV, packed RGBA color.
type DrawVert struct {
	Pos [2]float32
	UV  [2]float32
	Col uint32
}

// DrawIdx indexes into a list's vertex buffer.
type DrawIdx = uint16

// DrawCmd is a single draw call: ElemCount indices starting at IdxOffset,
// rendered with the given clip rectangle and texture.
type DrawCmd struct {
	ClipRect  [4]float32 // x1, y1, x2, y2 in framebuffer space
	TextureID uint32     // 0 means the backend's default (white) texture
	ElemCount uint32
	IdxOffset uint32
	VtxOffset uint32
}

// ListFlags is the per-list render flags bitfield.
type ListFlags uint32

const (
	ListAntiAliasedLines ListFlags = 1 << iota
	ListAntiAliasedFill
	ListAllowVtxOffset
)

// DrawList is one ordered batch of commands with its backing buffers.
type DrawList struct {
	Flags ListFlags
	Cmds  []DrawCmd
	Idx   []DrawIdx
	Vtx   []DrawVert
}

// DrawData is the full output of one render pass. Lists are immutable once
// produced; ownership transfers to whoever captured them last.
type DrawData struct {
	Valid       bool
	Lists       []*DrawList
	DisplaySize [2]float32
}

// TotalVtxCount reports vertices across all lists.
func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.Vtx)
	}
	return n
}

// TotalIdxCount reports indices across all lists.
func (d *DrawData) TotalIdxCount() int {
	n := 0
	for _, l := range d.Lists {
		n += len(l.Idx)
	}
	return n
}

// PackColor packs RGBA channels in [0..1] into the vertex color format
// (one byte per channel, R in the low byte).
func PackColor(r, g, b, a float32) uint32 {
	return uint32(clamp255(r)) |
		uint32(clamp255(g))<<8 |
		uint32(clamp255(b))<<16 |
		uint32(clamp255(a))<<24
}

func clamp255(f float32) uint8 {
	v := int(f*255 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
