package imdraw

const (
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// ListBuilder batches quads into a single DrawList. Buffers are reused
// across frames: call Reset once per frame, then append, then List.
type ListBuilder struct {
	flags ListFlags
	cmds  []DrawCmd
	inds  []DrawIdx
	verts []DrawVert

	clip [4]float32
	tex  uint32
}

// NewListBuilder pre-sizes the builder for maxQuads quads.
func NewListBuilder(maxQuads int) *ListBuilder {
	if maxQuads <= 0 {
		maxQuads = 1024
	}
	return &ListBuilder{
		cmds:  make([]DrawCmd, 0, 16),
		inds:  make([]DrawIdx, 0, maxQuads*indsPerQuad),
		verts: make([]DrawVert, 0, maxQuads*vertsPerQuad),
	}
}

// Reset clears the batch without freeing memory.
func (b *ListBuilder) Reset() {
	b.cmds = b.cmds[:0]
	b.inds = b.inds[:0]
	b.verts = b.verts[:0]
	b.clip = [4]float32{}
	b.tex = 0
}

// SetFlags sets the list flags bitfield.
func (b *ListBuilder) SetFlags(f ListFlags) { b.flags = f }

// SetClipRect starts clipping subsequent quads to the given rectangle.
func (b *ListBuilder) SetClipRect(x1, y1, x2, y2 float32) {
	b.clip = [4]float32{x1, y1, x2, y2}
}

// SetTexture selects the texture for subsequent quads (0 = default white).
func (b *ListBuilder) SetTexture(id uint32) { b.tex = id }

// AddRectFilled appends a solid quad at (x,y) with size (w,h).
func (b *ListBuilder) AddRectFilled(x, y, w, h float32, col uint32) {
	b.AddQuadUV(x, y, w, h, 0, 0, 1, 1, col)
}

// AddQuadUV appends a textured quad with explicit UVs.
func (b *ListBuilder) AddQuadUV(x, y, w, h, u0, v0, u1, v1 float32, col uint32) {
	base := DrawIdx(len(b.verts))
	b.verts = append(b.verts,
		DrawVert{Pos: [2]float32{x, y}, UV: [2]float32{u0, v0}, Col: col},
		DrawVert{Pos: [2]float32{x + w, y}, UV: [2]float32{u1, v0}, Col: col},
		DrawVert{Pos: [2]float32{x + w, y + h}, UV: [2]float32{u1, v1}, Col: col},
		DrawVert{Pos: [2]float32{x, y + h}, UV: [2]float32{u0, v1}, Col: col},
	)
	b.inds = append(b.inds, base, base+1, base+2, base, base+2, base+3)
	b.bumpCmd(indsPerQuad)
}

// bumpCmd extends the current command or opens a new one when clip/texture
// state differs from the command being built.
func (b *ListBuilder) bumpCmd(elems uint32) {
	if n := len(b.cmds); n > 0 {
		cur := &b.cmds[n-1]
		if cur.ClipRect == b.clip && cur.TextureID == b.tex {
			cur.ElemCount += elems
			return
		}
	}
	b.cmds = append(b.cmds, DrawCmd{
		ClipRect:  b.clip,
		TextureID: b.tex,
		ElemCount: elems,
		IdxOffset: uint32(len(b.inds)) - elems,
	})
}

// List returns the batched draw list. The returned list aliases the
// builder's buffers; it is valid until the next Reset.
func (b *ListBuilder) List() *DrawList {
	return &DrawList{Flags: b.flags, Cmds: b.cmds, Idx: b.inds, Vtx: b.verts}
}
