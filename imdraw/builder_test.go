package imdraw

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBuilderMergesQuadsIntoOneCommand(t *testing.T) {
	b := NewListBuilder(8)
	b.SetClipRect(0, 0, 100, 100)
	b.AddRectFilled(0, 0, 10, 10, 0xffffffff)
	b.AddRectFilled(20, 0, 10, 10, 0xffffffff)

	l := b.List()
	if len(l.Cmds) != 1 {
		t.Fatalf("cmds = %d, want 1 (same clip/texture state)", len(l.Cmds))
	}
	if l.Cmds[0].ElemCount != 12 {
		t.Errorf("ElemCount = %d, want 12", l.Cmds[0].ElemCount)
	}
	if len(l.Vtx) != 8 || len(l.Idx) != 12 {
		t.Errorf("buffers = %d verts / %d inds, want 8 / 12", len(l.Vtx), len(l.Idx))
	}
}

func TestBuilderSplitsOnStateChange(t *testing.T) {
	b := NewListBuilder(8)
	b.SetClipRect(0, 0, 100, 100)
	b.AddRectFilled(0, 0, 10, 10, 0xffffffff)
	b.SetClipRect(0, 0, 50, 50)
	b.AddRectFilled(5, 5, 10, 10, 0xffffffff)
	b.SetTexture(3)
	b.AddRectFilled(5, 5, 10, 10, 0xffffffff)

	l := b.List()
	if len(l.Cmds) != 3 {
		t.Fatalf("cmds = %d, want 3", len(l.Cmds))
	}
	if l.Cmds[1].IdxOffset != 6 || l.Cmds[2].IdxOffset != 12 {
		t.Errorf("IdxOffsets = %d, %d, want 6, 12", l.Cmds[1].IdxOffset, l.Cmds[2].IdxOffset)
	}
	if l.Cmds[2].TextureID != 3 {
		t.Errorf("TextureID = %d, want 3", l.Cmds[2].TextureID)
	}
}

func TestBuilderResetReusesBuffers(t *testing.T) {
	b := NewListBuilder(8)
	b.SetClipRect(0, 0, 100, 100)
	b.AddRectFilled(0, 0, 10, 10, 0xffffffff)

	before := cap(b.verts)
	b.Reset()
	if len(b.verts) != 0 || len(b.inds) != 0 || len(b.cmds) != 0 {
		t.Error("Reset did not clear the batch")
	}
	b.SetClipRect(0, 0, 100, 100)
	b.AddRectFilled(0, 0, 10, 10, 0xffffffff)
	if cap(b.verts) != before {
		t.Error("Reset freed the vertex buffer")
	}
}

func TestQuadWinding(t *testing.T) {
	b := NewListBuilder(1)
	b.AddRectFilled(1, 2, 10, 20, 0xff00ff00)
	l := b.List()

	want := []DrawIdx{0, 1, 2, 0, 2, 3}
	for i, idx := range l.Idx {
		if idx != want[i] {
			t.Fatalf("Idx = %v, want %v", l.Idx, want)
		}
	}
	if l.Vtx[0].Pos != [2]float32{1, 2} || l.Vtx[2].Pos != [2]float32{11, 22} {
		t.Errorf("corner vertices wrong: %v, %v", l.Vtx[0].Pos, l.Vtx[2].Pos)
	}
}

func TestPackColor(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float32
		want       uint32
	}{
		{"white", 1, 1, 1, 1, 0xffffffff},
		{"opaque red", 1, 0, 0, 1, 0xff0000ff},
		{"transparent black", 0, 0, 0, 0, 0},
		{"clamped", 2, -1, 0, 1, 0xff0000ff},
		{"half green", 0, 0.5, 0, 1, 0xff008000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackColor(tt.r, tt.g, tt.b, tt.a); got != tt.want {
				t.Errorf("PackColor = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestByteViews(t *testing.T) {
	if CmdBytes(nil) != nil || IdxBytes(nil) != nil || VtxBytes(nil) != nil {
		t.Error("empty slices must yield nil byte views")
	}

	idx := []DrawIdx{0x0102, 0x0304}
	got := IdxBytes(idx)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	want := make([]byte, 4)
	binary.NativeEndian.PutUint16(want, 0x0102)
	binary.NativeEndian.PutUint16(want[2:], 0x0304)
	if !bytes.Equal(got, want) {
		t.Errorf("IdxBytes = % x, want % x", got, want)
	}

	vtx := []DrawVert{{Col: 0xaabbccdd}}
	if len(VtxBytes(vtx)) != 20 {
		t.Errorf("vertex stride = %d bytes, want 20", len(VtxBytes(vtx)))
	}
}
