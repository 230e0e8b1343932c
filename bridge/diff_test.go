package bridge

import (
	"testing"

	"github.com/pluginui/imbridge/imdraw"
)

func testFrame() *imdraw.DrawData {
	quad := []imdraw.DrawVert{
		{Pos: [2]float32{10, 10}, UV: [2]float32{0, 0}, Col: 0xff336699},
		{Pos: [2]float32{110, 10}, UV: [2]float32{1, 0}, Col: 0xff336699},
		{Pos: [2]float32{110, 60}, UV: [2]float32{1, 1}, Col: 0xff336699},
		{Pos: [2]float32{10, 60}, UV: [2]float32{0, 1}, Col: 0xff336699},
	}
	l1 := &imdraw.DrawList{
		Flags: imdraw.ListAntiAliasedFill,
		Cmds:  []imdraw.DrawCmd{{ClipRect: [4]float32{0, 0, 200, 200}, ElemCount: 6}},
		Idx:   []imdraw.DrawIdx{0, 1, 2, 0, 2, 3},
		Vtx:   quad,
	}
	l2 := &imdraw.DrawList{
		Cmds: []imdraw.DrawCmd{{ClipRect: [4]float32{0, 0, 200, 200}, ElemCount: 3, TextureID: 7}},
		Idx:  []imdraw.DrawIdx{0, 1, 2},
		Vtx:  quad[:3],
	}
	return &imdraw.DrawData{Valid: true, Lists: []*imdraw.DrawList{l1, l2}}
}

func copyFrame(dd *imdraw.DrawData) *imdraw.DrawData {
	out := &imdraw.DrawData{Valid: dd.Valid, DisplaySize: dd.DisplaySize}
	for _, l := range dd.Lists {
		c := &imdraw.DrawList{Flags: l.Flags}
		c.Cmds = append([]imdraw.DrawCmd(nil), l.Cmds...)
		c.Idx = append([]imdraw.DrawIdx(nil), l.Idx...)
		c.Vtx = append([]imdraw.DrawVert(nil), l.Vtx...)
		out.Lists = append(out.Lists, c)
	}
	return out
}

func TestDiffUnchangedForIdenticalFrames(t *testing.T) {
	var c drawCache
	c.capture(testFrame())

	if !c.equals(testFrame()) {
		t.Error("byte-identical frame reported as changed")
	}
}

func TestDiffEmptyCacheNeverMatchesContent(t *testing.T) {
	var c drawCache
	if c.equals(testFrame()) {
		t.Error("empty cache reported equal to a non-empty frame")
	}
}

func TestDiffDetectsChanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(dd *imdraw.DrawData)
	}{
		{"list count", func(dd *imdraw.DrawData) {
			dd.Lists = dd.Lists[:1]
		}},
		{"list flags", func(dd *imdraw.DrawData) {
			dd.Lists[0].Flags |= imdraw.ListAntiAliasedLines
		}},
		{"command clip rect", func(dd *imdraw.DrawData) {
			dd.Lists[0].Cmds[0].ClipRect[2] += 1
		}},
		{"command texture", func(dd *imdraw.DrawData) {
			dd.Lists[1].Cmds[0].TextureID = 8
		}},
		{"command count", func(dd *imdraw.DrawData) {
			dd.Lists[0].Cmds = append(dd.Lists[0].Cmds, imdraw.DrawCmd{ElemCount: 3})
		}},
		{"single index value", func(dd *imdraw.DrawData) {
			dd.Lists[0].Idx[4] = 1
		}},
		{"index length", func(dd *imdraw.DrawData) {
			dd.Lists[1].Idx = dd.Lists[1].Idx[:2]
		}},
		{"single vertex byte", func(dd *imdraw.DrawData) {
			dd.Lists[0].Vtx[2].Col ^= 0x01
		}},
		{"vertex position", func(dd *imdraw.DrawData) {
			dd.Lists[1].Vtx[0].Pos[1] += 0.5
		}},
		{"vertex length", func(dd *imdraw.DrawData) {
			dd.Lists[0].Vtx = dd.Lists[0].Vtx[:3]
		}},
		{"list order", func(dd *imdraw.DrawData) {
			dd.Lists[0], dd.Lists[1] = dd.Lists[1], dd.Lists[0]
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c drawCache
			c.capture(testFrame())

			dd := testFrame()
			tt.mutate(dd)
			if c.equals(dd) {
				t.Error("mutated frame reported as unchanged")
			}
		})
	}
}

func TestCaptureIsDeepCopy(t *testing.T) {
	var c drawCache
	src := testFrame()
	c.capture(src)

	// mutating the captured frame afterwards must not leak into the cache
	src.Lists[0].Vtx[0].Col = 0
	src.Lists[1].Idx[0] = 9

	if !c.equals(testFrame()) {
		t.Error("cache aliases the captured frame's buffers")
	}
}

func TestCaptureReplacesWholeFrame(t *testing.T) {
	var c drawCache
	c.capture(testFrame())

	next := testFrame()
	next.Lists = next.Lists[:1]
	next.Lists[0].Vtx[0].Pos[0] = 99
	c.capture(next)

	if !c.equals(copyFrame(next)) {
		t.Error("cache does not reflect the last captured frame")
	}
	if c.equals(testFrame()) {
		t.Error("cache still matches the previous frame")
	}
}

func TestCaptureThenDiffIsStableAcrossReuse(t *testing.T) {
	// capture alternating frames repeatedly; reused buffers must not
	// corrupt equality
	var c drawCache
	a := testFrame()
	b := testFrame()
	b.Lists[0].Vtx[1].Col = 0xffffffff

	for i := 0; i < 8; i++ {
		c.capture(a)
		if !c.equals(copyFrame(a)) || c.equals(copyFrame(b)) {
			t.Fatalf("round %d: cache mismatch after capturing a", i)
		}
		c.capture(b)
		if !c.equals(copyFrame(b)) || c.equals(copyFrame(a)) {
			t.Fatalf("round %d: cache mismatch after capturing b", i)
		}
	}
}
