package imdraw

import "unsafe"

// Raw byte views over the three parallel buffers. Valid only while the
// backing slice is alive and unmodified; callers must not retain them
// across a frame boundary.

func CmdBytes(c []DrawCmd) []byte {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&c[0])), len(c)*int(unsafe.Sizeof(c[0])))
}

func IdxBytes(i []DrawIdx) []byte {
	if len(i) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&i[0])), len(i)*int(unsafe.Sizeof(i[0])))
}

func VtxBytes(v []DrawVert) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(v[0])))
}
