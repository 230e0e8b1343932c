// Package imtk defines the contracts this bridge expects from an
// immediate-mode toolkit: the shared input state, the context that owns it,
// and the frame-producer hook that fills a frame with content.
package imtk

// KeysDownSize is the number of key slots tracked in IO.KeysDown.
// Special keys are indexed from the top of this range, see the key map.
const KeysDownSize = 512

// MouseButtonCount is the number of tracked mouse buttons.
const MouseButtonCount = 5

// IO is the toolkit-owned mutable input state. The bridge mutates it on
// every host input event; the frame producer reads it once per frame build.
// Wheel deltas and queued characters are consumed (reset) by the context
// after each frame build.
type IO struct {
	DisplaySize [2]float32

	// KeyMap maps toolkit key identifiers to KeysDown indices.
	KeyMap [KeyCount]int

	KeysDown [KeysDownSize]bool
	KeyShift bool
	KeyCtrl  bool
	KeyAlt   bool
	KeySuper bool

	MousePos    [2]float32
	MouseDown   [MouseButtonCount]bool
	MouseWheel  float32
	MouseWheelH float32

	// Set by the toolkit during the frame build; read back by the bridge
	// to decide whether an event is claimed.
	WantCaptureKeyboard bool
	WantCaptureMouse    bool

	chars []rune
}

// AddInputCharacter queues a character for text input.
func (io *IO) AddInputCharacter(r rune) {
	io.chars = append(io.chars, r)
}

// InputCharacters returns the characters queued since the last frame build.
func (io *IO) InputCharacters() []rune { return io.chars }

// IsKeyDown reports whether the mapped toolkit key is currently held.
func (io *IO) IsKeyDown(k MappedKey) bool {
	idx := io.KeyMap[k]
	if idx < 0 || idx >= KeysDownSize {
		return false
	}
	return io.KeysDown[idx]
}

// consumeFrameInput resets the per-frame accumulators after a frame build.
func (io *IO) consumeFrameInput() {
	io.MouseWheel = 0
	io.MouseWheelH = 0
	io.chars = io.chars[:0]
}
