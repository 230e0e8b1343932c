// Package bridge connects a host plugin window to an immediate-mode
// toolkit: it translates host input events into the toolkit's input state,
// throttles frame builds to a repaint interval, and requests a host
// repaint only when the produced frame differs from the last one.
package bridge

// Key identifies a non-printable host key delivered via SpecialEvent.
// Values follow the host framework's enumeration, starting at 1.
type Key int

const (
	KeyF1 Key = iota + 1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyShift
	KeyControl
	KeyAlt
	KeySuper
)

// KeyboardEvent is a printable key press or release; Key is the raw
// character as delivered by the host.
type KeyboardEvent struct {
	Key   rune
	Press bool
}

// SpecialEvent is a non-printable key press or release.
type SpecialEvent struct {
	Key   Key
	Press bool
}

// MouseEvent is a button press or release. Host buttons start at 1.
type MouseEvent struct {
	Button int
	Press  bool
}

// MotionEvent is a pointer move in host window coordinates.
type MotionEvent struct {
	X, Y float64
}

// ScrollEvent carries wheel deltas for one scroll step.
type ScrollEvent struct {
	DeltaX, DeltaY float64
}

// Host is the surface this bridge needs from the plugin window framework:
// a way to ask for a repaint. The request is a signal only; the host
// invokes the paint callback later at its own discretion.
type Host interface {
	Repaint()
}
