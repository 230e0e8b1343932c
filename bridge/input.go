package bridge

import "math"

// Input translation: each handler mutates the toolkit's IO state, then
// reports whether the toolkit claims the event (in which case the host
// should not also consume it). Claim flags are read from toolkit state,
// never computed here.

// OnKeyboard handles a printable key. The raw character is queued for
// text input on press; for ASCII codes the key-down flag is set with
// lowercase letters folded to uppercase, matching the toolkit's
// case-insensitive shortcut tracking.
func (u *UI) OnKeyboard(ev KeyboardEvent) bool {
	restore := u.ctx.MakeCurrent()
	defer restore()
	io := u.ctx.IO()

	if ev.Press {
		io.AddInputCharacter(ev.Key)
	}

	k := int(ev.Key)
	if k >= 0 && k < 128 {
		if k >= 'a' && k <= 'z' {
			k = k - 'a' + 'A'
		}
		io.KeysDown[k] = ev.Press
	}

	return io.WantCaptureKeyboard
}

// OnSpecial handles a non-printable key, indexed from the top of the
// KeysDown array. Modifier keys additionally set their dedicated flags.
func (u *UI) OnSpecial(ev SpecialEvent) bool {
	restore := u.ctx.MakeCurrent()
	defer restore()
	io := u.ctx.IO()

	io.KeysDown[specialKeyIndex(ev.Key)] = ev.Press

	switch ev.Key {
	case KeyShift:
		io.KeyShift = ev.Press
	case KeyControl:
		io.KeyCtrl = ev.Press
	case KeyAlt:
		io.KeyAlt = ev.Press
	case KeySuper:
		io.KeySuper = ev.Press
	}

	return io.WantCaptureKeyboard
}

// OnMouse handles a button press or release. Unknown button codes mutate
// nothing; the claim flag is still relayed from toolkit state.
func (u *UI) OnMouse(ev MouseEvent) bool {
	restore := u.ctx.MakeCurrent()
	defer restore()
	io := u.ctx.IO()

	if b := mouseButtonIndex(ev.Button); b >= 0 {
		io.MouseDown[b] = ev.Press
	}

	return io.WantCaptureMouse
}

// OnMotion updates the pointer position, scaled and rounded to the
// nearest integer. Motion is never claimed; hover must not block host
// dispatch.
func (u *UI) OnMotion(ev MotionEvent) bool {
	restore := u.ctx.MakeCurrent()
	defer restore()
	io := u.ctx.IO()

	io.MousePos[0] = float32(math.Round(float64(u.scale) * ev.X))
	io.MousePos[1] = float32(math.Round(float64(u.scale) * ev.Y))

	return false
}

// OnScroll accumulates wheel deltas; multiple events between frame builds
// compound until the toolkit consumes them.
func (u *UI) OnScroll(ev ScrollEvent) bool {
	restore := u.ctx.MakeCurrent()
	defer restore()
	io := u.ctx.IO()

	io.MouseWheel += float32(ev.DeltaY)
	io.MouseWheelH += float32(ev.DeltaX)

	return io.WantCaptureMouse
}

// mouseButtonIndex maps host button codes to toolkit button indices.
// Right and middle are swapped relative to naive ordering; anything else
// is ignored.
func mouseButtonIndex(button int) int {
	switch button {
	case 1:
		return 0
	case 2:
		return 2
	case 3:
		return 1
	default:
		return -1
	}
}
