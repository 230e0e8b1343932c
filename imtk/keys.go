package imtk

// MappedKey identifies a toolkit-level key whose KeysDown slot is resolved
// through IO.KeyMap. Mirrors the set of keys immediate-mode toolkits use
// for navigation and shortcuts.
type MappedKey int

const (
	KeyTab MappedKey = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyCount
)
