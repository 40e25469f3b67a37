package editor

// Modifiers is the state of the modifier keys at the time of an event.
type Modifiers struct {
	Place bool // pointer-down places a new point
	Undo  bool // undo commands are accepted
}

// Keys keeps track of pressed keys and dispatches key handlers.
// Every editor owns its Keys; there is no process-wide key state.
type Keys struct {
	pressed map[string]bool
	down    map[string]func()
	up      map[string]func()
}

// NewKeys creates a key registry with no key pressed.
func NewKeys() *Keys {
	return &Keys{
		pressed: make(map[string]bool),
		down:    make(map[string]func()),
		up:      make(map[string]func()),
	}
}

// OnKeyDown sets the handler for key presses of key. If key is pressed
// already, the handler is called immediately.
func (k *Keys) OnKeyDown(key string, handler func()) {
	k.down[key] = handler
	if k.IsDown(key) {
		handler()
	}
}

// OnKeyUp sets the handler for key releases of key.
func (k *Keys) OnKeyUp(key string, handler func()) {
	k.up[key] = handler
}

// KeyDown registers a key press and calls its handler, if any.
func (k *Keys) KeyDown(key string) {
	k.pressed[key] = true
	if h := k.down[key]; h != nil {
		h()
	}
}

// KeyUp registers a key release and calls its handler, if any.
func (k *Keys) KeyUp(key string) {
	delete(k.pressed, key)
	if h := k.up[key]; h != nil {
		h()
	}
}

// IsDown is a predicate: is key currently pressed?
func (k *Keys) IsDown(key string) bool {
	return k.pressed[key]
}

// Modifiers returns the modifier state according to a key map.
func (k *Keys) Modifiers(km KeyMap) Modifiers {
	return Modifiers{
		Place: k.IsDown(km.Place),
		Undo:  km.UndoGuard == "" || k.IsDown(km.UndoGuard),
	}
}
