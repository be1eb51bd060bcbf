package input

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyOutOfRange is returned when a key code does not fit the key table.
	ErrKeyOutOfRange = errors.New("key code out of range")

	// ErrMouseButtonOutOfRange is returned when a button code does not fit the button table.
	ErrMouseButtonOutOfRange = errors.New("mouse button code out of range")
)

// State is the pressed/released table for keys and mouse buttons, plus the
// last known cursor position. It is written by event handlers and polled by
// update code on the same thread; it does no locking.
type State struct {
	keys           [KeyLast + 1]bool
	buttons        [MouseButtonLast + 1]bool
	mouseX, mouseY float64
}

func NewState() *State { return &State{} }

func (s *State) PressKey(k Key) error   { return s.setKey(k, true) }
func (s *State) ReleaseKey(k Key) error { return s.setKey(k, false) }

// IsKeyPressed reports false for codes outside the table.
func (s *State) IsKeyPressed(k Key) bool {
	if !k.Valid() {
		return false
	}
	return s.keys[k]
}

func (s *State) setKey(k Key, down bool) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrKeyOutOfRange, k)
	}
	s.keys[k] = down
	return nil
}

func (s *State) PressMouseButton(b MouseButton) error   { return s.setButton(b, true) }
func (s *State) ReleaseMouseButton(b MouseButton) error { return s.setButton(b, false) }

func (s *State) IsMouseButtonPressed(b MouseButton) bool {
	if !b.Valid() {
		return false
	}
	return s.buttons[b]
}

func (s *State) setButton(b MouseButton, down bool) error {
	if !b.Valid() {
		return fmt.Errorf("%w: %d", ErrMouseButtonOutOfRange, b)
	}
	s.buttons[b] = down
	return nil
}

func (s *State) SetCursor(x, y float64)     { s.mouseX, s.mouseY = x, y }
func (s *State) Cursor() (float64, float64) { return s.mouseX, s.mouseY }

// Reset releases every key and button. The cursor position is kept.
func (s *State) Reset() {
	s.keys = [KeyLast + 1]bool{}
	s.buttons = [MouseButtonLast + 1]bool{}
}
