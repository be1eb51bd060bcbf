// Package event defines the closed set of window/input events and the
// single-slot Dispatcher that routes them to handlers.
package event

import (
	"strconv"

	"github.com/hubastard/vista/engine/input"
)

// Kind discriminates event payloads. Ordinals index the dispatcher table.
type Kind uint8

const (
	KindWindowClose Kind = iota
	KindWindowResize
	KindKeyPressed
	KindKeyReleased
	KindMouseMoved
	KindMouseScrolled
	KindMouseButtonPressed
	KindMouseButtonReleased

	kindCount
)

var kindNames = [kindCount]string{
	KindWindowClose:         "WindowClose",
	KindWindowResize:        "WindowResize",
	KindKeyPressed:          "KeyPressed",
	KindKeyReleased:         "KeyReleased",
	KindMouseMoved:          "MouseMoved",
	KindMouseScrolled:       "MouseScrolled",
	KindMouseButtonPressed:  "MouseButtonPressed",
	KindMouseButtonReleased: "MouseButtonReleased",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is implemented by every payload type. Kind must return a constant
// so the zero value of a payload type identifies its kind.
type Event interface {
	Kind() Kind
}

type WindowClose struct{}

func (WindowClose) Kind() Kind { return KindWindowClose }

// WindowResize carries the framebuffer size in pixels.
type WindowResize struct{ Width, Height int }

func (WindowResize) Kind() Kind { return KindWindowResize }

type KeyPressed struct {
	Key      input.Key
	Repeated bool // auto-repeat while held
	Mods     input.Mod
}

func (KeyPressed) Kind() Kind { return KindKeyPressed }

type KeyReleased struct {
	Key  input.Key
	Mods input.Mod
}

func (KeyReleased) Kind() Kind { return KindKeyReleased }

type MouseMoved struct{ X, Y float64 }

func (MouseMoved) Kind() Kind { return KindMouseMoved }

// MouseScrolled carries the vertical wheel offset in Offset.
type MouseScrolled struct {
	Offset  float64
	XOffset float64
}

func (MouseScrolled) Kind() Kind { return KindMouseScrolled }

// MouseButtonPressed carries the cursor position at the time of the press.
type MouseButtonPressed struct {
	Button input.MouseButton
	X, Y   float64
}

func (MouseButtonPressed) Kind() Kind { return KindMouseButtonPressed }

type MouseButtonReleased struct {
	Button input.MouseButton
	X, Y   float64
}

func (MouseButtonReleased) Kind() Kind { return KindMouseButtonReleased }
