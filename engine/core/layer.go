package core

import (
	"iter"
	"slices"

	"github.com/hubastard/vista/engine/event"
)

// Layer is one slice of the frame (the editor, an overlay). OnEvent reports
// whether the layer consumed the event; consumed events go no lower.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev event.Event) bool
}

// LayerStack orders layers bottom to top. Update and render walk it Up,
// events walk it Down so the topmost layer sees input first.
type LayerStack struct{ layers []Layer }

func (s *LayerStack) Push(l Layer) { s.layers = append(s.layers, l) }

// Pop removes the top layer. The vacated slot is cleared so the layer can
// be collected.
func (s *LayerStack) Pop() (Layer, bool) {
	n := len(s.layers)
	if n == 0 {
		return nil, false
	}
	top := s.layers[n-1]
	s.layers[n-1] = nil
	s.layers = s.layers[:n-1]
	return top, true
}

func (s *LayerStack) Len() int { return len(s.layers) }

func (s *LayerStack) Up() iter.Seq[Layer] { return slices.Values(s.layers) }

func (s *LayerStack) Down() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for _, l := range slices.Backward(s.layers) {
			if !yield(l) {
				return
			}
		}
	}
}
