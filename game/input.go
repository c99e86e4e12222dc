package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snowcat/event"
	"github.com/lixenwraith/snowcat/parameter"
	"github.com/lixenwraith/snowcat/vmath"
)

// translator converts tcell events into queue events
// Owned by the poll goroutine; pressed tracks the primary button across mouse reports
type translator struct {
	pressed bool
}

// translate returns the queue event for ev, false when ev carries nothing for the loop
func (t *translator) translate(ev tcell.Event) (event.InputEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return event.InputEvent{Type: event.EventQuit}, true
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return event.InputEvent{Type: event.EventQuit}, true
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		primary := ev.Buttons()&tcell.Button1 != 0
		switch {
		case primary && !t.pressed:
			t.pressed = true
			return event.InputEvent{Type: event.EventPointerDown, X: x, Y: y}, true
		case primary:
			return event.InputEvent{Type: event.EventPointerMove, X: x, Y: y}, true
		case t.pressed:
			t.pressed = false
			return event.InputEvent{Type: event.EventPointerUp, X: x, Y: y}, true
		}

	case *tcell.EventResize:
		w, h := ev.Size()
		return event.InputEvent{Type: event.EventResize, X: w, Y: h}, true
	}
	return event.InputEvent{}, false
}

// cellToWorld maps a terminal cell to the world position of its center
func cellToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x)+0.5)*parameter.CellWidth,
		(float64(y)+0.5)*parameter.CellHeight,
	)
}

// worldSize is the surface covered by a terminal of cols x rows cells
func worldSize(cols, rows int) (width, height float64) {
	return float64(cols) * parameter.CellWidth, float64(rows) * parameter.CellHeight
}
