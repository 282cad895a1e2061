package wm

import "github.com/BurntSushi/xgb/xproto"

// dragKind is which operation a drag session performs.
type dragKind int

const (
	dragMove dragKind = iota
	dragResize
)

// dragState holds an in-progress move/resize session. A nested XMaskEvent
// loop for the duration of the drag isn't a natural fit for Go's single
// dispatch loop, so the same behavior is modeled as explicit state
// consulted by the ordinary event switch instead; onMotionNotify and
// onButtonRelease only do anything while drag.active is true.
type dragState struct {
	active bool
	kind   dragKind
	client *Client

	startRootX, startRootY int16
	startX, startY         int16
	startW, startH         uint16
}

// startDrag begins a move or resize of the current client: grabs the
// pointer, records the client's starting geometry and the pointer's
// starting position, and (mirroring mousemotion) immediately takes the
// client out of fullscreen and into floating mode.
func (w *WM) startDrag(kind dragKind) {
	if w.current == nil || w.drag.active {
		return
	}
	x, y, width, height, err := w.x.GetGeometry(w.current.Win)
	if err != nil {
		return
	}
	if err := w.x.GrabPointerForDrag(0); err != nil {
		return
	}
	if kind == dragResize {
		w.x.WarpPointer(w.current.Win, int16(width), int16(height))
	}
	rx, ry, err := w.x.QueryPointer()
	if err != nil {
		w.x.UngrabPointer()
		return
	}

	w.drag = dragState{
		active:     true,
		kind:       kind,
		client:     w.current,
		startRootX: rx,
		startRootY: ry,
		startX:     x,
		startY:     y,
		startW:     width,
		startH:     height,
	}

	if w.current.IsFullscreen {
		w.setFullscreen(w.current, false)
	}
	if !w.current.IsFloating {
		w.current.IsFloating = true
	}
	w.tile()
	w.updateCurrent(w.current)
}

// onMotionNotify updates the dragged client's geometry as the pointer
// moves. A resize that would take a dimension below the configured
// minimum window size leaves that dimension at its starting value.
func (w *WM) onMotionNotify(e xproto.MotionNotifyEvent) {
	if !w.drag.active {
		return
	}
	dx := e.RootX - w.drag.startRootX
	dy := e.RootY - w.drag.startRootY

	switch w.drag.kind {
	case dragMove:
		w.x.MoveResize(w.drag.client.Win, w.drag.startX+dx, w.drag.startY+dy, w.drag.startW, w.drag.startH)
	case dragResize:
		nw := int32(w.drag.startW) + int32(dx)
		nh := int32(w.drag.startH) + int32(dy)
		if nw < int32(w.cfg.MinWinSize) {
			nw = int32(w.drag.startW)
		}
		if nh < int32(w.cfg.MinWinSize) {
			nh = int32(w.drag.startH)
		}
		w.x.MoveResize(w.drag.client.Win, w.drag.startX, w.drag.startY, uint16(nw), uint16(nh))
	}
}

// onButtonRelease ends an in-progress drag session.
func (w *WM) onButtonRelease(e xproto.ButtonReleaseEvent) {
	if !w.drag.active {
		return
	}
	w.drag = dragState{}
	w.x.UngrabPointer()
}
