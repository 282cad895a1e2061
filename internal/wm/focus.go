package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/config"
)

// updateCurrent re-derives which client is current/prevFocus from c,
// then repaints borders, restacks every client on the active desktop,
// and gives the new current client input focus. Passing nil when the
// desktop is empty clears focus and the _NET_ACTIVE_WINDOW property.
//
// c's relationship to the existing current/prevFocus decides what
// happens:
//   - c == prevFocus: a "fall back to last focused" request (used by
//     removeClient and clientToDesktop when current goes away);
//     current becomes prevFocus (or head if prevFocus was nil), and
//     prevFocus becomes prevClient of the new current.
//   - c == current: a no-op repaint, used after geometry or mode
//     changes where focus itself hasn't moved.
//   - anything else: current moves to c, and the old current becomes
//     prevFocus.
func (w *WM) updateCurrent(c *Client) {
	if w.head == nil {
		w.x.ClearActiveWindow()
		w.current, w.prevFocus = nil, nil
		return
	}

	switch {
	case c == w.prevFocus:
		if w.prevFocus != nil {
			w.current = w.prevFocus
		} else {
			w.current = w.head
		}
		w.prevFocus = prevClient(w.head, w.current)
	case c != w.current:
		w.prevFocus = w.current
		w.current = c
	}

	w.restackAndFocus()
}

// restackAndFocus implements the stack-order and border policy
// spelled out in its body: floating or transient windows always
// ride above everything else, current rides above its own bucket, and
// tiled windows sit at the bottom.
func (w *WM) restackAndFocus() {
	current := w.current
	single := w.head.Next == nil

	var others, fullscreens, tiled []xproto.Window
	for c := w.head; c != nil; c = c.Next {
		w.x.SetBorderColor(c.Win, c == current)
		borderless := single || c.IsFullscreen || (w.mode == config.Monocle && !isFFT(c))
		if borderless {
			w.x.SetBorderWidth(c.Win, 0)
		} else {
			w.x.SetBorderWidth(c.Win, w.cfg.BorderWidth)
		}

		if c == current {
			continue
		}
		switch {
		case c.IsFloating || c.IsTransient:
			others = append(others, c.Win)
		case c.IsFullscreen:
			fullscreens = append(fullscreens, c.Win)
		default:
			tiled = append(tiled, c.Win)
		}

		if w.cfg.ClickToFocus {
			w.x.GrabButton(c.Win, xproto.Button(1), 0)
		}
	}

	// Top to bottom: current-if-floating, other floating/transient,
	// current-if-tiled, current-if-fullscreen, other fullscreen, tiled.
	var order []xproto.Window
	if current.IsFloating || current.IsTransient {
		order = append(order, current.Win)
	}
	order = append(order, others...)
	if !current.IsFloating && !current.IsTransient && !current.IsFullscreen {
		order = append(order, current.Win)
	}
	if current.IsFullscreen {
		order = append(order, current.Win)
	}
	order = append(order, fullscreens...)
	order = append(order, tiled...)
	w.x.Restack(order)

	w.x.SetInputFocus(current.Win)
	w.x.SetActiveWindow(current.Win)
	if w.cfg.ClickToFocus {
		w.x.UngrabButton(current.Win, xproto.Button(1))
	}
}
