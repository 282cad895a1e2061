package wm

import "github.com/BurntSushi/xgb/xproto"

// Client wraps one managed window in a desktop's singly linked list.
// There is no back-pointer; anything that needs the previous client
// scans for it with prevClient, a deliberate trade for keeping the
// struct small since desktop lists are short.
type Client struct {
	Win xproto.Window
	Next *Client

	IsFullscreen bool
	IsFloating   bool
	IsTransient  bool
	IsUrgent     bool
}

// isFFT reports whether the layout engine should skip c entirely:
// fullscreen, floating, or transient clients float free of the tiling
// grid regardless of the active mode.
func isFFT(c *Client) bool {
	return c.IsFullscreen || c.IsFloating || c.IsTransient
}

// prevClient returns the list predecessor of c, or nil if the list has
// fewer than two clients. For c == head it wraps and returns the tail,
// which is how callers find the tail. O(n): the list never carries a
// back-pointer.
func prevClient(head, c *Client) *Client {
	if c == nil || head == nil || head.Next == nil {
		return nil
	}
	p := head
	for p.Next != nil && p.Next != c {
		p = p.Next
	}
	return p
}

// wintoclient finds the client that owns win across every desktop,
// restoring the originally active desktop before returning.
func (w *WM) wintoclient(win xproto.Window) *Client {
	saved := w.currentDesktop
	var found *Client
	for d := 0; d < len(w.desktops) && found == nil; d++ {
		w.selectDesktop(d)
		for c := w.head; c != nil; c = c.Next {
			if c.Win == win {
				found = c
				break
			}
		}
	}
	w.selectDesktop(saved)
	return found
}

// addWindow creates a client for w and links it into the active
// desktop's list: as the new head unless AttachAside is configured, in
// which case it joins the tail.
func (w *WM) addWindow(win xproto.Window) *Client {
	tail := prevClient(w.head, w.head)
	c := &Client{Win: win}

	switch {
	case w.head == nil:
		w.head = c
	case !w.cfg.AttachAside:
		c.Next = w.head
		w.head = c
	case tail != nil:
		tail.Next = c
	default:
		w.head.Next = c
	}

	w.x.SelectClientEvents(win)
	return c
}

// removeClient unlinks c from whichever desktop holds it, repairs
// prevFocus/current and re-tiles, returning to the originally active
// desktop throughout.
func (w *WM) removeClient(c *Client) {
	savedCurrent := w.currentDesktop
	var removedFrom = -1
	for d := 0; d < len(w.desktops) && removedFrom < 0; d++ {
		w.selectDesktop(d)
		if w.head == c {
			w.head = c.Next
			removedFrom = d
			break
		}
		for p := w.head; p != nil && p.Next != nil; p = p.Next {
			if p.Next == c {
				p.Next = c.Next
				removedFrom = d
				break
			}
		}
	}
	if removedFrom < 0 {
		w.selectDesktop(savedCurrent)
		return
	}

	if c == w.prevFocus {
		w.prevFocus = prevClient(w.head, w.current)
	}
	if c == w.current || w.head == nil || w.head.Next == nil {
		w.updateCurrent(w.prevFocus)
	}

	if savedCurrent == removedFrom {
		w.tile()
	} else {
		w.selectDesktop(savedCurrent)
	}
}

// nextWin cyclically focuses current.Next, wrapping to head.
func (w *WM) nextWin() {
	if w.current == nil || w.head.Next == nil {
		return
	}
	if w.current.Next != nil {
		w.updateCurrent(w.current.Next)
	} else {
		w.updateCurrent(w.head)
	}
}

// prevWin cyclically focuses the client before current, wrapping to the
// tail; current becomes the new prevFocus.
func (w *WM) prevWin() {
	if w.current == nil || w.head.Next == nil {
		return
	}
	w.prevFocus = w.current
	w.updateCurrent(prevClient(w.head, w.prevFocus))
}

// moveDown swaps current with current.Next (wrapping to head), the
// pointer surgery ported line for line from the reference move_down.
func (w *WM) moveDown() {
	n := w.current.Next
	if n == nil {
		n = w.head
	}
	p := prevClient(w.head, w.current)
	if p == nil {
		return
	}

	if w.current == w.head {
		w.head = n
	} else {
		p.Next = w.current.Next
	}

	if w.current.Next != nil {
		w.current.Next = n.Next
	} else {
		w.current.Next = n
	}

	if w.current.Next == n.Next {
		n.Next = w.current
	} else {
		w.head = w.current
	}
	w.tile()
}

// moveUp swaps current with its predecessor (wrapping the head to the
// tail), the mirror image of moveDown.
func (w *WM) moveUp() {
	p := prevClient(w.head, w.current)
	if p == nil {
		return
	}
	var pp *Client
	if p.Next != nil {
		for pp = w.head; pp != nil && pp.Next != p; pp = pp.Next {
		}
	}

	if pp != nil {
		pp.Next = w.current
	} else if w.current == w.head {
		w.head = w.current.Next
	} else {
		w.head = w.current
	}

	if w.current.Next == w.head {
		p.Next = w.current
	} else {
		p.Next = w.current.Next
	}

	if w.current.Next == w.head {
		w.current.Next = nil
	} else {
		w.current.Next = p
	}
	w.tile()
}

// swapMaster exchanges current with the master client: if current is
// already master it trades with the next client, otherwise it walks up
// the list until it becomes the head.
func (w *WM) swapMaster() {
	if w.current == nil || w.head.Next == nil {
		return
	}
	if w.current == w.head {
		w.moveDown()
	} else {
		for w.current != w.head {
			w.moveUp()
		}
	}
	w.updateCurrent(w.head)
}
