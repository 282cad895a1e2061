package wm

import "github.com/tilewm/tilewm/internal/config"

// Rect is a window's position and size, the output of every layout
// function below.
type Rect struct {
	X, Y          int16
	Width, Height uint16
}

// placement pairs a client with the rectangle the layout engine assigns
// it. tile() applies these through the Display facade; layoutRects
// itself is a pure function so the arithmetic can be tested without an
// X connection.
type placement struct {
	client *Client
	rect   Rect
}

// layoutRects computes placements for every non-floating, non-
// fullscreen, non-transient client in the list headed by head, for the
// given mode within a region of height h starting at vertical offset y
// spanning the full screen width sw. It never touches floating,
// fullscreen or transient clients: those keep whatever geometry they
// already have.
func layoutRects(head *Client, mode config.Mode, sw uint16, h uint16, y int16, masterSize float64, growth int, borderWidth uint16) []placement {
	switch mode {
	case config.Monocle:
		return monocleRects(head, sw, h, y)
	case config.BStack:
		return stackRects(head, true, sw, h, y, masterSize, growth, borderWidth)
	case config.Grid:
		return gridRects(head, sw, h, y, borderWidth)
	default: // Tile
		return stackRects(head, false, sw, h, y, masterSize, growth, borderWidth)
	}
}

func monocleRects(head *Client, sw, h uint16, y int16) []placement {
	var out []placement
	for c := head; c != nil; c = c.Next {
		if isFFT(c) {
			continue
		}
		out = append(out, placement{c, Rect{0, y, sw, h}})
	}
	return out
}

func gridRects(head *Client, sw, h uint16, y int16, bw uint16) []placement {
	n := 0
	for c := head; c != nil; c = c.Next {
		if !isFFT(c) {
			n++
		}
	}
	if n == 0 {
		return nil
	}

	cols := 0
	for ; cols <= n/2; cols++ {
		if cols*cols >= n {
			break
		}
	}
	if n == 5 {
		cols = 2
	}
	if cols == 0 {
		cols = 1
	}

	rows := n / cols
	ch := int(h) - int(bw)
	cw := (int(sw) - int(bw)) / cols

	var out []placement
	i, cn, rn := -1, 0, 0
	for c := head; c != nil; c = c.Next {
		if isFFT(c) {
			continue
		}
		i++
		if i/rows+1 > cols-n%cols {
			rows = n/cols + 1
		}
		rect := Rect{
			X:      int16(cn * cw),
			Y:      y + int16(rn*ch/rows),
			Width:  uint16(cw - int(bw)),
			Height: uint16(ch/rows - int(bw)),
		}
		out = append(out, placement{c, rect})
		rn++
		if rn >= rows {
			rn = 0
			cn++
		}
	}
	return out
}

// stackRects implements both TILE (master on the left, stack on the
// right) and BSTACK (master on top, stack on the bottom), selected by
// bstack. The growth/remainder arithmetic absorbing the non-divisible
// remainder into the first stack client is ported exactly from the
// reference tiling function.
func stackRects(head *Client, bstack bool, sw, h uint16, y int16, masterSize float64, growth int, bw uint16) []placement {
	var master *Client
	n := 0
	for c := head; c != nil; c = c.Next {
		if isFFT(c) {
			continue
		}
		if master == nil {
			master = c
		} else {
			n++
		}
	}
	if master == nil {
		return nil
	}

	z := int(h)
	if bstack {
		z = int(sw)
	}
	var ma int
	if bstack {
		ma = int(float64(h) * masterSize)
	} else {
		ma = int(float64(sw) * masterSize)
	}

	var out []placement
	if n == 0 {
		out = append(out, placement{master, Rect{0, y, sw - 2*bw, h - 2*bw}})
		return out
	}

	d := 0
	if n > 1 {
		d = (z-growth)%n + growth
		z = (z - growth) / n
	}

	if bstack {
		out = append(out, placement{master, Rect{0, y, sw - 2*bw, uint16(ma) - bw}})
	} else {
		out = append(out, placement{master, Rect{0, y, uint16(ma) - bw, h - 2*bw}})
	}

	c := master.Next
	for c != nil && isFFT(c) {
		c = c.Next
	}
	if c == nil {
		return out
	}

	cx := ma
	if bstack {
		cx = 0
	}
	cw := int(sw) - 2*int(bw) - ma
	if bstack {
		cw = int(h) - 2*int(bw) - ma
	}
	ch := z - int(bw)

	cy := y
	if bstack {
		cy += int16(ma)
		out = append(out, placement{c, Rect{int16(cx), cy, uint16(ch - int(bw) + d), uint16(cw)}})
	} else {
		out = append(out, placement{c, Rect{int16(cx), cy, uint16(cw), uint16(ch - int(bw) + d)}})
	}

	if bstack {
		cx += ch + d
	} else {
		cy += int16(ch + d)
	}
	for c = c.Next; c != nil; c = c.Next {
		if isFFT(c) {
			continue
		}
		if bstack {
			out = append(out, placement{c, Rect{int16(cx), cy, uint16(ch), uint16(cw)}})
			cx += z
		} else {
			out = append(out, placement{c, Rect{int16(cx), cy, uint16(cw), uint16(ch)}})
			cy += int16(z)
		}
	}
	return out
}

// tile re-lays out the active desktop and pushes every resulting
// rectangle through the Display facade. A single-client desktop always
// uses MONOCLE regardless of the configured mode, matching the
// reference tile()'s layout[head->next ? mode : MONOCLE] dispatch.
func (w *WM) tile() {
	if w.head == nil || w.mode == config.Float {
		return
	}

	h := w.screenH
	if !w.showPanel {
		h += w.cfg.PanelHeight
	}
	var y int16
	if w.cfg.TopPanel && w.showPanel {
		y = int16(w.cfg.PanelHeight)
	}

	mode := w.mode
	if w.head.Next == nil {
		mode = config.Monocle
	}

	for _, p := range layoutRects(w.head, mode, w.screenW, h, y, w.masterSize, w.growth, w.cfg.BorderWidth) {
		w.x.MoveResize(p.client.Win, p.rect.X, p.rect.Y, p.rect.Width, p.rect.Height)
	}
}

// resizeMaster grows or shrinks the master area by pct percentage
// points; a change that would leave the configured bounds is ignored.
func (w *WM) resizeMaster(pct int) {
	msz := w.masterSize + float64(pct)/100
	if msz > config.MaxMasterSize || msz < config.MinMasterSize {
		return
	}
	w.masterSize = msz
	w.tile()
}

// resizeStack adjusts the first stack client's share of the remaining
// space by delta pixels. Unlike resizeMaster this has no explicit bound.
func (w *WM) resizeStack(delta int) {
	w.growth += delta
	w.tile()
}

// switchMode changes the active desktop's layout. Switching to the mode
// that is already active clears every client's floating flag, letting a
// user "reset" stray floats back into the tiling grid.
func (w *WM) switchMode(mode config.Mode) {
	if w.mode == mode {
		for c := w.head; c != nil; c = c.Next {
			c.IsFloating = false
		}
	}
	w.mode = mode
	w.tile()
	w.updateCurrent(w.current)
	w.publishStatus()
}
