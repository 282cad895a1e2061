package xdisplay

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// SelectClientEvents asks to be told about a managed client's property
// changes, pointer entry, focus changes and structure changes.
func (d *Display) SelectClientEvents(win xproto.Window) {
	mask := xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
		xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	xproto.ChangeWindowAttributes(d.Conn(), win, xproto.CwEventMask, []uint32{uint32(mask)})
}

// MoveResize sets a window's position and size in one request.
func (d *Display) MoveResize(win xproto.Window, x, y int16, w, h uint16) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(x), uint32(y), uint32(w), uint32(h)}
	xproto.ConfigureWindow(d.Conn(), win, mask, values)
}

// ConfigureRaw forwards an unmodified, or minimally modified,
// ConfigureRequest back to the client: used for every window that is
// not fullscreen (managed or not) before the desktop is re-tiled.
func (d *Display) ConfigureRaw(win xproto.Window, mask uint16, values []uint32) {
	xproto.ConfigureWindow(d.Conn(), win, mask, values)
}

// SetBorderWidth sets a window's border width in pixels.
func (d *Display) SetBorderWidth(win xproto.Window, width uint16) {
	xproto.ConfigureWindow(d.Conn(), win, xproto.ConfigWindowBorderWidth,
		[]uint32{uint32(width)})
}

// SetBorderColor paints a window's border focused or unfocused.
func (d *Display) SetBorderColor(win xproto.Window, focused bool) {
	color := uint32(unfocusColor)
	if focused {
		color = focusColor
	}
	xproto.ChangeWindowAttributes(d.Conn(), win, xproto.CwBorderPixel, []uint32{color})
}

// Colors are set from internal/config right after Open via SetColors
// so xdisplay does not import internal/config directly.
var (
	focusColor   uint32 = 0x5f87ff
	unfocusColor uint32 = 0x444444
)

// SetColors overrides the default border colors used by SetBorderColor.
func (d *Display) SetColors(focused, unfocused uint32) {
	focusColor = focused
	unfocusColor = unfocused
}

// Map shows a window.
func (d *Display) Map(win xproto.Window) { xproto.MapWindow(d.Conn(), win) }

// Unmap hides a window. It is also how tilewm tells onUnmapNotify that
// the resulting event was self-inflicted rather than a client asking to
// be withdrawn: see ConsumeSelfUnmap.
func (d *Display) Unmap(win xproto.Window) {
	d.selfUnmapped[win]++
	xproto.UnmapWindow(d.Conn(), win)
}

// ConsumeSelfUnmap reports whether win has a pending self-inflicted
// unmap recorded by Unmap, consuming one if so. BurntSushi/xgb's public
// event decoders discard the wire protocol's "sent via SendEvent" bit
// of the response-type byte before constructing a typed Event (the
// opcode used to pick a decoder is already masked to the low 7 bits,
// and none of the generated event structs carry the high bit back out),
// so tilewm cannot tell a genuine UnmapNotify from a synthetic one the
// way ICCCM withdrawal expects. Tracking its own Unmap calls is the
// available substitute: any UnmapNotify this doesn't account for came
// from the client itself, not from a tilewm-issued unmap.
func (d *Display) ConsumeSelfUnmap(win xproto.Window) bool {
	if d.selfUnmapped[win] <= 0 {
		return false
	}
	d.selfUnmapped[win]--
	if d.selfUnmapped[win] == 0 {
		delete(d.selfUnmapped, win)
	}
	return true
}

// WarpPointer moves the pointer to (x, y) relative to win's origin,
// used to anchor a resize drag at the window's bottom-right corner.
func (d *Display) WarpPointer(win xproto.Window, x, y int16) {
	xproto.WarpPointer(d.Conn(), xproto.WindowNone, win, 0, 0, 0, 0, x, y)
}

// Restack places windows in the stacking order of the slice, top to
// bottom: the first window ends up topmost.
func (d *Display) Restack(order []xproto.Window) {
	if len(order) == 0 {
		return
	}
	xproto.RestackWindows(d.Conn(), order)
}

// SetInputFocus gives a window the input focus.
func (d *Display) SetInputFocus(win xproto.Window) {
	xproto.SetInputFocus(d.Conn(), xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

// SetActiveWindow sets _NET_ACTIVE_WINDOW on the root window.
func (d *Display) SetActiveWindow(win xproto.Window) {
	ewmh.ActiveWindowSet(d.xu, win)
}

// ClearActiveWindow removes _NET_ACTIVE_WINDOW, done when no client
// holds focus (empty desktop).
func (d *Display) ClearActiveWindow() {
	xproto.DeleteProperty(d.Conn(), d.root, d.netActiveWin)
}

// SetFullscreenState sets or clears _NET_WM_STATE_FULLSCREEN.
func (d *Display) SetFullscreenState(win xproto.Window, on bool) {
	if on {
		ewmh.WmStateSet(d.xu, win, []string{"_NET_WM_STATE_FULLSCREEN"})
	} else {
		ewmh.WmStateSet(d.xu, win, nil)
	}
}

// SendDelete asks a client to close itself via the WM_DELETE_WINDOW
// protocol message.
func (d *Display) SendDelete(win xproto.Window) {
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   d.wmProtocols,
		Data: xproto.ClientMessageDataUnion{
			Data32: [5]uint32{uint32(d.wmDeleteWindow), uint32(xproto.TimeCurrentTime), 0, 0, 0},
		},
	}
	xproto.SendEvent(d.Conn(), false, win, xproto.EventMaskNoEvent, string(ev.Bytes()))
}

// KillClient forcibly destroys a client's connection, used when it does
// not speak WM_DELETE_WINDOW.
func (d *Display) KillClient(win xproto.Window) {
	xproto.KillClient(d.Conn(), uint32(win))
}
