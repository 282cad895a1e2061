package xdisplay

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// IsOverrideRedirect reports whether a window asked never to be managed.
func (d *Display) IsOverrideRedirect(win xproto.Window) bool {
	attr, err := xproto.GetWindowAttributes(d.Conn(), win).Reply()
	if err != nil {
		return false
	}
	return attr.OverrideRedirect
}

// IsMapped reports whether a window is currently viewable.
func (d *Display) IsMapped(win xproto.Window) bool {
	attr, err := xproto.GetWindowAttributes(d.Conn(), win).Reply()
	if err != nil {
		return false
	}
	return attr.MapState != xproto.MapStateUnmapped
}

// GetGeometry returns a window's current position and size.
func (d *Display) GetGeometry(win xproto.Window) (x, y int16, w, h uint16, err error) {
	g, err := xproto.GetGeometry(d.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return g.X, g.Y, g.Width, g.Height, nil
}

// GetClassHint returns a window's WM_CLASS class and instance strings,
// empty when the property is absent.
func (d *Display) GetClassHint(win xproto.Window) (class, instance string) {
	hint, err := icccm.WmClassGet(d.xu, win)
	if err != nil || hint == nil {
		return "", ""
	}
	return hint.Class, hint.Instance
}

// GetTransientFor returns the window named by WM_TRANSIENT_FOR, if any.
func (d *Display) GetTransientFor(win xproto.Window) (xproto.Window, bool) {
	for_, err := icccm.WmTransientForGet(d.xu, win)
	if err != nil {
		return 0, false
	}
	return for_, true
}

// HasProtocol reports whether name (e.g. "WM_DELETE_WINDOW") is listed
// in a window's WM_PROTOCOLS property.
func (d *Display) HasProtocol(win xproto.Window, name string) bool {
	protos, err := icccm.WmProtocolsGet(d.xu, win)
	if err != nil {
		return false
	}
	for _, p := range protos {
		if p == name {
			return true
		}
	}
	return false
}

// IsUrgent reports whether a window's WM_HINTS urgency bit is set.
func (d *Display) IsUrgent(win xproto.Window) bool {
	hints, err := icccm.WmHintsGet(d.xu, win)
	if err != nil || hints == nil {
		return false
	}
	return hints.Flags&icccm.HintUrgency > 0
}

// IsFullscreenState reports whether _NET_WM_STATE already lists
// _NET_WM_STATE_FULLSCREEN, which happens when a client requests
// fullscreen itself rather than through a tilewm binding.
func (d *Display) IsFullscreenState(win xproto.Window) bool {
	states, err := ewmh.WmStateGet(d.xu, win)
	if err != nil {
		return false
	}
	for _, s := range states {
		if s == "_NET_WM_STATE_FULLSCREEN" {
			return true
		}
	}
	return false
}

// IsFullscreenAtom reports whether a (uint32 as carried in a ClientMessage
// event's data words) identifies the interned _NET_WM_STATE_FULLSCREEN atom.
func (d *Display) IsFullscreenAtom(a uint32) bool {
	return xproto.Atom(a) == d.netWmStateFullscreen
}

// QueryTree returns the root window's current children, bottom to top.
func (d *Display) QueryTree() ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(d.Conn(), d.root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// QueryPointer returns the pointer's current root-relative coordinates.
func (d *Display) QueryPointer() (x, y int16, err error) {
	reply, err := xproto.QueryPointer(d.Conn(), d.root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return reply.RootX, reply.RootY, nil
}
