package xdisplay

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// rootEventMask is what a window manager asks the server to redirect to
// it instead of to the clients themselves. SubstructureRedirect is what
// makes this process the window manager; the request fails with a
// BadAccess error if one is already running, which is how becomeWM
// detects that condition.
const rootEventMask = xproto.EventMaskSubstructureRedirect |
	xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskPropertyChange

func (d *Display) becomeWM() error {
	cookie := xproto.ChangeWindowAttributesChecked(d.Conn(), d.root, xproto.CwEventMask,
		[]uint32{uint32(rootEventMask)})
	if err := cookie.Check(); err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return fmt.Errorf("xdisplay: another window manager is already running")
		}
		return fmt.Errorf("xdisplay: selecting root events: %w", err)
	}
	return nil
}

// internAtoms interns the handful of atoms tilewm uses by id (building
// WM_DELETE_WINDOW messages, deleting _NET_ACTIVE_WINDOW, recognising
// the fullscreen atom in client messages) and advertises
// _NET_SUPPORTED; everything else that is atom-shaped (WM_CLASS,
// WM_HINTS, WM_TRANSIENT_FOR, _NET_WM_STATE, ...) is read and written
// through the icccm/ewmh helpers in query.go and mutate.go instead.
func (d *Display) internAtoms() error {
	var err error
	if d.wmProtocols, err = d.internAtom("WM_PROTOCOLS"); err != nil {
		return err
	}
	if d.wmDeleteWindow, err = d.internAtom("WM_DELETE_WINDOW"); err != nil {
		return err
	}
	if d.netActiveWin, err = d.internAtom("_NET_ACTIVE_WINDOW"); err != nil {
		return err
	}
	if d.netWmStateFullscreen, err = d.internAtom("_NET_WM_STATE_FULLSCREEN"); err != nil {
		return err
	}

	supported := []string{
		"_NET_SUPPORTED",
		"_NET_ACTIVE_WINDOW",
		"_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_CLIENT_LIST",
		"_NET_NUMBER_OF_DESKTOPS",
		"_NET_CURRENT_DESKTOP",
		"_NET_WM_DESKTOP",
	}
	if err := ewmh.SupportedSet(d.xu, supported); err != nil {
		return fmt.Errorf("xdisplay: advertising _NET_SUPPORTED: %w", err)
	}
	return nil
}

func (d *Display) internAtom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(d.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("xdisplay: intern %s: %w", name, err)
	}
	return reply.Atom, nil
}
