package xdisplay

import "github.com/BurntSushi/xgb/xproto"

// lockCombos returns the four modifier masks that CapsLock and NumLock
// can add on top of a binding's real modifiers: none, CapsLock alone,
// NumLock alone, and both together. A binding has to be grabbed under
// all four or a lock key held down silently defeats it.
func (d *Display) lockCombos() [4]uint16 {
	return [4]uint16{
		0,
		xproto.ModMaskLock,
		d.numlockMask,
		xproto.ModMaskLock | d.numlockMask,
	}
}

// NumLockMask returns the modifier bit the server currently assigns to
// NumLock, discovered once at startup.
func (d *Display) NumLockMask() uint16 { return d.numlockMask }

// GrabKey grabs a key on the root window under mods and every lock-key
// combination on top of it.
func (d *Display) GrabKey(keycode xproto.Keycode, mods uint16) {
	for _, lock := range d.lockCombos() {
		xproto.GrabKey(d.Conn(), true, d.root, mods|lock, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}

// UngrabAllKeys releases every key grab tilewm holds on the root window.
func (d *Display) UngrabAllKeys() {
	xproto.UngrabKey(d.Conn(), xproto.GrabAny, d.root, xproto.ModMaskAny)
}

// GrabButton grabs a pointer button on win under mods and every lock-key
// combination, used both for bound drag buttons and for click-to-focus.
func (d *Display) GrabButton(win xproto.Window, button xproto.Button, mods uint16) {
	evMask := uint16(xproto.EventMaskButtonPress)
	for _, lock := range d.lockCombos() {
		xproto.GrabButton(d.Conn(), false, win, evMask,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			xproto.WindowNone, xproto.CursorNone, byte(button), mods|lock)
	}
}

// UngrabButton releases every grab of button held on win.
func (d *Display) UngrabButton(win xproto.Window, button xproto.Button) {
	xproto.UngrabButton(d.Conn(), byte(button), win, xproto.ModMaskAny)
}

// GrabPointerForDrag takes an active pointer grab for the duration of a
// move/resize session, confined to no window so the pointer can cross
// client boundaries freely.
func (d *Display) GrabPointerForDrag(cursor xproto.Cursor) error {
	mask := uint16(xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)
	reply, err := xproto.GrabPointer(d.Conn(), false, d.root, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return err
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return errGrabFailed
	}
	return nil
}

// UngrabPointer releases the drag-session pointer grab.
func (d *Display) UngrabPointer() {
	xproto.UngrabPointer(d.Conn(), xproto.TimeCurrentTime)
}

type grabError string

func (e grabError) Error() string { return string(e) }

const errGrabFailed = grabError("xdisplay: pointer grab failed")
