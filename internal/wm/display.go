package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Display is everything the WM core needs from the X server. It is
// satisfied by *xdisplay.Display; tests satisfy it with fakeDisplay so
// layout, focus and client-list logic run without a real X connection.
type Display interface {
	NextEvent() (xgb.Event, xgb.Error, bool)

	NumLockMask() uint16
	RootWindow() xproto.Window
	ScreenSize() (uint16, uint16)

	GrabKey(keycode xproto.Keycode, mods uint16)
	UngrabAllKeys()
	GrabButton(win xproto.Window, button xproto.Button, mods uint16)
	UngrabButton(win xproto.Window, button xproto.Button)
	KeycodeForKeysym(sym xproto.Keysym) (xproto.Keycode, bool)

	GrabPointerForDrag(cursor xproto.Cursor) error
	UngrabPointer()
	QueryPointer() (x, y int16, err error)
	WarpPointer(win xproto.Window, x, y int16)

	IsOverrideRedirect(win xproto.Window) bool
	IsMapped(win xproto.Window) bool
	GetGeometry(win xproto.Window) (x, y int16, w, h uint16, err error)
	GetClassHint(win xproto.Window) (class, instance string)
	GetTransientFor(win xproto.Window) (xproto.Window, bool)
	HasProtocol(win xproto.Window, name string) bool
	IsUrgent(win xproto.Window) bool
	IsFullscreenState(win xproto.Window) bool
	IsFullscreenAtom(a uint32) bool
	QueryTree() ([]xproto.Window, error)

	SelectClientEvents(win xproto.Window)
	MoveResize(win xproto.Window, x, y int16, w, h uint16)
	ConfigureRaw(win xproto.Window, mask uint16, values []uint32)
	SetBorderWidth(win xproto.Window, width uint16)
	SetBorderColor(win xproto.Window, focused bool)
	Map(win xproto.Window)
	Unmap(win xproto.Window)
	ConsumeSelfUnmap(win xproto.Window) bool
	Restack(order []xproto.Window)
	SetInputFocus(win xproto.Window)
	SetActiveWindow(win xproto.Window)
	ClearActiveWindow()
	SetFullscreenState(win xproto.Window, on bool)
	SendDelete(win xproto.Window)
	KillClient(win xproto.Window)
}
