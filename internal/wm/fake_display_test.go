package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// fakeDisplay is a minimal in-memory stand-in for *xdisplay.Display,
// just enough of the Display interface to drive client-list, layout
// and focus logic without a real X connection.
type fakeDisplay struct {
	screenW, screenH uint16
	numlock          uint16

	geometry map[xproto.Window]Rect
	mapped   map[xproto.Window]bool
	class    map[xproto.Window][2]string
	urgent   map[xproto.Window]bool
	restacks [][]xproto.Window
	focused  xproto.Window
	active   xproto.Window
	cleared  bool

	selfUnmapped map[xproto.Window]int
}

// fullscreenAtomTestValue stands in for the interned _NET_WM_STATE_FULLSCREEN
// atom id in tests, which have no real X connection to intern one from.
const fullscreenAtomTestValue = 0xF5

func newFakeDisplay(w, h uint16) *fakeDisplay {
	return &fakeDisplay{
		screenW:  w,
		screenH:  h,
		geometry: make(map[xproto.Window]Rect),
		mapped:   make(map[xproto.Window]bool),
		class:    make(map[xproto.Window][2]string),
		urgent:   make(map[xproto.Window]bool),

		selfUnmapped: make(map[xproto.Window]int),
	}
}

func (f *fakeDisplay) NextEvent() (xgb.Event, xgb.Error, bool) { return nil, nil, false }
func (f *fakeDisplay) NumLockMask() uint16                     { return f.numlock }
func (f *fakeDisplay) RootWindow() xproto.Window                { return 1 }
func (f *fakeDisplay) ScreenSize() (uint16, uint16)             { return f.screenW, f.screenH }

func (f *fakeDisplay) GrabKey(xproto.Keycode, uint16)                 {}
func (f *fakeDisplay) UngrabAllKeys()                                 {}
func (f *fakeDisplay) GrabButton(xproto.Window, xproto.Button, uint16) {}
func (f *fakeDisplay) UngrabButton(xproto.Window, xproto.Button)       {}
func (f *fakeDisplay) KeycodeForKeysym(sym xproto.Keysym) (xproto.Keycode, bool) {
	if sym >= 'a' && sym <= 'z' {
		return xproto.Keycode(sym), true
	}
	return 0, false
}

func (f *fakeDisplay) GrabPointerForDrag(xproto.Cursor) error { return nil }
func (f *fakeDisplay) UngrabPointer()                         {}
func (f *fakeDisplay) QueryPointer() (int16, int16, error)    { return 0, 0, nil }
func (f *fakeDisplay) WarpPointer(xproto.Window, int16, int16) {}

func (f *fakeDisplay) IsOverrideRedirect(xproto.Window) bool { return false }
func (f *fakeDisplay) IsMapped(win xproto.Window) bool       { return f.mapped[win] }
func (f *fakeDisplay) GetGeometry(win xproto.Window) (int16, int16, uint16, uint16, error) {
	r := f.geometry[win]
	return r.X, r.Y, r.Width, r.Height, nil
}
func (f *fakeDisplay) GetClassHint(win xproto.Window) (string, string) {
	c := f.class[win]
	return c[0], c[1]
}
func (f *fakeDisplay) GetTransientFor(xproto.Window) (xproto.Window, bool) { return 0, false }
func (f *fakeDisplay) HasProtocol(xproto.Window, string) bool              { return true }
func (f *fakeDisplay) IsUrgent(win xproto.Window) bool                     { return f.urgent[win] }
func (f *fakeDisplay) IsFullscreenState(xproto.Window) bool                { return false }
func (f *fakeDisplay) IsFullscreenAtom(a uint32) bool                      { return a == fullscreenAtomTestValue }
func (f *fakeDisplay) QueryTree() ([]xproto.Window, error)                 { return nil, nil }

func (f *fakeDisplay) SelectClientEvents(xproto.Window) {}
func (f *fakeDisplay) MoveResize(win xproto.Window, x, y int16, w, h uint16) {
	f.geometry[win] = Rect{x, y, w, h}
}
func (f *fakeDisplay) ConfigureRaw(xproto.Window, uint16, []uint32) {}
func (f *fakeDisplay) SetBorderWidth(xproto.Window, uint16)         {}
func (f *fakeDisplay) SetBorderColor(xproto.Window, bool)           {}
func (f *fakeDisplay) Map(win xproto.Window) { f.mapped[win] = true }
func (f *fakeDisplay) Unmap(win xproto.Window) {
	f.mapped[win] = false
	f.selfUnmapped[win]++
}
func (f *fakeDisplay) ConsumeSelfUnmap(win xproto.Window) bool {
	if f.selfUnmapped[win] <= 0 {
		return false
	}
	f.selfUnmapped[win]--
	if f.selfUnmapped[win] == 0 {
		delete(f.selfUnmapped, win)
	}
	return true
}
func (f *fakeDisplay) Restack(order []xproto.Window) {
	cp := append([]xproto.Window(nil), order...)
	f.restacks = append(f.restacks, cp)
}
func (f *fakeDisplay) SetInputFocus(win xproto.Window)   { f.focused = win }
func (f *fakeDisplay) SetActiveWindow(win xproto.Window) { f.active = win }
func (f *fakeDisplay) ClearActiveWindow()                { f.cleared = true }
func (f *fakeDisplay) SetFullscreenState(xproto.Window, bool) {}
func (f *fakeDisplay) SendDelete(xproto.Window)                {}
func (f *fakeDisplay) KillClient(xproto.Window)                {}
