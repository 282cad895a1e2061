package wm

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/config"
)

// grabKeys releases every key grab on the root window and re-grabs the
// compile-time binding table, skipping any keysym the current keyboard
// layout cannot produce (the reference grabkeys silently skips those
// too, since XKeysymToKeycode returns 0 for them).
func (w *WM) grabKeys() {
	w.x.UngrabAllKeys()
	for _, k := range config.Keys {
		code, ok := w.x.KeycodeForKeysym(k.Keysym)
		if !ok {
			continue
		}
		w.x.GrabKey(code, k.Mod)
	}
}

// grabClientButtons arms the compile-time button bindings on a freshly
// managed client.
func (w *WM) grabClientButtons(c *Client) {
	for _, b := range config.Buttons {
		w.x.GrabButton(c.Win, b.Button, b.Mod)
	}
}

// cleanMask strips the NumLock and CapsLock (Lock) bits and the pointer
// button state bits, keeping only Shift, Control and Mod1-Mod5, so a
// binding registered for, say, Mod4 matches regardless of whether
// NumLock or CapsLock happens to be on (the grabs already cover every
// lock combination).
const allModMask = xproto.ModMaskShift | xproto.ModMaskControl |
	xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 |
	xproto.ModMask4 | xproto.ModMask5

func (w *WM) cleanMask(mods uint16) uint16 {
	return mods &^ (w.x.NumLockMask() | xproto.ModMaskLock) & uint16(allModMask)
}

func (w *WM) onKeyPress(e xproto.KeyPressEvent) {
	for _, k := range config.Keys {
		kc, ok := w.x.KeycodeForKeysym(k.Keysym)
		if !ok || kc != e.Detail {
			continue
		}
		if w.cleanMask(k.Mod) != w.cleanMask(uint16(e.State)) {
			continue
		}
		w.runAction(k.Action, k.Arg)
		return
	}
}

func (w *WM) onButtonPress(e xproto.ButtonPressEvent) {
	c := w.wintoclient(e.Event)
	if c == nil {
		return
	}
	if w.cfg.ClickToFocus && w.current != c && e.Detail == xproto.Button(1) {
		w.updateCurrent(c)
	}
	for _, b := range config.Buttons {
		if b.Button != e.Detail || w.cleanMask(b.Mod) != w.cleanMask(uint16(e.State)) {
			continue
		}
		if w.current != c {
			w.updateCurrent(c)
		}
		w.runAction(b.Action, b.Arg)
	}
}

// runAction maps a compile-time ActionID, plus its associated argument,
// to the WM method it invokes. This is the indirection that lets
// internal/config hold pure data without importing internal/wm.
func (w *WM) runAction(id config.ActionID, arg interface{}) {
	switch id {
	case config.ActionSpawn:
		if argv, ok := arg.([]string); ok {
			w.spawn(argv)
		}
	case config.ActionKillClient:
		w.killClient()
	case config.ActionQuit:
		code, _ := arg.(int)
		w.Quit(code)
	case config.ActionNextWindow:
		w.nextWin()
	case config.ActionPrevWindow:
		w.prevWin()
	case config.ActionMoveUp:
		if w.current != nil {
			w.moveUp()
		}
	case config.ActionMoveDown:
		if w.current != nil {
			w.moveDown()
		}
	case config.ActionSwapMaster:
		w.swapMaster()
	case config.ActionToggleFloating:
		if w.current != nil {
			w.current.IsFloating = !w.current.IsFloating
			w.tile()
			w.updateCurrent(w.current)
		}
	case config.ActionToggleFullscreen:
		if w.current != nil {
			w.setFullscreen(w.current, !w.current.IsFullscreen)
			w.tile()
		}
	case config.ActionSwitchMode:
		if mode, ok := arg.(config.Mode); ok {
			w.switchMode(mode)
		}
	case config.ActionResizeMaster:
		if pct, ok := arg.(int); ok {
			w.resizeMaster(pct)
		}
	case config.ActionResizeStack:
		if delta, ok := arg.(int); ok {
			w.resizeStack(delta)
		}
	case config.ActionChangeDesktop:
		if i, ok := arg.(int); ok {
			w.changeDesktop(i)
		}
	case config.ActionLastDesktop:
		w.lastDesktop()
	case config.ActionRotateDesktop:
		if dir, ok := arg.(config.Traversal); ok {
			w.rotateDesktop(dir)
		}
	case config.ActionRotateFilledDesktop:
		if dir, ok := arg.(config.Traversal); ok {
			w.rotateFilledDesktop(dir)
		}
	case config.ActionClientToDesktop:
		if i, ok := arg.(int); ok {
			w.clientToDesktop(i)
		}
	case config.ActionTogglePanel:
		w.togglePanel()
	case config.ActionFocusUrgent:
		w.focusUrgent()
	case config.ActionMoveDrag:
		w.startDrag(dragMove)
	case config.ActionResizeDrag:
		w.startDrag(dragResize)
	}
}
