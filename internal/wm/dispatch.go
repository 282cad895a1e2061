package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/config"
)

// Run is the main event loop: block for the next event or protocol
// error, dispatch it, repeat until Quit is called. It returns the exit
// code recorded by the most recent Quit.
func (w *WM) Run() int {
	w.grabKeys()
	w.changeDesktop(config.DefaultDesktop)
	w.publishStatus()

	for w.running {
		ev, xerr, ok := w.x.NextEvent()
		if !ok {
			break
		}
		if xerr != nil {
			w.logXError(xerr)
			continue
		}
		w.dispatch(ev)
	}
	return w.exitCode
}

// Quit stops Run after the in-flight event finishes processing.
func (w *WM) Quit(code int) {
	w.exitCode = code
	w.running = false
}

func (w *WM) dispatch(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		w.onMapRequest(e)
	case xproto.ConfigureRequestEvent:
		w.onConfigureRequest(e)
	case xproto.DestroyNotifyEvent:
		w.onDestroyNotify(e)
	case xproto.UnmapNotifyEvent:
		w.onUnmapNotify(e)
	case xproto.ClientMessageEvent:
		w.onClientMessage(e)
	case xproto.PropertyNotifyEvent:
		w.onPropertyNotify(e)
	case xproto.EnterNotifyEvent:
		w.onEnterNotify(e)
	case xproto.FocusInEvent:
		w.onFocusIn(e)
	case xproto.KeyPressEvent:
		w.onKeyPress(e)
	case xproto.ButtonPressEvent:
		w.onButtonPress(e)
	case xproto.ButtonReleaseEvent:
		w.onButtonRelease(e)
	case xproto.MotionNotifyEvent:
		w.onMotionNotify(e)
	}
}

// onMapRequest manages a newly mapped window: skips override-redirect
// windows and windows already managed, applies the first matching app
// rule, and makes the new client current when it lands on the active
// desktop or the rule follows it; otherwise it stays unmapped on its
// target desktop.
func (w *WM) onMapRequest(e xproto.MapRequestEvent) {
	if w.x.IsOverrideRedirect(e.Window) {
		return
	}
	if w.wintoclient(e.Window) != nil {
		return
	}

	follow, floating, newDesktop := w.matchRule(e.Window)
	cd := w.currentDesktop

	if cd != newDesktop {
		w.selectDesktop(newDesktop)
	}
	c := w.addWindow(e.Window)
	if tr, ok := w.x.GetTransientFor(e.Window); ok && tr != 0 {
		c.IsTransient = true
	}
	c.IsFloating = floating || c.IsTransient
	if w.x.IsFullscreenState(e.Window) {
		w.setFullscreen(c, true)
	}
	if cd != newDesktop {
		w.selectDesktop(cd)
	}

	if cd == newDesktop {
		w.tile()
		w.x.Map(c.Win)
		w.updateCurrent(c)
	} else if follow {
		w.changeDesktop(newDesktop)
		w.updateCurrent(c)
	}
	w.grabClientButtons(c)
	w.publishStatus()
}

// matchRule finds the first app rule whose Class substring matches
// win's WM_CLASS class or instance component.
func (w *WM) matchRule(win xproto.Window) (follow, floating bool, desktop int) {
	desktop = w.currentDesktop
	class, instance := w.x.GetClassHint(win)
	for _, r := range config.Rules {
		if containsClass(class, r.Class) || containsClass(instance, r.Class) {
			follow = r.Follow
			floating = r.Floating
			if r.Desktop >= 0 {
				desktop = r.Desktop
			}
			return
		}
	}
	return
}

// containsClass does a case-sensitive substring match, as strstr does,
// except that an empty needle or haystack never matches.
func containsClass(haystack, needle string) bool {
	if needle == "" || haystack == "" {
		return false
	}
	return indexOf(haystack, needle) >= 0
}

func indexOf(s, substr string) int {
	n, m := len(s), len(substr)
	if m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == substr {
			return i
		}
	}
	return -1
}

// onConfigureRequest honors a client's requested geometry unless it is
// fullscreen, in which case the request is discarded and the fullscreen
// geometry reasserted. Either way the desktop is re-tiled afterward so
// the change doesn't leave gaps.
func (w *WM) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	c := w.wintoclient(e.Window)
	if c == nil || !c.IsFullscreen {
		w.x.ConfigureRaw(e.Window, e.ValueMask, configureValues(e))
	} else {
		w.setFullscreen(c, true)
	}
	w.tile()
}

func configureValues(e xproto.ConfigureRequestEvent) []uint32 {
	var values []uint32
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(e.StackMode))
	}
	return values
}

func (w *WM) onDestroyNotify(e xproto.DestroyNotifyEvent) {
	if c := w.wintoclient(e.Window); c != nil {
		w.removeClient(c)
	}
	w.publishStatus()
}

func (w *WM) onUnmapNotify(e xproto.UnmapNotifyEvent) {
	if w.x.ConsumeSelfUnmap(e.Window) {
		return
	}
	if c := w.wintoclient(e.Window); c != nil {
		w.removeClient(c)
	}
	w.publishStatus()
}

// onClientMessage handles _NET_WM_STATE requests to toggle fullscreen.
// Other message types fall through to the harmless unconditional re-tile
// at the end.
func (w *WM) onClientMessage(e xproto.ClientMessageEvent) {
	c := w.wintoclient(e.Window)
	if c != nil {
		action := e.Data.Data32[0]
		prop1, prop2 := e.Data.Data32[1], e.Data.Data32[2]
		const fullscreenAdd, fullscreenToggle = 1, 2
		isFullscreenReq := w.x.IsFullscreenAtom(prop1) || w.x.IsFullscreenAtom(prop2)
		if isFullscreenReq {
			want := action == fullscreenAdd || (action == fullscreenToggle && !c.IsFullscreen)
			w.setFullscreen(c, want)
		}
	}
	w.tile()
}

func (w *WM) onPropertyNotify(e xproto.PropertyNotifyEvent) {
	c := w.wintoclient(e.Window)
	if c == nil {
		return
	}
	c.IsUrgent = c != w.current && w.x.IsUrgent(e.Window)
	w.publishStatus()
}

func (w *WM) onEnterNotify(e xproto.EnterNotifyEvent) {
	if !w.cfg.FollowMouse {
		return
	}
	if e.Mode != xproto.NotifyModeNormal || e.Detail == xproto.NotifyDetailInferior {
		return
	}
	if c := w.wintoclient(e.Event); c != nil {
		w.updateCurrent(c)
	}
}

func (w *WM) onFocusIn(e xproto.FocusInEvent) {
	if w.current != nil && w.current.Win != e.Event {
		w.updateCurrent(w.current)
	}
}

// setFullscreen sets or clears a client's fullscreen state, resizing it
// to cover the whole screen (panel included) whenever on is true and
// setting its border width to match.
func (w *WM) setFullscreen(c *Client, on bool) {
	if on != c.IsFullscreen {
		c.IsFullscreen = on
		w.x.SetFullscreenState(c.Win, on)
	}
	if on {
		w.x.MoveResize(c.Win, 0, 0, w.screenW, w.screenH+w.cfg.PanelHeight)
	}
	w.x.SetBorderWidth(c.Win, borderWidthFor(on, w.cfg.BorderWidth))
}

func borderWidthFor(fullscreen bool, bw uint16) uint16 {
	if fullscreen {
		return 0
	}
	return bw
}

// killClient asks the current client to close via WM_DELETE_WINDOW if
// it supports that protocol, otherwise kills its connection outright.
func (w *WM) killClient() {
	if w.current == nil {
		return
	}
	if w.x.HasProtocol(w.current.Win, "WM_DELETE_WINDOW") {
		w.x.SendDelete(w.current.Win)
	} else {
		w.x.KillClient(w.current.Win)
	}
	w.removeClient(w.current)
}
