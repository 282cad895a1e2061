// Package xdisplay is the Display Facade: the only package that speaks
// the X11 wire protocol. Everything else in tilewm calls methods on
// *Display instead of touching xgb/xgbutil directly, so the windowing
// logic in internal/wm can be tested against a fake implementation of
// the same interface.
package xdisplay

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
)

// Display owns the single X connection and every primitive the rest of
// tilewm needs: connection setup, atom interning, grabs, geometry
// queries and mutation, and one-event-at-a-time delivery.
type Display struct {
	xu   *xgbutil.XUtil
	root xproto.Window

	screenW uint16
	screenH uint16

	wmProtocols          xproto.Atom
	wmDeleteWindow       xproto.Atom
	netActiveWin         xproto.Atom
	netWmStateFullscreen xproto.Atom

	numlockMask uint16
	keymap      keymap

	// selfUnmapped counts Unmap calls tilewm issued itself (desktop
	// switches, client_to_desktop) that have not yet been observed as
	// their own UnmapNotify event. onUnmapNotify consumes one entry per
	// matching event so those WM-initiated unmaps are never mistaken for
	// a client withdrawing itself. Both the increment (Unmap) and the
	// consume (ConsumeSelfUnmap) happen on the single event-loop
	// goroutine, so this needs no locking.
	selfUnmapped map[xproto.Window]int

	eventc chan eventOrError
}

type eventOrError struct {
	event xgb.Event
	err   xgb.Error
}

// Open connects to the X server named by the DISPLAY environment
// variable, claims substructure redirection on the root window (failing
// fatally if another window manager already holds it), and primes atom
// caches and the NumLock modifier bit.
func Open() (*Display, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("xdisplay: connect: %w", err)
	}

	d := &Display{
		xu:           xu,
		root:         xu.RootWin(),
		selfUnmapped: make(map[xproto.Window]int),
		eventc:       make(chan eventOrError),
	}

	setup := xproto.Setup(xu.Conn())
	screen := setup.DefaultScreen(xu.Conn())
	d.screenW = screen.WidthInPixels
	d.screenH = screen.HeightInPixels

	if err := d.becomeWM(); err != nil {
		return nil, err
	}

	if err := d.internAtoms(); err != nil {
		return nil, err
	}
	if err := d.loadKeyboardMapping(); err != nil {
		return nil, err
	}

	keybind.Initialize(xu)
	mousebind.Initialize(xu)
	d.numlockMask = keybind.NumLockMod(xu)

	go d.pump()
	return d, nil
}

// pump forwards every event or error the connection produces onto
// eventc, one at a time, so the WM's single-threaded dispatch loop has
// exactly one blocking read to make per iteration.
func (d *Display) pump() {
	for {
		ev, err := d.xu.Conn().WaitForEvent()
		if ev == nil && err == nil {
			close(d.eventc)
			return
		}
		var xerr xgb.Error
		if err != nil {
			if e, ok := err.(xgb.Error); ok {
				xerr = e
			}
		}
		d.eventc <- eventOrError{event: ev, err: xerr}
	}
}

// NextEvent blocks until the next X event or protocol error arrives.
// It returns (nil, nil, false) once the connection is closed.
func (d *Display) NextEvent() (xgb.Event, xgb.Error, bool) {
	ee, ok := <-d.eventc
	if !ok {
		return nil, nil, false
	}
	return ee.event, ee.err, true
}

// RootWindow returns the screen's root window.
func (d *Display) RootWindow() xproto.Window { return d.root }

// ScreenSize returns the default screen's pixel dimensions.
func (d *Display) ScreenSize() (uint16, uint16) { return d.screenW, d.screenH }

// Conn exposes the underlying connection for the handful of callers
// (grab.go, query.go, mutate.go) that issue raw xproto requests.
func (d *Display) Conn() *xgb.Conn { return d.xu.Conn() }

// XUtil exposes the xgbutil handle for the icccm/ewmh/keybind/mousebind
// helpers that need it.
func (d *Display) XUtil() *xgbutil.XUtil { return d.xu }

// Close releases the X connection.
func (d *Display) Close() { d.xu.Conn().Close() }
