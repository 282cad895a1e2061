package wm

import (
	log "github.com/sirupsen/logrus"

	"github.com/tilewm/tilewm/internal/config"
)

// desktop is the saved state of one virtual desktop: everything the WM
// struct's "live" fields mirror for whichever desktop is currently
// selected. selectDesktop swaps these in and out of the live fields
// instead of addressing an array slot directly, so a desktop switch
// never touches client structs themselves — only which list head is live.
type desktop struct {
	masterSize float64
	mode       config.Mode
	growth     int
	showPanel  bool

	head      *Client
	current   *Client
	prevFocus *Client
}

// WM is the window manager's whole mutable state: the X facade, the
// compile-time configuration, and the live-mirrored fields of the
// active desktop.
type WM struct {
	x   Display
	cfg wmConfig

	desktops        [config.Desktops]desktop
	currentDesktop  int
	previousDesktop int

	// Live mirror of desktops[currentDesktop], swapped by selectDesktop.
	masterSize float64
	mode       config.Mode
	growth     int
	showPanel  bool
	head       *Client
	current    *Client
	prevFocus  *Client

	screenW, screenH uint16
	running          bool
	exitCode         int

	drag dragState

	log *log.Logger
}

// wmConfig is the subset of internal/config's constants the core engine
// consults at runtime, copied in at construction. The binding and rule
// tables (config.Keys, config.Buttons, config.Rules) are still read
// directly from internal/config.
type wmConfig struct {
	AttachAside  bool
	FollowMouse  bool
	ClickToFocus bool
	FollowWindow bool
	BorderWidth  uint16
	MinWinSize   int16
	PanelHeight  uint16
	TopPanel     bool
}

// New builds a WM bound to display x, with every desktop initialized to
// the package defaults.
func New(x Display, logger *log.Logger) *WM {
	w := &WM{
		x:   x,
		log: logger,
		cfg: wmConfig{
			AttachAside:  config.AttachAside,
			FollowMouse:  config.FollowMouse,
			ClickToFocus: config.ClickToFocus,
			FollowWindow: config.FollowWindow,
			BorderWidth:  config.BorderWidth,
			MinWinSize:   config.MinWindowSize,
			PanelHeight:  config.PanelHeight,
			TopPanel:     config.TopPanel,
		},
		running: true,
	}
	// screenH is the usable height: the screen minus the panel strip.
	w.screenW, w.screenH = x.ScreenSize()
	w.screenH -= config.PanelHeight
	for i := range w.desktops {
		w.desktops[i] = desktop{
			masterSize: config.MasterSize,
			mode:       config.DefaultMode,
			showPanel:  config.ShowPanel,
		}
	}
	w.masterSize = config.MasterSize
	w.mode = config.DefaultMode
	w.showPanel = config.ShowPanel
	return w
}

// saveDesktop copies the live fields into desktops[i].
func (w *WM) saveDesktop(i int) {
	if i < 0 || i >= len(w.desktops) {
		return
	}
	w.desktops[i] = desktop{
		masterSize: w.masterSize,
		mode:       w.mode,
		growth:     w.growth,
		showPanel:  w.showPanel,
		head:       w.head,
		current:    w.current,
		prevFocus:  w.prevFocus,
	}
}

// selectDesktop saves the currently live desktop and loads i's state in
// its place, making i the active desktop. An out-of-range index is
// silently ignored.
func (w *WM) selectDesktop(i int) {
	if i < 0 || i >= len(w.desktops) {
		w.log.WithField("desktop", i).Debug("ignoring out-of-range desktop index")
		return
	}
	w.saveDesktop(w.currentDesktop)
	d := w.desktops[i]
	w.masterSize = d.masterSize
	w.mode = d.mode
	w.growth = d.growth
	w.showPanel = d.showPanel
	w.head = d.head
	w.current = d.current
	w.prevFocus = d.prevFocus
	w.currentDesktop = i
}

// changeDesktop focuses desktop i, mapping its windows before unmapping
// the outgoing desktop's so the screen never shows a blank frame.
func (w *WM) changeDesktop(i int) {
	if i == w.currentDesktop {
		return
	}
	w.previousDesktop = w.currentDesktop
	w.selectDesktop(i)
	if w.current != nil {
		w.x.Map(w.current.Win)
	}
	for c := w.head; c != nil; c = c.Next {
		w.x.Map(c.Win)
	}

	outgoing := w.previousDesktop
	w.selectDesktop(outgoing)
	for c := w.head; c != nil; c = c.Next {
		if c != w.current {
			w.x.Unmap(c.Win)
		}
	}
	if w.current != nil {
		w.x.Unmap(w.current.Win)
	}

	w.selectDesktop(i)
	w.tile()
	w.updateCurrent(w.current)
	w.publishStatus()
}

// lastDesktop returns to the desktop that was active before the most
// recent changeDesktop.
func (w *WM) lastDesktop() {
	w.changeDesktop(w.previousDesktop)
}

// rotateDesktop jumps to the next or previous desktop, cyclically.
func (w *WM) rotateDesktop(dir config.Traversal) {
	n := len(w.desktops)
	w.changeDesktop((n + w.currentDesktop + int(dir)) % n)
}

// rotateFilledDesktop jumps to the next or previous desktop that has at
// least one client, skipping empty ones.
func (w *WM) rotateFilledDesktop(dir config.Traversal) {
	n := len(w.desktops)
	step := int(dir)
	i := step
	for i < n && w.desktops[(n+w.currentDesktop+i)%n].head == nil {
		i += step
	}
	w.changeDesktop((n + w.currentDesktop + i) % n)
}

// togglePanel flips whether the reserved status-panel strip is honored
// by the layout engine on the active desktop.
func (w *WM) togglePanel() {
	w.showPanel = !w.showPanel
	w.tile()
}

// clientToDesktop moves the current client to desktop i, appending it
// to that desktop's tail.
func (w *WM) clientToDesktop(i int) {
	if w.current == nil || i == w.currentDesktop {
		return
	}
	cd := w.currentDesktop
	p := prevClient(w.head, w.current)
	c := w.current
	next := c.Next
	c.Next = nil

	w.selectDesktop(i)
	tail := prevClient(w.head, w.head)
	switch {
	case tail != nil:
		tail.Next = c
		w.updateCurrent(c)
	case w.head != nil:
		w.head.Next = c
		w.updateCurrent(c)
	default:
		w.head = c
		w.updateCurrent(c)
	}

	w.selectDesktop(cd)
	if c == w.head || p == nil {
		w.head = next
	} else {
		p.Next = next
	}
	w.x.Unmap(c.Win)
	w.updateCurrent(w.prevFocus)

	if w.cfg.FollowWindow {
		w.changeDesktop(i)
	} else {
		w.tile()
	}
	w.publishStatus()
}

// focusUrgent focuses the first urgent client on the active desktop, or
// failing that the first urgent client on any desktop, switching to it.
func (w *WM) focusUrgent() {
	for c := w.head; c != nil; c = c.Next {
		if c.IsUrgent {
			w.updateCurrent(c)
			return
		}
	}
	cd := w.currentDesktop
	var found *Client
	foundDesktop := -1
	for d := 0; d < len(w.desktops) && found == nil; d++ {
		w.selectDesktop(d)
		for c := w.head; c != nil; c = c.Next {
			if c.IsUrgent {
				found = c
				foundDesktop = d
				break
			}
		}
	}
	w.selectDesktop(cd)
	if found != nil {
		w.changeDesktop(foundDesktop)
		w.updateCurrent(found)
	}
}
