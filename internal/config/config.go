// Package config holds tilewm's compile-time configuration: desktop
// geometry defaults, colors, and the key/button binding and app-rule
// tables. None of it is read from a file; changing behavior means
// editing this package and rebuilding, the same contract as the
// reference window manager this one is modeled on.
package config

import "github.com/BurntSushi/xgb/xproto"

// Mode is a desktop's tiling layout.
type Mode int

const (
	Tile Mode = iota
	Monocle
	BStack
	Grid
	Float
	numModes
)

func (m Mode) String() string {
	switch m {
	case Tile:
		return "tile"
	case Monocle:
		return "monocle"
	case BStack:
		return "bstack"
	case Grid:
		return "grid"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

const (
	// Desktops is the fixed number of virtual desktops.
	Desktops = 4
	// DefaultDesktop is selected on startup.
	DefaultDesktop = 0
	// DefaultMode is the starting layout mode for every desktop.
	DefaultMode = Tile
	// MasterSize is the starting master-area fraction; changes that
	// would take it outside [MinMasterSize, MaxMasterSize] are rejected.
	MasterSize     = 0.55
	MinMasterSize  = 0.05
	MaxMasterSize  = 0.95
	ResizeMasterBy = 0.05

	// PanelHeight is the height in pixels reserved for an external
	// status panel.
	PanelHeight = 18
	// TopPanel places the reserved strip at the top of the screen
	// instead of the bottom.
	TopPanel = true
	// ShowPanel is the desktops' initial show_panel value.
	ShowPanel = true

	// BorderWidth is the pixel width of a tiled, non-fullscreen,
	// non-monocle client border.
	BorderWidth = 2
	// MinWindowSize is the floor applied to interactive resize.
	MinWindowSize = 50

	// FollowMouse enables focus-follows-mouse on EnterNotify.
	FollowMouse = true
	// ClickToFocus grabs Button1 on unfocused clients so a click
	// focuses them without reaching the application.
	ClickToFocus = true
	// AttachAside appends new clients to the tail of the client list
	// instead of inserting them as the new head/master.
	AttachAside = false
	// FollowWindow makes client_to_desktop also switch the view to
	// the destination desktop.
	FollowWindow = false

	// FocusColor and UnfocusColor are 24-bit RGB border colors.
	FocusColor   = 0x5f87ff
	UnfocusColor = 0x444444
)

// Traversal picks a direction for cyclic operations (next/prev window,
// next/prev desktop).
type Traversal int

const (
	Next Traversal = 1
	Prev Traversal = -1
)

// ActionID names a bindable operation. The binding tables below only
// carry data; internal/wm's input dispatcher owns the switch that maps
// an ActionID to the WM method it invokes, so this package never
// imports internal/wm.
type ActionID int

const (
	ActionSpawn ActionID = iota
	ActionKillClient
	ActionQuit
	ActionNextWindow
	ActionPrevWindow
	ActionMoveUp
	ActionMoveDown
	ActionSwapMaster
	ActionToggleFloating
	ActionToggleFullscreen
	ActionSwitchMode
	ActionResizeMaster
	ActionResizeStack
	ActionChangeDesktop
	ActionLastDesktop
	ActionRotateDesktop
	ActionRotateFilledDesktop
	ActionClientToDesktop
	ActionTogglePanel
	ActionFocusUrgent
	ActionMoveDrag
	ActionResizeDrag
)

// Key is one entry of the compile-time key-binding table.
type Key struct {
	Mod    uint16
	Keysym xproto.Keysym
	Action ActionID
	Arg    interface{}
}

// ButtonBinding is one entry of the compile-time button-binding table.
type ButtonBinding struct {
	Mod    uint16
	Button xproto.Button
	Action ActionID
	Arg    interface{}
}

// Rule matches a mapped window's WM_CLASS against a substring and
// decides where, and how, it should be managed.
type Rule struct {
	// Class is matched, case-sensitively, as a substring of either the
	// WM_CLASS class or instance component.
	Class    string
	Desktop  int // negative means "the current desktop"
	Follow   bool
	Floating bool
}
