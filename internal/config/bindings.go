package config

import "github.com/BurntSushi/xgb/xproto"

// ModKey is the primary modifier for window-management bindings.
const ModKey = xproto.ModMask4

// Terminal and Launcher are the two programs a default install expects
// to have on $PATH; swap them for whatever the desktop actually has.
var (
	Terminal = []string{"xterm"}
	Launcher = []string{"dmenu_run"}
)

// Keys is the compile-time key-binding table. Each entry is grabbed, on
// startup, under every combination of {0, CapsLock, NumLock,
// CapsLock|NumLock} so that lock-key state never defeats a binding.
var Keys = []Key{
	{ModKey, xproto.Keysym('p'), ActionSpawn, Launcher},
	{ModKey | xproto.ModMaskShift, XKReturn, ActionSpawn, Terminal},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('c'), ActionKillClient, nil},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('q'), ActionQuit, 0},

	{ModKey, xproto.Keysym('j'), ActionNextWindow, nil},
	{ModKey, xproto.Keysym('k'), ActionPrevWindow, nil},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('j'), ActionMoveDown, nil},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('k'), ActionMoveUp, nil},
	{ModKey, XKReturn, ActionSwapMaster, nil},
	{ModKey, xproto.Keysym('t'), ActionToggleFloating, nil},
	{ModKey, xproto.Keysym('f'), ActionToggleFullscreen, nil},

	{ModKey, xproto.Keysym('s'), ActionSwitchMode, Tile},
	{ModKey, xproto.Keysym('b'), ActionSwitchMode, BStack},
	{ModKey, xproto.Keysym('g'), ActionSwitchMode, Grid},
	{ModKey, xproto.Keysym('m'), ActionSwitchMode, Monocle},

	{ModKey, xproto.Keysym('h'), ActionResizeMaster, -5},
	{ModKey, xproto.Keysym('l'), ActionResizeMaster, 5},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('h'), ActionResizeStack, -10},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('l'), ActionResizeStack, 10},

	{ModKey, xproto.Keysym('1'), ActionChangeDesktop, 0},
	{ModKey, xproto.Keysym('2'), ActionChangeDesktop, 1},
	{ModKey, xproto.Keysym('3'), ActionChangeDesktop, 2},
	{ModKey, xproto.Keysym('4'), ActionChangeDesktop, 3},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('1'), ActionClientToDesktop, 0},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('2'), ActionClientToDesktop, 1},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('3'), ActionClientToDesktop, 2},
	{ModKey | xproto.ModMaskShift, xproto.Keysym('4'), ActionClientToDesktop, 3},
	{ModKey, XKTab, ActionLastDesktop, nil},
	{ModKey, XKRight, ActionRotateDesktop, Next},
	{ModKey, XKLeft, ActionRotateDesktop, Prev},
	{ModKey | xproto.ModMaskShift, XKRight, ActionRotateFilledDesktop, Next},
	{ModKey | xproto.ModMaskShift, XKLeft, ActionRotateFilledDesktop, Prev},

	{ModKey, xproto.Keysym('u'), ActionFocusUrgent, nil},
	{ModKey | xproto.ModMaskShift, xproto.Keysym(' '), ActionTogglePanel, nil},
}

// Buttons is the compile-time button-binding table, grabbed on every
// managed client.
var Buttons = []ButtonBinding{
	{ModKey, xproto.Button(1), ActionMoveDrag, nil},
	{ModKey, xproto.Button(3), ActionResizeDrag, nil},
}

// Rules is the compile-time app-placement table. The first rule whose
// Class substring matches either the WM_CLASS class or instance
// component wins; matching is case-sensitive (see DESIGN.md Open
// Question 1).
var Rules = []Rule{
	{Class: "Gimp", Desktop: -1, Follow: false, Floating: true},
	{Class: "Pavucontrol", Desktop: -1, Follow: false, Floating: true},
}
