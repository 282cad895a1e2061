package config

import "github.com/BurntSushi/xgb/xproto"

// Keysym constants for the non-printable keys referenced by the default
// binding table. Printable ASCII keys (letters, digits, punctuation) use
// their own rune value directly, since X11 keysyms below 0x100 are
// defined to equal the Latin-1 code point.
//
// Values come from /usr/include/X11/keysymdef.h.
const (
	XKBackSpace   = xproto.Keysym(0xff08)
	XKTab         = xproto.Keysym(0xff09)
	XKReturn      = xproto.Keysym(0xff0d)
	XKEscape      = xproto.Keysym(0xff1b)
	XKHome        = xproto.Keysym(0xff50)
	XKLeft        = xproto.Keysym(0xff51)
	XKUp          = xproto.Keysym(0xff52)
	XKRight       = xproto.Keysym(0xff53)
	XKDown        = xproto.Keysym(0xff54)
	XKPageUp      = xproto.Keysym(0xff55)
	XKPageDown    = xproto.Keysym(0xff56)
	XKEnd         = xproto.Keysym(0xff57)
	XKISOLeftTab  = xproto.Keysym(0xfe20)
	XKSuperL      = xproto.Keysym(0xffeb)
	XKF1          = xproto.Keysym(0xffbe)
	XKF2          = xproto.Keysym(0xffbf)
	XKF3          = xproto.Keysym(0xffc0)
	XKF4          = xproto.Keysym(0xffc1)
)
