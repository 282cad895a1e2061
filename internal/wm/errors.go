package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// logXError classifies a protocol error by its type alone: Window,
// Drawable, Match and Access errors are swallowed at Debug whichever
// request raised them (the request opcode is not consulted), and
// everything else is surfaced at Warn. There is no Fatal path
// here because BurntSushi/xgb never calls a user error handler that can
// abort the process the way Xlib's can; by the time an xgb.Error value
// reaches this function the connection is still alive.
func (w *WM) logXError(err xgb.Error) {
	fields := map[string]interface{}{"error": err.Error()}
	switch err.(type) {
	case xproto.WindowError, xproto.DrawableError:
		w.log.WithFields(fields).Debug("ignoring request against a vanished window")
	case xproto.MatchError, xproto.AccessError:
		w.log.WithFields(fields).Debug("ignoring benign protocol error")
	default:
		w.log.WithFields(fields).Warn("x protocol error")
	}
}
