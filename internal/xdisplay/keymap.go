package xdisplay

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

const (
	keycodeLo = 8
	keycodeHi = 255
)

// keymap[keycode][0] is the unshifted symbol produced by a keycode,
// keymap[keycode][1] the shifted one.
type keymap [256][2]xproto.Keysym

func (d *Display) loadKeyboardMapping() error {
	km, err := xproto.GetKeyboardMapping(d.Conn(), keycodeLo, keycodeHi-keycodeLo+1).Reply()
	if err != nil {
		return fmt.Errorf("xdisplay: GetKeyboardMapping: %w", err)
	}
	n := int(km.KeysymsPerKeycode)
	if n < 1 {
		return fmt.Errorf("xdisplay: too few keysyms per keycode: %d", n)
	}
	for i := keycodeLo; i <= keycodeHi; i++ {
		base := (i - keycodeLo) * n
		d.keymap[i][0] = km.Keysyms[base]
		if n > 1 {
			d.keymap[i][1] = km.Keysyms[base+1]
		}
	}
	return nil
}

// KeycodeForKeysym finds the keycode that produces keysym, unshifted or
// shifted, scanning the cached mapping from the lowest keycode up.
func (d *Display) KeycodeForKeysym(sym xproto.Keysym) (xproto.Keycode, bool) {
	for i, pair := range d.keymap {
		if pair[0] == sym || pair[1] == sym {
			return xproto.Keycode(i), true
		}
	}
	return 0, false
}
