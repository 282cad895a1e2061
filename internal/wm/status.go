package wm

import (
	"fmt"
	"io"
	"os"
)

// StatusWriter receives the status line tilewm emits after every event
// that can change what a status bar would show. Defaults to stdout;
// any io.Writer can be substituted.
var StatusWriter io.Writer = os.Stdout

// publishStatus writes a single line holding one record per desktop,
// space-separated, each formatted
// "index:client_count:mode:is_current:has_urgent", and flushes
// immediately. The active desktop is restored before
// returning, since computing this requires visiting every desktop.
func (w *WM) publishStatus() {
	saved := w.currentDesktop
	var line string
	for d := 0; d < len(w.desktops); d++ {
		w.selectDesktop(d)
		n := 0
		urgent := 0
		for c := w.head; c != nil; c = c.Next {
			n++
			if c.IsUrgent {
				urgent = 1
			}
		}
		isCurrent := 0
		if d == saved {
			isCurrent = 1
		}
		sep := " "
		if d == len(w.desktops)-1 {
			sep = "\n"
		}
		line += fmt.Sprintf("%d:%d:%d:%d:%d%s", d, n, int(w.mode), isCurrent, urgent, sep)
	}
	w.selectDesktop(saved)

	if f, ok := StatusWriter.(interface{ Sync() error }); ok {
		defer f.Sync()
	}
	fmt.Fprint(StatusWriter, line)
}
