package wm

import (
	"testing"

	log "github.com/sirupsen/logrus"
)

func newTestWM() (*WM, *fakeDisplay) {
	fake := newFakeDisplay(1000, 800)
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	w := New(fake, logger)
	return w, fake
}

func winsOf(head *Client) []uint32 {
	var out []uint32
	for c := head; c != nil; c = c.Next {
		out = append(out, uint32(c.Win))
	}
	return out
}

func TestAddWindowPrependsByDefault(t *testing.T) {
	w, _ := newTestWM()
	w.head = nil
	w.addWindow(10)
	w.addWindow(20)
	got := winsOf(w.head)
	if len(got) != 2 || got[0] != 20 || got[1] != 10 {
		t.Fatalf("addWindow order = %v, want [20 10] (newest first)", got)
	}
}

func TestMoveDownSwapsCurrentWithNext(t *testing.T) {
	w, _ := newTestWM()
	w.head = nil
	a := w.addWindow(1)
	_ = a
	bHead := w.addWindow(2) // head is now 2 -> 1
	w.current = bHead       // current = head(2)
	w.moveDown()
	got := winsOf(w.head)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("after moveDown on head, order = %v, want [1 2]", got)
	}
}

func TestMoveUpIsInverseOfMoveDown(t *testing.T) {
	w, _ := newTestWM()
	w.head = nil
	w.addWindow(1)
	w.addWindow(2)
	w.addWindow(3) // list: 3 -> 2 -> 1
	before := winsOf(w.head)

	w.current = w.head.Next // 2
	w.moveUp()
	w.current = w.head
	w.moveDown()

	after := winsOf(w.head)
	if len(before) != len(after) {
		t.Fatalf("list length changed: %v -> %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("moveUp then moveDown = %v, want original order %v", after, before)
		}
	}
}

func TestRemoveClientHeadUpdatesCurrent(t *testing.T) {
	w, fake := newTestWM()
	w.head = nil
	w.addWindow(1)
	head := w.addWindow(2)
	w.updateCurrent(head)

	w.removeClient(head)
	if w.current == nil || w.current.Win != 1 {
		t.Fatalf("current after removing head = %+v, want win=1", w.current)
	}
	if fake.active == 0 {
		t.Errorf("expected _NET_ACTIVE_WINDOW to be set after removal")
	}
}

func TestRemoveLastClientClearsFocus(t *testing.T) {
	w, fake := newTestWM()
	w.head = nil
	only := w.addWindow(1)
	w.updateCurrent(only)

	w.removeClient(only)
	if w.current != nil || w.prevFocus != nil {
		t.Fatalf("current/prevFocus should be nil on an empty desktop")
	}
	if !fake.cleared {
		t.Errorf("expected _NET_ACTIVE_WINDOW to be cleared on an empty desktop")
	}
}

func TestNextWinWrapsToHead(t *testing.T) {
	w, _ := newTestWM()
	w.head = nil
	w.addWindow(1)
	tail := w.head
	w.addWindow(2) // head: 2 -> 1(tail)
	w.current = tail
	w.nextWin()
	if w.current != w.head {
		t.Fatalf("nextWin from tail should wrap to head")
	}
}
