package wm

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/tilewm/tilewm/internal/config"
)

func chain(n int) *Client {
	var head, tail *Client
	for i := 0; i < n; i++ {
		c := &Client{Win: xproto.Window(100 + i)}
		if head == nil {
			head = c
		} else {
			tail.Next = c
		}
		tail = c
	}
	return head
}

func TestStackRectsTwoWindowsEvenSplit(t *testing.T) {
	head := chain(2)
	places := stackRects(head, false, 1000, 1000, 0, 0.5, 0, 0)
	if len(places) != 2 {
		t.Fatalf("got %d placements, want 2", len(places))
	}
	master, stack := places[0].rect, places[1].rect
	if master != (Rect{0, 0, 500, 1000}) {
		t.Errorf("master rect = %+v", master)
	}
	if stack != (Rect{500, 0, 500, 1000}) {
		t.Errorf("stack rect = %+v", stack)
	}
}

func TestStackRectsSingleWindowFillsScreen(t *testing.T) {
	head := chain(1)
	places := stackRects(head, false, 800, 600, 0, 0.5, 0, 2)
	if len(places) != 1 {
		t.Fatalf("got %d placements, want 1", len(places))
	}
	want := Rect{0, 0, 800 - 4, 600 - 4}
	if places[0].rect != want {
		t.Errorf("rect = %+v, want %+v", places[0].rect, want)
	}
}

func TestStackRectsSkipsFloatingAndFullscreen(t *testing.T) {
	head := chain(4)
	head.Next.IsFloating = true
	head.Next.Next.IsFullscreen = true
	places := stackRects(head, false, 900, 300, 0, 0.5, 0, 0)
	if len(places) != 2 {
		t.Fatalf("got %d placements, want 2 (floating and fullscreen clients skipped)", len(places))
	}
}

func TestGridRectsFourWindowsTileExactly(t *testing.T) {
	head := chain(4)
	places := gridRects(head, 800, 600, 0, 0)
	if len(places) != 4 {
		t.Fatalf("got %d placements, want 4", len(places))
	}
	var totalArea int
	for _, p := range places {
		totalArea += int(p.rect.Width) * int(p.rect.Height)
	}
	if totalArea != 800*600 {
		t.Errorf("grid cells cover %d px, want %d", totalArea, 800*600)
	}
}

func TestGridRectsFiveWindowsUsesTwoColumns(t *testing.T) {
	head := chain(5)
	places := gridRects(head, 800, 600, 0, 0)
	if len(places) != 5 {
		t.Fatalf("got %d placements, want 5", len(places))
	}
	// n=5 forces a 2-column grid (the square-root rule alone would pick 3).
	maxX := int16(0)
	for _, p := range places {
		if p.rect.X > maxX {
			maxX = p.rect.X
		}
	}
	cw := int16(800 / 2)
	if maxX != cw {
		t.Errorf("rightmost column at x=%d, want %d (2 columns)", maxX, cw)
	}
}

func TestMonocleRectsCoverFullRegion(t *testing.T) {
	head := chain(3)
	places := monocleRects(head, 640, 480, 10)
	for _, p := range places {
		if p.rect != (Rect{0, 10, 640, 480}) {
			t.Errorf("monocle rect = %+v", p.rect)
		}
	}
}

func TestLayoutRectsDispatchesByMode(t *testing.T) {
	head := chain(2)
	if got := layoutRects(head, config.Monocle, 100, 100, 0, 0.5, 0, 0); len(got) != 2 {
		t.Fatalf("monocle: got %d placements", len(got))
	}
	if got := layoutRects(head, config.BStack, 100, 100, 0, 0.5, 0, 0); len(got) != 2 {
		t.Fatalf("bstack: got %d placements", len(got))
	}
}
