package playlist

import (
	"fmt"
	"testing"
)

func newFilled(n int) *Playlist {
	p := New()
	for i := range n {
		p.Add(fmt.Sprintf("/t%d.mp3", i))
	}
	return p
}

func TestPlaylist_SetCurrent(t *testing.T) {
	p := newFilled(3)

	tests := []struct {
		name  string
		index int
		ok    bool
		want  int
	}{
		{"first", 0, true, 0},
		{"last", 2, true, 2},
		{"negative ignored", -1, false, 2},
		{"past end ignored", 3, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ok := p.SetCurrent(tt.index); ok != tt.ok {
				t.Errorf("SetCurrent(%d) = %v, want %v", tt.index, ok, tt.ok)
			}
			if p.CurrentIndex() != tt.want {
				t.Errorf("CurrentIndex() = %d, want %d", p.CurrentIndex(), tt.want)
			}
		})
	}
}

func TestPlaylist_NextWraps(t *testing.T) {
	p := newFilled(3)
	p.SetCurrent(2)

	tr := p.Next()

	if p.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", p.CurrentIndex())
	}
	if tr == nil || tr.Path != "/t0.mp3" {
		t.Errorf("Next() = %v, want /t0.mp3", tr)
	}
}

func TestPlaylist_PreviousWraps(t *testing.T) {
	p := newFilled(3)

	tr := p.Previous()

	if p.CurrentIndex() != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", p.CurrentIndex())
	}
	if tr == nil || tr.Path != "/t2.mp3" {
		t.Errorf("Previous() = %v, want /t2.mp3", tr)
	}
}

func TestPlaylist_NextPrevious_Empty(t *testing.T) {
	p := New()

	if p.Next() != nil {
		t.Error("Next() on empty playlist should be nil")
	}
	if p.Previous() != nil {
		t.Error("Previous() on empty playlist should be nil")
	}
	if p.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", p.CurrentIndex())
	}
}

func TestPlaylist_NextFullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := range n {
			p := newFilled(n)
			p.SetCurrent(start)
			for range n {
				p.Next()
			}
			if p.CurrentIndex() != start {
				t.Errorf("n=%d start=%d: after %d Next() index = %d", n, start, n, p.CurrentIndex())
			}
		}
	}
}

func TestPlaylist_PreviousInvertsNext(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for i := range n {
			p := newFilled(n)

			p.SetCurrent(i)
			p.Next()
			p.Previous()
			if p.CurrentIndex() != i {
				t.Errorf("n=%d: previous(next(%d)) = %d", n, i, p.CurrentIndex())
			}

			p.SetCurrent(i)
			p.Previous()
			p.Next()
			if p.CurrentIndex() != i {
				t.Errorf("n=%d: next(previous(%d)) = %d", n, i, p.CurrentIndex())
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 3, 1},
	}
	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
