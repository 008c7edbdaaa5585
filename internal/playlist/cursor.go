package playlist

// CurrentIndex returns the cursor position. It is 0 for an empty playlist.
func (p *Playlist) CurrentIndex() int {
	return p.current
}

// Current returns the track under the cursor, or nil if the playlist is empty.
func (p *Playlist) Current() *Track {
	return p.Track(p.current)
}

// SetCurrent moves the cursor to index.
// Returns false and leaves the cursor unchanged if index is out of range.
func (p *Playlist) SetCurrent(index int) bool {
	if index < 0 || index >= len(p.tracks) {
		return false
	}
	p.current = index
	return true
}

// Next moves the cursor forward, wrapping to the first track after the last.
// Returns nil if the playlist is empty.
func (p *Playlist) Next() *Track {
	return p.step(1)
}

// Previous moves the cursor backward, wrapping to the last track before the first.
// Returns nil if the playlist is empty.
func (p *Playlist) Previous() *Track {
	return p.step(-1)
}

func (p *Playlist) step(delta int) *Track {
	n := len(p.tracks)
	if n == 0 {
		return nil
	}
	p.current = wrap(p.current+delta, n)
	return p.Current()
}

// wrap returns i modulo n in [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
