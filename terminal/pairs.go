package terminal

// pairKey is a resolved (fg, bg) palette pair
type pairKey struct {
	fg, bg uint8
}

// PairCache memoises (fg, bg) combinations for palette-limited targets that
// address colors by pair number. Ids run from 1 to limit-1; id 0 is reserved.
type PairCache struct {
	limit int
	next  int
	ids   map[pairKey]int
}

// NewPairCache creates a cache handing out ids below limit (at least 2)
func NewPairCache(limit int) *PairCache {
	if limit < 2 {
		limit = 2
	}
	return &PairCache{
		limit: limit,
		next:  1,
		ids:   make(map[pairKey]int),
	}
}

// Pair returns the id for (fg, bg); fresh is true when the id was just assigned
// and the caller must (re)define it. When the ids run out the memo is cleared
// and numbering restarts at 1, silently redefining earlier ids.
func (p *PairCache) Pair(fg, bg Color) (id int, fresh bool) {
	k := pairKey{fg: pairIndex(fg, P256White), bg: pairIndex(bg, P256Black)}
	if id, ok := p.ids[k]; ok {
		return id, false
	}
	if p.next >= p.limit {
		p.Reset()
	}
	id = p.next
	p.next++
	p.ids[k] = id
	return id, true
}

// PairColors returns the palette indices a pair resolves to
func PairColors(fg, bg Color) (uint8, uint8) {
	return pairIndex(fg, P256White), pairIndex(bg, P256Black)
}

// Len returns the number of memoised pairs
func (p *PairCache) Len() int {
	return len(p.ids)
}

// Reset forgets every pair
func (p *PairCache) Reset() {
	clear(p.ids)
	p.next = 1
}

// pairIndex resolves c to a palette index; sentinels map to fallback
func pairIndex(c Color, fallback uint8) uint8 {
	if idx, ok := c.To256(); ok {
		return idx
	}
	return fallback
}
