package terminal

import "testing"

func TestPairCacheMemo(t *testing.T) {
	p := NewPairCache(16)

	id, fresh := p.Pair(Index(1), Index(2))
	if id != 1 || !fresh {
		t.Fatalf("first pair = (%d, %v), want (1, true)", id, fresh)
	}
	id, fresh = p.Pair(Index(1), Index(2))
	if id != 1 || fresh {
		t.Errorf("repeat pair = (%d, %v), want (1, false)", id, fresh)
	}
	id, _ = p.Pair(Index(2), Index(1))
	if id != 2 {
		t.Errorf("swapped pair id = %d, want 2", id)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPairCacheQuantizesRGB(t *testing.T) {
	p := NewPairCache(16)
	fg := NewRGB(255, 0, 0)
	idx := Quantize256(255, 0, 0)

	a, _ := p.Pair(fg, Index(0))
	b, fresh := p.Pair(Index(idx), Index(0))
	if a != b || fresh {
		t.Errorf("RGB and its palette index got ids %d and %d", a, b)
	}
}

func TestPairCacheSentinels(t *testing.T) {
	fg, bg := PairColors(DefaultFg, Transparent)
	if fg != P256White || bg != P256Black {
		t.Errorf("PairColors(default, transparent) = (%d, %d)", fg, bg)
	}

	p := NewPairCache(16)
	a, _ := p.Pair(DefaultFg, DefaultBg)
	b, fresh := p.Pair(Index(P256White), Index(P256Black))
	if a != b || fresh {
		t.Error("default colors did not share the white-on-black pair")
	}
}

func TestPairCacheExhaustion(t *testing.T) {
	p := NewPairCache(3) // ids 1 and 2

	p.Pair(Index(1), Index(0))
	p.Pair(Index(2), Index(0))
	id, fresh := p.Pair(Index(3), Index(0))
	if id != 1 || !fresh {
		t.Errorf("pair after exhaustion = (%d, %v), want (1, true)", id, fresh)
	}
	if p.Len() != 1 {
		t.Errorf("Len() after reset = %d, want 1", p.Len())
	}

	// Evicted pairs are assigned again rather than returning a stale id
	if id, fresh := p.Pair(Index(1), Index(0)); id != 2 || !fresh {
		t.Errorf("evicted pair = (%d, %v), want (2, true)", id, fresh)
	}
}

func TestNewPairCacheMinimum(t *testing.T) {
	p := NewPairCache(0)
	a, _ := p.Pair(Index(1), Index(0))
	b, _ := p.Pair(Index(2), Index(0))
	if a != 1 || b != 1 {
		t.Errorf("ids = %d, %d, want both 1", a, b)
	}
}
