package search

import "math/bits"

// Domain is the set of values an IntVar may currently take. Grounded on
// pkg/minikanren/domain.go's pooled bitset domain, generalized from a
// fixed 1-indexed [1..n] universe to an arbitrary [lo, hi] integer range.
type Domain interface {
	Min() int
	Max() int
	Size() int
	Contains(v int) bool
	Singleton() bool
	// Values returns, in ascending order, every value currently in the
	// domain. Backs IntVar.MakeDomainIterator (spec §3: "a finite,
	// one-shot sequence of current domain values").
	Values() []int
}

// bitsetDomain is a dense bitset over [lo, hi], one word per 64 values.
type bitsetDomain struct {
	lo, hi int
	words  []uint64
}

func newBitsetDomain(lo, hi int) *bitsetDomain {
	if hi < lo {
		hi = lo - 1 // empty domain
	}
	n := hi - lo + 1
	d := &bitsetDomain{lo: lo, hi: hi, words: make([]uint64, (n+63)/64)}
	for i := 0; i < n; i++ {
		d.words[i/64] |= 1 << uint(i%64)
	}
	return d
}

func (d *bitsetDomain) clone() *bitsetDomain {
	w := make([]uint64, len(d.words))
	copy(w, d.words)
	return &bitsetDomain{lo: d.lo, hi: d.hi, words: w}
}

func (d *bitsetDomain) idx(v int) int { return v - d.lo }

func (d *bitsetDomain) Contains(v int) bool {
	if v < d.lo || v > d.hi {
		return false
	}
	i := d.idx(v)
	return d.words[i/64]&(1<<uint(i%64)) != 0
}

func (d *bitsetDomain) set(v int, on bool) {
	i := d.idx(v)
	if on {
		d.words[i/64] |= 1 << uint(i%64)
	} else {
		d.words[i/64] &^= 1 << uint(i%64)
	}
}

func (d *bitsetDomain) Size() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

func (d *bitsetDomain) Min() int {
	for w := 0; w < len(d.words); w++ {
		if d.words[w] != 0 {
			return d.lo + w*64 + bits.TrailingZeros64(d.words[w])
		}
	}
	return d.hi + 1
}

func (d *bitsetDomain) Max() int {
	for w := len(d.words) - 1; w >= 0; w-- {
		if d.words[w] != 0 {
			return d.lo + w*64 + 63 - bits.LeadingZeros64(d.words[w])
		}
	}
	return d.lo - 1
}

func (d *bitsetDomain) Singleton() bool { return d.Size() == 1 }

func (d *bitsetDomain) Values() []int {
	out := make([]int, 0, d.Size())
	for w, word := range d.words {
		for word != 0 {
			tz := bits.TrailingZeros64(word)
			out = append(out, d.lo+w*64+tz)
			word &^= 1 << uint(tz)
		}
	}
	return out
}

func (d *bitsetDomain) removeBelow(v int) {
	for x := d.lo; x < v && x <= d.hi; x++ {
		d.set(x, false)
	}
}

func (d *bitsetDomain) removeAbove(v int) {
	for x := v + 1; x <= d.hi; x++ {
		d.set(x, false)
	}
}
