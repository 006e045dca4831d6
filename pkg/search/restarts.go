package search

// Both restart monitors count failures in BeginFail; when the counter
// reaches a threshold they request RestartCurrentSearch and reset
// (spec §4.9).

// ConstantRestart restarts after exactly k failures (spec §4.9).
type ConstantRestart struct {
	BaseMonitor
	K     int64
	count int64
}

func NewConstantRestart(k int64) *ConstantRestart { return &ConstantRestart{K: k} }

func (r *ConstantRestart) EnterSearch(s *Solver) { r.count = 0 }

func (r *ConstantRestart) BeginFail(s *Solver) {
	r.count++
	if r.count >= r.K {
		r.count = 0
		s.RestartCurrentSearch()
	}
}

// luby computes the classical Luby(i) sequence (spec §3): if i+1 = 2^k
// then 2^(k-1) else Luby(i - 2^(k-1) + 1), where 2^k is the smallest
// power of two >= i+1. Grounded additionally against
// crillab-gophersat/solver/luby.go's recursive formula as a cross-check.
func luby(i int64) int64 {
	k := int64(1)
	for k < i+1 {
		k <<= 1
	}
	if k == i+1 {
		return k / 2
	}
	return luby(i - k/2 + 1)
}

// Luby returns the i-th term of the classical Luby restart sequence
// (1-indexed, matching spec §8 scenario 4: Luby(1..16) ==
// [1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,1]).
func Luby(i int64) int64 { return luby(i) }

// LubyRestart restarts at iteration i once failures reach
// Luby(i) * scale (spec §4.9, §8 invariant 8).
type LubyRestart struct {
	BaseMonitor
	Scale int64

	iteration int64
	count     int64
}

// NewLubyRestart constructs a LubyRestart. scale must be >= 1
// (spec §7: "scale_factor < 1 on LubyRestart" is a fatal misuse error,
// reported at construction and aborts), matching NewOptimizeVar's
// error-return convention rather than clamping silently.
func NewLubyRestart(scale int64) (*LubyRestart, error) {
	if scale < 1 {
		return nil, wrapMisuse(ErrNonPositiveScale, "LubyRestart scale=%d", scale)
	}
	return &LubyRestart{Scale: scale, iteration: 1}, nil
}

func (r *LubyRestart) EnterSearch(s *Solver) {
	r.iteration = 1
	r.count = 0
}

func (r *LubyRestart) BeginFail(s *Solver) {
	r.count++
	threshold := luby(r.iteration) * r.Scale
	if r.count >= threshold {
		r.count = 0
		r.iteration++
		s.RestartCurrentSearch()
	}
}
