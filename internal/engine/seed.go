package engine

import "sync/atomic"

const seedMask = uint64(1<<63) - 1

// seedMaker derives a deterministic stream of well-mixed seeds from a root
// seed. The state advances atomically so it may be shared across
// goroutines; trial-level seeds additionally mix in the trial index so a
// run's results do not depend on goroutine scheduling.
type seedMaker struct {
	state atomic.Uint64
}

func newSeedMaker(seed int64) *seedMaker {
	s := &seedMaker{}
	s.state.Store(uint64(seed) & seedMask)
	return s
}

// next advances the counter and returns the mixed seed.
func (s *seedMaker) next() int64 {
	for {
		old := s.state.Load()
		nxt := (old + 1) & seedMask
		if s.state.CompareAndSwap(old, nxt) {
			return int64(mix63(nxt))
		}
	}
}

// trialSeed derives the seed for one trial from a stage base seed and the
// trial index.
func trialSeed(base int64, idx int) int64 {
	return int64(mix63(uint64(base) + uint64(idx)*0x9e3779b97f4a7c15))
}

// mix63 is the splitmix64 finalizer masked to 63 bits.
func mix63(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x & seedMask
}
