package interfaces

// RandomSource supplies uniformly distributed values. It is injected into
// every resolver so outcomes can be scripted deterministically in tests.
type RandomSource interface {
	// Intn returns a uniformly distributed int in [0, n). Panics if n <= 0.
	Intn(n int) int
}
