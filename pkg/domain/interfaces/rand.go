package interfaces

// Rand is the source of randomness used to pick recommendation templates.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n)
	IntN(n int) int
}
