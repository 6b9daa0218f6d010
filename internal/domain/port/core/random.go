package core

// RandomSource supplies uniform integers for prize draws
type RandomSource interface {
	// Int64N returns a uniform integer in [0, n). n must be positive.
	Int64N(n int64) int64
}
