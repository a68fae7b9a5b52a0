package ops

// identity passes the upstream gradient through unchanged.
func identity(g float64) float64 {
	return g
}

// negate flips the sign of the upstream gradient.
func negate(g float64) float64 {
	return -g
}

// zero blocks the upstream gradient.
func zero(float64) float64 {
	return 0
}
