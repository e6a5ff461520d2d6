package colormap

// VanDerCorput returns element n of the van der Corput sequence in the given
// base: the base-b digits of n mirrored around the radix point. The result
// is in [0, 1). n <= 0 or base < 2 yields 0.
func VanDerCorput(n, base int) float64 {
	if base < 2 {
		return 0
	}
	vdc, denom := 0.0, 1.0
	for n > 0 {
		denom *= float64(base)
		vdc += float64(n%base) / denom
		n /= base
	}
	return vdc
}
