package core

func Maxf(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

func Minf(x, y float64) float64 {
	if x > y {
		return y
	}
	return x
}

// Clamp limits x to the [min, max] range.
func Clamp(x, min, max float64) float64 {
	if x > max {
		return max
	}
	if x < min {
		return min
	}
	return x
}
