package vectorize

import "math"

// Vector is a sparse feature vector keyed by vocabulary column index.
type Vector map[int]float64

// Dot returns the dot product of two sparse vectors.
func Dot(a, b Vector) float64 {
	// Iterate over the smaller map
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for i, av := range a {
		if bv, ok := b[i]; ok {
			sum += av * bv
		}
	}
	return sum
}

// Norm returns the L2 magnitude of v.
func Norm(v Vector) float64 {
	var sum float64
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of a and b in [0, 1].
// When either vector has zero magnitude (no shared vocabulary terms), the
// similarity is defined as 0 to avoid division by zero.
func Cosine(a, b Vector) float64 {
	na := Norm(a)
	nb := Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	sim := Dot(a, b) / (na * nb)
	// Guard against floating-point drift past the defined range
	return math.Max(0, math.Min(1, sim))
}

// normalize scales v to unit length in place. A zero vector stays zero.
func normalize(v Vector) Vector {
	n := Norm(v)
	if n == 0 {
		return v
	}
	for i, val := range v {
		v[i] = val / n
	}
	return v
}
