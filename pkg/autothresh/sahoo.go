package autothresh

import "math"

// sahooSelect scans candidate thresholds and returns the one maximizing the
// total generalized entropy (order q) of the two classes the threshold
// induces. For a class with probability mass w and power sum R = sum(p^q),
// its entropy contribution is
//
//	E = (ln(R) - q*ln(w)) / (1 - q)
//
// Cumulative mass and power sums are accumulated once from the low side and
// once from the high side, then every candidate is scored in O(1). The last
// bucket is never a candidate, candidates leaving either class empty are
// skipped, and ties break toward the lowest level (strict comparison).
//
// q must not be exactly 1; Select perturbs that value before calling here.
func sahooSelect(p Normalized, q float64) (int, bool) {
	var lowMass, lowPow [Levels]float64
	var highMass, highPow [Levels]float64

	m, r := 0.0, 0.0
	for t := 0; t < Levels; t++ {
		m += p[t]
		r += math.Pow(p[t], q)
		lowMass[t] = m
		lowPow[t] = r
	}
	m, r = 0.0, 0.0
	for t := Levels - 1; t > 0; t-- {
		m += p[t]
		r += math.Pow(p[t], q)
		// high class at candidate t-1 holds levels t..255
		highMass[t-1] = m
		highPow[t-1] = r
	}

	inv := 1.0 / (1.0 - q)
	best := -1
	bestScore := 0.0
	for t := 0; t < Levels-1; t++ {
		if lowMass[t] <= 0 || highMass[t] <= 0 {
			continue
		}
		eLow := inv * (math.Log(lowPow[t]) - q*math.Log(lowMass[t]))
		eHigh := inv * (math.Log(highPow[t]) - q*math.Log(highMass[t]))
		score := eLow + eHigh
		if best < 0 || score > bestScore {
			best = t
			bestScore = score
		}
	}
	return best, best >= 0
}
