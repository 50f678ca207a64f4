package autothresh

// otsuSelect scans candidate thresholds from low to high and returns the one
// maximizing the between-class variance
//
//	BCV(t) = (M*w(t) - g(t))^2 / (w(t) * (1 - w(t)))
//
// where M is the global mean intensity, w(t) the cumulative probability mass
// of levels <= t and g(t) the cumulative probability-weighted intensity.
// The last bucket is never a candidate: it would leave the high class empty.
// Candidates where w is 0 or 1 are skipped to avoid division by zero, so a
// single-level histogram yields no selection (ok == false) and the caller
// falls back to the sole populated level.
//
// Ties break toward the lowest level: the comparison against the running best
// is strict, so the earliest maximum wins.
func otsuSelect(p Normalized) (int, bool) {
	mean := 0.0
	for v := 0; v < Levels; v++ {
		mean += float64(v) * p[v]
	}

	best := -1
	bestScore := 0.0
	mass := 0.0
	weighted := 0.0
	for t := 0; t < Levels-1; t++ {
		mass += p[t]
		weighted += float64(t) * p[t]
		if mass <= 0 || mass >= 1 {
			continue
		}
		d := mean*mass - weighted
		score := d * d / (mass * (1 - mass))
		if best < 0 || score > bestScore {
			best = t
			bestScore = score
		}
	}
	return best, best >= 0
}
