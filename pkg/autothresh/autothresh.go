package autothresh

import (
	"fmt"
	"strings"
)

// Method identifies the threshold selection criterion.
type Method int

const (
	// Otsu maximizes the between-class variance of the two partitions.
	Otsu Method = iota
	// Sahoo maximizes the summed generalized entropy of the two partitions.
	Sahoo
)

// DefaultPower is the generalized-entropy order used when the caller does not
// supply one.
const DefaultPower = 2.0

// nearOne stands in for an entropy order of exactly 1, a removable
// singularity of the generalized-entropy formula. A perturbed order is a
// workaround, not a numerically robust limit of the formula.
const nearOne = 0.999999

func (m Method) String() string {
	switch m {
	case Otsu:
		return "otsu"
	case Sahoo:
		return "sahoo"
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod recognizes the method names accepted on the command line.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "otsu":
		return Otsu, nil
	case "sahoo", "entropy":
		return Sahoo, nil
	}
	return 0, fmt.Errorf("unknown threshold method %q (want otsu or sahoo)", s)
}

// Config carries the validated selection parameters. Power is only consulted
// by the Sahoo method.
type Config struct {
	Method Method
	Power  float64
}

// Validate rejects out-of-range parameters before any histogram work begins.
func (c Config) Validate() error {
	if c.Method != Otsu && c.Method != Sahoo {
		return fmt.Errorf("unknown threshold method %d", int(c.Method))
	}
	if c.Method == Sahoo && c.Power <= 0 {
		return fmt.Errorf("entropy power must be > 0, got %g", c.Power)
	}
	return nil
}

// Result is the selected cut point. Percent is the same level expressed as
// 100*Level/255, the form the image backend's threshold operation takes.
type Result struct {
	Level   int
	Percent float64
}

// Select computes the optimal threshold of h under cfg. The returned level is
// in [0, 254] for any histogram with two or more populated levels; for a
// degenerate single-level histogram both methods return that level (any cut
// is equivalent, and this keeps the result deterministic and division-free).
func Select(h Histogram, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	p, err := h.Normalize()
	if err != nil {
		return Result{}, err
	}

	var level int
	var ok bool
	switch cfg.Method {
	case Otsu:
		level, ok = otsuSelect(p)
	case Sahoo:
		q := cfg.Power
		if q == 1 {
			q = nearOne
		}
		level, ok = sahooSelect(p, q)
	}
	if !ok {
		level = h.lowestPopulated()
	}
	return Result{Level: level, Percent: float64(level) * 100.0 / 255.0}, nil
}
