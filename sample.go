package prob

import (
	"fmt"
	"math/big"
	"math/rand"
	"sort"
)

// sampleCache holds the derived structures used by the drawing methods.
// For a uniform distribution only the outcome list is needed; non-uniform
// distributions additionally carry the descending-probability order with
// its probability vector, exact cumulative totals, and a float64 shadow of
// the cumulative totals for bisection.
type sampleCache struct {
	outcomes []Outcome
	probs    []Prob
	cumProbs []Prob
	cumFloat []float64
}

// setupSampling builds the sampling structures at most once per
// distribution; after the first call they are read-only.
func (d *Dist) setupSampling() *sampleCache {
	d.sampleOnce.Do(func() {
		c := &sampleCache{outcomes: d.Outcomes()}
		if !d.uniform {
			// Stable sort by descending probability; ties keep their
			// sorted-value order.
			sort.SliceStable(c.outcomes, func(i, j int) bool {
				return d.space[c.outcomes[i]].Cmp(d.space[c.outcomes[j]]) > 0
			})
			c.probs = make([]Prob, len(c.outcomes))
			c.cumProbs = make([]Prob, len(c.outcomes))
			c.cumFloat = make([]float64, len(c.outcomes))
			sum := new(big.Rat)
			for i, x := range c.outcomes {
				p := d.space[x]
				c.probs[i] = p
				sum.Add(sum, p.rat())
				c.cumProbs[i] = Prob{r: new(big.Rat).Set(sum)}
				f, _ := c.cumProbs[i].Float64()
				c.cumFloat[i] = f
			}
			// The exact totals end at 1; pin the float shadow there too so
			// bisection cannot run off the end.
			c.cumFloat[len(c.cumFloat)-1] = 1
		}
		d.sample = c
	})
	return d.sample
}

// Draw draws a single outcome with replacement.
// Randomness comes from the provided source, so equal seeds produce equal
// draws.
func (d *Dist) Draw(rng *rand.Rand) Outcome {
	out, err := d.DrawWithReplacement(rng, 1)
	if err != nil {
		// Unreachable: a draw of one cannot be rejected.
		panic(err)
	}
	return out[0]
}

// DrawWithReplacement draws k outcomes independently, each from the full
// sample space. Uniform distributions draw unweighted; non-uniform
// distributions draw by inverse-CDF bisection over the cumulative
// probabilities of the descending-sorted outcomes.
// Randomness comes from the provided source, so equal seeds produce equal
// draws.
//
// DrawWithReplacement returns an error if k is negative.
func (d *Dist) DrawWithReplacement(rng *rand.Rand, k int) ([]Outcome, error) {
	if k < 0 {
		return nil, fmt.Errorf("draw of %v outcomes: %w", k, ErrDrawSize)
	}
	c := d.setupSampling()
	out := make([]Outcome, k)
	for i := range out {
		if d.uniform {
			out[i] = c.outcomes[rng.Intn(len(c.outcomes))]
		} else {
			out[i] = c.outcomes[searchCum(c.cumFloat, rng.Float64())]
		}
	}
	return out, nil
}

// searchCum locates the first cumulative total exceeding r.
func searchCum(cum []float64, r float64) int {
	i := sort.Search(len(cum), func(i int) bool { return cum[i] > r })
	if i == len(cum) {
		i = len(cum) - 1
	}
	return i
}

// DrawWithoutReplacement draws k distinct outcomes. Uniform distributions
// draw an unweighted subset; non-uniform distributions draw each outcome
// against the remaining probability weight and remove it from the
// candidate pool.
// Randomness comes from the provided source, so equal seeds produce equal
// draws.
//
// DrawWithoutReplacement returns an error if k is negative or exceeds the
// number of distinct outcomes.
func (d *Dist) DrawWithoutReplacement(rng *rand.Rand, k int) ([]Outcome, error) {
	if k < 0 {
		return nil, fmt.Errorf("draw of %v outcomes: %w", k, ErrDrawSize)
	}
	c := d.setupSampling()
	if k > len(c.outcomes) {
		return nil, fmt.Errorf("draw of %v from %v outcomes without replacement: %w", k, len(c.outcomes), ErrDrawSize)
	}
	if d.uniform {
		out := make([]Outcome, k)
		for i, j := range rng.Perm(len(c.outcomes))[:k] {
			out[i] = c.outcomes[j]
		}
		return out, nil
	}
	remaining := make([]float64, len(c.outcomes))
	total := 0.0
	for i, p := range c.probs {
		f, _ := p.Float64()
		remaining[i] = f
		total += f
	}
	taken := make([]bool, len(c.outcomes))
	out := make([]Outcome, 0, k)
	for len(out) < k {
		target := rng.Float64() * total
		idx := -1
		for i, w := range remaining {
			if taken[i] {
				continue
			}
			if target < w {
				idx = i
				break
			}
			target -= w
		}
		if idx < 0 {
			// Float rounding exhausted the walk; take the last untaken
			// outcome.
			for i := len(taken) - 1; i >= 0; i-- {
				if !taken[i] {
					idx = i
					break
				}
			}
		}
		taken[idx] = true
		total -= remaining[idx]
		out = append(out, c.outcomes[idx])
	}
	return out, nil
}

// MostLikely returns the n highest-probability outcomes ranked in
// descending order. Outcomes of equal probability keep their sorted-value
// order, because the underlying sort is stable. If n exceeds the number of
// distinct outcomes, all outcomes are returned.
func (d *Dist) MostLikely(n int) []Outcome {
	c := d.setupSampling()
	if n > len(c.outcomes) {
		n = len(c.outcomes)
	}
	if n < 0 {
		n = 0
	}
	return append([]Outcome(nil), c.outcomes[:n]...)
}
