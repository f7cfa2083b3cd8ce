package prob

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Outcome is a single element of a distribution's sample space.
// Outcomes may be values of any type usable as a Go map key: strings,
// integers, booleans, structs and arrays of such types, and so on.
type Outcome = any

// Dist type is a discrete finite probability distribution: an immutable
// mapping from outcome to exact probability. The probabilities of all
// outcomes sum to exactly 1.
//
// A Dist is never mutated after construction; every transforming operation
// ([Dist.SuchThat], [Dist.Remove], [Dist.Joint], [Dist.Repeated],
// [Dist.GroupBy]) returns a new distribution. Derived sampling structures
// and the identity digest are built at most once per instance, so a
// constructed Dist is safe for concurrent use by multiple goroutines.
type Dist struct {
	space   map[Outcome]Prob
	uniform bool

	sampleOnce sync.Once
	sample     *sampleCache

	hashOnce sync.Once
	hash     uint64
}

// FromOutcomes creates a distribution from a multiset of outcome
// occurrences. Each outcome's probability is its occurrence count divided
// by the total count.
//
// FromOutcomes returns an error if no outcomes are given.
func FromOutcomes(outcomes ...Outcome) (*Dist, error) {
	weights := make(map[Outcome]*big.Rat, len(outcomes))
	for _, x := range outcomes {
		if w, ok := weights[x]; ok {
			w.Add(w, ratOne)
		} else {
			weights[x] = big.NewRat(1, 1)
		}
	}
	return fromRats(weights)
}

// FromCounts creates a distribution from a mapping of outcome to
// occurrence count. Counts need not sum to any particular value;
// construction normalizes by the total.
//
// FromCounts returns an error if any count is negative or if the total
// is zero.
func FromCounts(counts map[Outcome]int64) (*Dist, error) {
	weights := make(map[Outcome]*big.Rat, len(counts))
	for x, c := range counts {
		weights[x] = big.NewRat(c, 1)
	}
	return fromRats(weights)
}

// FromWeights creates a distribution from a mapping of outcome to exact
// rational weight. Weights need not sum to 1; construction normalizes by
// the total. The weights are copied, so later mutation does not affect the
// distribution.
//
// FromWeights returns an error if any weight is negative or if the total
// is zero.
func FromWeights(weights map[Outcome]*big.Rat) (*Dist, error) {
	copied := make(map[Outcome]*big.Rat, len(weights))
	for x, w := range weights {
		if w == nil {
			return nil, fmt.Errorf("outcome %v has nil weight: %w", x, ErrInvalidProb)
		}
		copied[x] = new(big.Rat).Set(w)
	}
	return fromRats(copied)
}

// fromRats normalizes raw weights into a distribution, determining
// uniformity in the same pass. The caller must not retain the weights map.
func fromRats(weights map[Outcome]*big.Rat) (*Dist, error) {
	total := new(big.Rat)
	for x, w := range weights {
		if w.Sign() < 0 {
			return nil, fmt.Errorf("outcome %v has weight %s: %w", x, w.RatString(), ErrNegativeWeight)
		}
		total.Add(total, w)
	}
	if total.Sign() == 0 {
		return nil, ErrZeroTotal
	}
	space := make(map[Outcome]Prob, len(weights))
	uniform := true
	var first Prob
	seen := false
	for x, w := range weights {
		p, err := newProb(w.Quo(w, total))
		if err != nil {
			return nil, err
		}
		space[x] = p
		if !seen {
			first, seen = p, true
		} else if uniform {
			// The first mismatch settles non-uniformity for good.
			uniform = p.Equal(first)
		}
	}
	return &Dist{space: space, uniform: uniform}, nil
}

// Predicate selects outcomes from a distribution's sample space. It is
// either a test function or an explicit collection of outcomes; construct
// one with [Where] or [Among].
type Predicate struct {
	fn  func(Outcome) bool
	set map[Outcome]struct{}
}

// Where returns a predicate satisfied by outcomes for which fn reports
// true.
func Where(fn func(Outcome) bool) Predicate {
	return Predicate{fn: fn}
}

// Among returns a predicate satisfied exactly by the listed outcomes.
func Among(outcomes ...Outcome) Predicate {
	set := make(map[Outcome]struct{}, len(outcomes))
	for _, x := range outcomes {
		set[x] = struct{}{}
	}
	return Predicate{set: set}
}

func (pred Predicate) matches(x Outcome) bool {
	if pred.fn != nil {
		return pred.fn(x)
	}
	_, ok := pred.set[x]
	return ok
}

// Len returns the number of distinct outcomes.
func (d *Dist) Len() int {
	return len(d.space)
}

// Contains reports whether the outcome is a member of the sample space.
func (d *Dist) Contains(x Outcome) bool {
	_, ok := d.space[x]
	return ok
}

// IsUniform reports whether every outcome has the same probability.
// The flag is determined once at construction and drives the choice of
// sampling algorithm.
func (d *Dist) IsUniform() bool {
	return d.uniform
}

// ProbOf returns the probability of a single outcome.
// Outcomes not in the sample space have probability exactly 0.
func (d *Dist) ProbOf(x Outcome) Prob {
	return d.space[x]
}

// Prob returns the exact probability of the event described by the
// predicate: the sum of the probabilities of all matching outcomes.
func (d *Dist) Prob(pred Predicate) Prob {
	sum := new(big.Rat)
	for x, p := range d.space {
		if pred.matches(x) {
			sum.Add(sum, p.rat())
		}
	}
	return Prob{r: sum}
}

// Subset returns the outcomes satisfying the predicate, sorted by value.
func (d *Dist) Subset(pred Predicate) []Outcome {
	var out []Outcome
	for x := range d.space {
		if pred.matches(x) {
			out = append(out, x)
		}
	}
	sortOutcomes(out)
	return out
}

// SuchThat returns the conditional distribution given the predicate: the
// matching outcomes with their probabilities renormalized, so each retained
// outcome's new probability is its old probability divided by the
// probability of the predicate.
//
// SuchThat returns an error wrapping [ErrZeroTotal] if the predicate has
// zero probability.
func (d *Dist) SuchThat(pred Predicate) (*Dist, error) {
	weights := make(map[Outcome]*big.Rat)
	for x, p := range d.space {
		if pred.matches(x) {
			weights[x] = p.Rat()
		}
	}
	cond, err := fromRats(weights)
	if err != nil {
		return nil, fmt.Errorf("conditioning on an impossible event: %w", err)
	}
	return cond, nil
}

// Remove returns the distribution with the given outcomes excluded and the
// remainder renormalized.
//
// Remove returns an error wrapping [ErrZeroTotal] if nothing with positive
// probability remains.
func (d *Dist) Remove(outcomes ...Outcome) (*Dist, error) {
	excluded := make(map[Outcome]struct{}, len(outcomes))
	for _, x := range outcomes {
		excluded[x] = struct{}{}
	}
	weights := make(map[Outcome]*big.Rat)
	for x, p := range d.space {
		if _, ok := excluded[x]; !ok {
			weights[x] = p.Rat()
		}
	}
	rest, err := fromRats(weights)
	if err != nil {
		return nil, fmt.Errorf("removing %v outcomes: %w", len(outcomes), err)
	}
	return rest, nil
}

// Joint returns the joint distribution over the Cartesian product of this
// distribution's outcomes and another's, assuming independence: the
// probability of a combined key is the product of the component
// probabilities. Distinct pairs combining to the same key have their
// probabilities summed.
//
// The key policy controls the shape of the combined keys; see [KeyPolicy].
func (d *Dist) Joint(other *Dist, key KeyPolicy) *Dist {
	weights := make(map[Outcome]*big.Rat, len(d.space)*len(other.space))
	for x1, p1 := range d.space {
		for x2, p2 := range other.space {
			k := combineKeys(x1, x2, key)
			w := new(big.Rat).Mul(p1.rat(), p2.rat())
			if prev, ok := weights[k]; ok {
				prev.Add(prev, w)
			} else {
				weights[k] = w
			}
		}
	}
	joint, err := fromRats(weights)
	if err != nil {
		// Unreachable: both operands sum to 1, so the product weights
		// cannot total zero.
		panic(err)
	}
	return joint
}

// Add returns the joint distribution with the default key policy, combining
// distributions over directly summable or concatenable outcome domains.
func (d *Dist) Add(other *Dist) *Dist {
	return d.Joint(other, KeyPolicy{})
}

// Repeated returns the distribution of n independent identical trials,
// built by iteratively joining the distribution with itself using the given
// key policy. Repeated(1) returns the distribution unchanged.
//
// Repeated returns an error if n is less than 1.
func (d *Dist) Repeated(n int, key KeyPolicy) (*Dist, error) {
	if n < 1 {
		return nil, fmt.Errorf("%v trials: %w", n, ErrRepeatCount)
	}
	result := d
	for i := 1; i < n; i++ {
		result = result.Joint(d, key)
	}
	return result, nil
}

// GroupBy returns the distribution of outcomes mapped through the key
// function, with the probability mass of outcomes sharing a derived key
// summed.
func (d *Dist) GroupBy(key func(Outcome) Outcome) *Dist {
	weights := make(map[Outcome]*big.Rat, len(d.space))
	for x, p := range d.space {
		k := key(x)
		if prev, ok := weights[k]; ok {
			prev.Add(prev, p.rat())
		} else {
			weights[k] = p.Rat()
		}
	}
	grouped, err := fromRats(weights)
	if err != nil {
		// Unreachable: the grouped weights are a rearrangement of a mass
		// that sums to 1.
		panic(err)
	}
	return grouped
}

// Outcomes returns the sample space sorted by outcome value, for
// deterministic ordering.
func (d *Dist) Outcomes() []Outcome {
	out := make([]Outcome, 0, len(d.space))
	for x := range d.space {
		out = append(out, x)
	}
	sortOutcomes(out)
	return out
}

// PMF returns the probability mass function as parallel outcome and
// probability slices, sorted by outcome value.
func (d *Dist) PMF() ([]Outcome, []Prob) {
	outcomes := d.Outcomes()
	probs := make([]Prob, len(outcomes))
	for i, x := range outcomes {
		probs[i] = d.space[x]
	}
	return outcomes, probs
}

// Equal reports whether two distributions have identical
// outcome-to-probability mappings, regardless of construction order.
func (d *Dist) Equal(other *Dist) bool {
	if len(d.space) != len(other.space) {
		return false
	}
	for x, p := range d.space {
		q, ok := other.space[x]
		if !ok || !p.Equal(q) {
			return false
		}
	}
	return true
}

// Hash returns an order-independent digest of the outcome-to-probability
// pairs. Distributions that are [Dist.Equal] hash identically. The digest
// is computed once and cached, which is safe because a Dist never mutates
// after construction.
func (d *Dist) Hash() uint64 {
	d.hashOnce.Do(func() {
		var h uint64
		for x, p := range d.space {
			h ^= xxhash.Sum64String(fmt.Sprintf("%v=%s", x, p))
		}
		d.hash = h
	})
	return d.hash
}

// String returns the outcome-to-probability pairs sorted by outcome value,
// in the form "{outcome: prob, ...}".
//
// Implements the [fmt.Stringer] interface.
func (d *Dist) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, x := range d.Outcomes() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v: %s", x, d.space[x])
	}
	b.WriteByte('}')
	return b.String()
}

// sortOutcomes orders outcomes deterministically: like-typed numeric values
// numerically, strings lexically, and everything else by printed form.
func sortOutcomes(outcomes []Outcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomeLess(outcomes[i], outcomes[j])
	})
}

func outcomeLess(a, b Outcome) bool {
	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return x < y
		}
	case int64:
		if y, ok := b.(int64); ok {
			return x < y
		}
	case float64:
		if y, ok := b.(float64); ok {
			return x < y
		}
	case string:
		if y, ok := b.(string); ok {
			return x < y
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
