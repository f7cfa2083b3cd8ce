package prob

import "fmt"

// MustNew is like [New] but panics if construction fails.
func MustNew(n, d int64) Prob {
	p, err := New(n, d)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", n, d, err))
	}
	return p
}

// MustParse is like [Parse] but panics if parsing fails.
func MustParse(s string) Prob {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return p
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if conversion
// fails.
func MustNewFromFloat64(f float64) Prob {
	p, err := NewFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return p
}

// MustFromOutcomes is like [FromOutcomes] but panics if construction fails.
func MustFromOutcomes(outcomes ...Outcome) *Dist {
	d, err := FromOutcomes(outcomes...)
	if err != nil {
		panic(fmt.Sprintf("MustFromOutcomes(%v outcomes) failed: %v", len(outcomes), err))
	}
	return d
}

// MustFromCounts is like [FromCounts] but panics if construction fails.
func MustFromCounts(counts map[Outcome]int64) *Dist {
	d, err := FromCounts(counts)
	if err != nil {
		panic(fmt.Sprintf("MustFromCounts(%v) failed: %v", counts, err))
	}
	return d
}
