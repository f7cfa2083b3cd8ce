package prob

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Prob type is a representation of a probability: an exact rational number
// in the closed interval [0, 1], always kept in lowest terms.
// The zero value is the probability 0.
// A Prob is immutable after construction and safe for concurrent use by
// multiple goroutines.
//
// Probabilities are never approximated with binary floating point: every
// constructor converts its input to an exact rational, and every arithmetic
// method performs exact rational arithmetic. The value range is enforced
// only at construction; a probability outside [0, 1] is a construction
// error, never a silently clamped value.
//
// Prob contains a pointer, so values must not be compared with ==.
// Use [Prob.Cmp] or [Prob.Equal] instead.
type Prob struct {
	r *big.Rat // nil represents 0
}

var (
	// ErrProbRange indicates a probability outside the closed interval [0, 1].
	ErrProbRange = errors.New("probability out of range")

	// ErrInvalidProb indicates input that does not represent a probability.
	ErrInvalidProb = errors.New("invalid probability")

	// ErrNegativeOdds indicates negative fractional odds.
	ErrNegativeOdds = errors.New("fractional odds cannot be negative")

	// ErrNonPositiveOdds indicates zero or negative decimal odds.
	ErrNonPositiveOdds = errors.New("decimal odds must be positive")

	// ErrZeroMoneyline indicates a moneyline quote of zero.
	ErrZeroMoneyline = errors.New("moneyline odds cannot be zero")

	// ErrInfiniteOdds indicates infinite odds used where a finite value is
	// required.
	ErrInfiniteOdds = errors.New("odds are infinite")

	// ErrDivisionByZero indicates a zero denominator or divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrZeroTotal indicates a degenerate distribution whose weights total
	// zero.
	ErrZeroTotal = errors.New("zero total probability weight")

	// ErrNegativeWeight indicates a negative outcome weight or count.
	ErrNegativeWeight = errors.New("negative probability weight")

	// ErrDrawSize indicates a negative or oversized draw request.
	ErrDrawSize = errors.New("invalid draw size")

	// ErrRepeatCount indicates a repeated-trial count below one.
	ErrRepeatCount = errors.New("repeat count must be at least one")
)

var (
	ratOne     = big.NewRat(1, 1)
	ratHalf    = big.NewRat(1, 2)
	ratHundred = big.NewRat(100, 1)
)

func newProb(r *big.Rat) (Prob, error) {
	if r.Sign() < 0 {
		return Prob{}, fmt.Errorf("probability %s is negative: %w", r.RatString(), ErrProbRange)
	}
	if r.Cmp(ratOne) > 0 {
		return Prob{}, fmt.Errorf("probability %s is greater than one: %w", r.RatString(), ErrProbRange)
	}
	return Prob{r: r}, nil
}

// New returns a probability equal to n / d.
//
// New returns an error if d is zero or if the value is outside [0, 1].
func New(n, d int64) (Prob, error) {
	if d == 0 {
		return Prob{}, fmt.Errorf("New(%v, %v): %w", n, d, ErrDivisionByZero)
	}
	return newProb(big.NewRat(n, d))
}

// NewFromRat returns a probability equal to r.
// The value is copied, so later mutation of r does not affect the result.
func NewFromRat(r *big.Rat) (Prob, error) {
	if r == nil {
		return Prob{}, fmt.Errorf("nil rational: %w", ErrInvalidProb)
	}
	return newProb(new(big.Rat).Set(r))
}

// NewFromFloat64 converts a float to a probability through its shortest
// decimal representation: the decimal digits of f become the numerator and a
// power of ten the denominator, then the fraction is reduced.
// For example, NewFromFloat64(0.1) is exactly 1/10, not the binary value
// 0.1000000000000000055511151231257827.
//
// NewFromFloat64 returns an error if f is NaN, infinite, or outside [0, 1].
func NewFromFloat64(f float64) (Prob, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Prob{}, fmt.Errorf("NewFromFloat64(%v): %w", f, ErrInvalidProb)
	}
	return newProb(decimal.NewFromFloat(f).Rat())
}

// Parse converts a string to a probability.
// The input may be a ratio ("2/3" or "2:3"), an integer ("1"), or a decimal
// number ("0.375"); decimals are converted exactly, so "0.375" is 3/8.
//
// Parse returns an error if the string is not a valid number or if the value
// is outside [0, 1].
func Parse(s string) (Prob, error) {
	r, err := parseRat(s)
	if err != nil {
		return Prob{}, err
	}
	return newProb(r)
}

// parseRat converts a ratio, integer, or decimal string to an exact
// rational. A ":" ratio separator is rewritten to "/" first.
func parseRat(s string) (*big.Rat, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ":", "/")
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseDecimalRat(num)
		if err != nil {
			return nil, err
		}
		d, err := parseDecimalRat(den)
		if err != nil {
			return nil, err
		}
		if d.Sign() == 0 {
			return nil, fmt.Errorf("parsing %q: %w", s, ErrDivisionByZero)
		}
		return n.Quo(n, d), nil
	}
	return parseDecimalRat(s)
}

func parseDecimalRat(s string) (*big.Rat, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", s, ErrInvalidProb)
	}
	return d.Rat(), nil
}

// rat returns the backing rational, treating the zero value as 0.
// Callers must not mutate the result when it aliases p.r.
func (p Prob) rat() *big.Rat {
	if p.r == nil {
		return new(big.Rat)
	}
	return p.r
}

// Num returns the numerator of the probability in lowest terms.
func (p Prob) Num() *big.Int {
	return new(big.Int).Set(p.rat().Num())
}

// Denom returns the denominator of the probability in lowest terms.
func (p Prob) Denom() *big.Int {
	return new(big.Int).Set(p.rat().Denom())
}

// Rat returns the probability as a rational number.
// The result is a copy and may be mutated freely.
func (p Prob) Rat() *big.Rat {
	return new(big.Rat).Set(p.rat())
}

// Float64 returns the nearest binary floating-point value and a boolean
// indicating whether the conversion was exact.
func (p Prob) Float64() (f float64, exact bool) {
	return p.rat().Float64()
}

// Decimal returns the probability as a decimal number rounded to the given
// number of digits after the decimal point.
func (p Prob) Decimal(scale int32) decimal.Decimal {
	num := decimal.NewFromBigInt(p.rat().Num(), 0)
	den := decimal.NewFromBigInt(p.rat().Denom(), 0)
	return num.DivRound(den, scale)
}

// String returns the probability in lowest terms, as "n/d" for fractional
// values and as a bare integer for 0 and 1.
//
// Implements the [fmt.Stringer] interface.
func (p Prob) String() string {
	return p.rat().RatString()
}

// Cmp compares two probabilities numerically and returns:
//
//	-1 if p < e
//	 0 if p == e
//	+1 if p > e
func (p Prob) Cmp(e Prob) int {
	return p.rat().Cmp(e.rat())
}

// Equal reports whether two probabilities have the same value.
func (p Prob) Equal(e Prob) bool {
	return p.Cmp(e) == 0
}

// Sign returns 0 if the probability is 0 and +1 otherwise.
func (p Prob) Sign() int {
	return p.rat().Sign()
}

// IsZero reports whether the probability is 0.
func (p Prob) IsZero() bool {
	return p.rat().Sign() == 0
}

// IsOne reports whether the probability is 1.
func (p Prob) IsOne() bool {
	return p.rat().Cmp(ratOne) == 0
}

// Add returns the exact sum p + e.
//
// Add returns an error if the sum is greater than 1.
func (p Prob) Add(e Prob) (Prob, error) {
	return newProb(new(big.Rat).Add(p.rat(), e.rat()))
}

// Sub returns the exact difference p - e.
//
// Sub returns an error if the difference is negative.
func (p Prob) Sub(e Prob) (Prob, error) {
	return newProb(new(big.Rat).Sub(p.rat(), e.rat()))
}

// Mul returns the exact product p * e.
// The product of two probabilities is always a probability, so Mul cannot
// fail.
func (p Prob) Mul(e Prob) Prob {
	return Prob{r: new(big.Rat).Mul(p.rat(), e.rat())}
}

// Div returns the exact quotient p / e.
//
// Div returns an error if e is 0 or if the quotient is greater than 1.
func (p Prob) Div(e Prob) (Prob, error) {
	if e.IsZero() {
		return Prob{}, fmt.Errorf("%v / %v: %w", p, e, ErrDivisionByZero)
	}
	return newProb(new(big.Rat).Quo(p.rat(), e.rat()))
}

// Complement returns the probability 1 - p of the complementary event.
func (p Prob) Complement() Prob {
	return Prob{r: new(big.Rat).Sub(ratOne, p.rat())}
}
