package prob

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Odds is an exact odds quotation derived from a probability.
// An Odds value is either a finite rational number or positive or negative
// infinity; infinities arise at the boundary probabilities 0 and 1, where
// several odds formats are unbounded.
// The zero value is the finite quotation 0.
//
// Odds values are read-only views produced by the conversion methods on
// [Prob]; they are never constructed directly by callers.
type Odds struct {
	r   *big.Rat
	inf int8 // +1 positive infinity, -1 negative infinity, 0 finite
}

func finiteOdds(r *big.Rat) Odds {
	return Odds{r: r}
}

func (o Odds) rat() *big.Rat {
	if o.r == nil {
		return new(big.Rat)
	}
	return o.r
}

// IsInf reports whether the odds are positive or negative infinity.
func (o Odds) IsInf() bool {
	return o.inf != 0
}

// Sign returns the sign of the odds: -1 for negative values and negative
// infinity, 0 for zero, and +1 for positive values and positive infinity.
func (o Odds) Sign() int {
	if o.inf != 0 {
		return int(o.inf)
	}
	return o.rat().Sign()
}

// Rat returns the odds as an exact rational number.
// The second return value is false if the odds are infinite, in which case
// the rational is nil.
func (o Odds) Rat() (*big.Rat, bool) {
	if o.inf != 0 {
		return nil, false
	}
	return new(big.Rat).Set(o.rat()), true
}

// Float64 returns the nearest binary floating-point value, with infinite
// odds mapping to ±Inf.
func (o Odds) Float64() float64 {
	if o.inf != 0 {
		return math.Inf(int(o.inf))
	}
	f, _ := o.rat().Float64()
	return f
}

// Decimal returns the odds as a decimal number rounded to the given number
// of digits after the decimal point, for quotation display.
//
// Decimal returns an error if the odds are infinite.
func (o Odds) Decimal(scale int32) (decimal.Decimal, error) {
	if o.inf != 0 {
		return decimal.Decimal{}, fmt.Errorf("%v odds have no decimal form: %w", o, ErrInfiniteOdds)
	}
	num := decimal.NewFromBigInt(o.rat().Num(), 0)
	den := decimal.NewFromBigInt(o.rat().Denom(), 0)
	return num.DivRound(den, scale), nil
}

// String returns the odds in lowest terms, or "+Inf" / "-Inf" for the
// infinite quotations.
//
// Implements the [fmt.Stringer] interface.
func (o Odds) String() string {
	switch o.inf {
	case 1:
		return "+Inf"
	case -1:
		return "-Inf"
	default:
		return o.rat().RatString()
	}
}

// reciprocal returns 1/o, with zero odds mapping to positive infinity and
// either infinity mapping to zero.
func (o Odds) reciprocal() Odds {
	if o.inf != 0 {
		return finiteOdds(new(big.Rat))
	}
	if o.rat().Sign() == 0 {
		return Odds{inf: 1}
	}
	return finiteOdds(new(big.Rat).Inv(o.rat()))
}

// FractionalOddsAgainst expresses the probability as fractional odds
// against, (1-p)/p. A probability of 0 has infinite odds against.
func (p Prob) FractionalOddsAgainst() Odds {
	if p.IsZero() {
		return Odds{inf: 1}
	}
	return finiteOdds(new(big.Rat).Quo(p.Complement().rat(), p.rat()))
}

// FractionalOddsOn expresses the probability as fractional odds on, the
// reciprocal of [Prob.FractionalOddsAgainst].
func (p Prob) FractionalOddsOn() Odds {
	return p.FractionalOddsAgainst().reciprocal()
}

// DecimalOddsAgainst expresses the probability as decimal odds against,
// 1/p. A probability of 0 has infinite odds against.
func (p Prob) DecimalOddsAgainst() Odds {
	if p.IsZero() {
		return Odds{inf: 1}
	}
	return finiteOdds(new(big.Rat).Inv(p.rat()))
}

// DecimalOddsOn expresses the probability as decimal odds on, the
// reciprocal of [Prob.DecimalOddsAgainst].
func (p Prob) DecimalOddsOn() Odds {
	return p.DecimalOddsAgainst().reciprocal()
}

// MoneylineOddsAgainst expresses the probability as moneyline (American)
// odds against:
//
//	p = 1       -Inf
//	p > 1/2     -100p/(1-p)
//	0 < p <= 1/2    100(1-p)/p
//	p = 0       +Inf
//
// The boundary p = 1/2 belongs to the positive branch and quotes exactly
// +100.
func (p Prob) MoneylineOddsAgainst() Odds {
	switch {
	case p.IsOne():
		return Odds{inf: -1}
	case p.rat().Cmp(ratHalf) > 0:
		r := new(big.Rat).Quo(p.rat(), p.Complement().rat())
		r.Mul(r, ratHundred)
		r.Neg(r)
		return finiteOdds(r)
	case p.Sign() > 0:
		r := new(big.Rat).Quo(p.Complement().rat(), p.rat())
		r.Mul(r, ratHundred)
		return finiteOdds(r)
	default:
		return Odds{inf: 1}
	}
}

// MoneylineOddsOn expresses the probability as moneyline odds on, the
// reciprocal of [Prob.MoneylineOddsAgainst].
func (p Prob) MoneylineOddsOn() Odds {
	return p.MoneylineOddsAgainst().reciprocal()
}

// fromFractionalOddsAgainst decodes fractional odds against n/d into the
// probability d/(n+d).
func fromFractionalOddsAgainst(odds *big.Rat) (Prob, error) {
	if odds.Sign() < 0 {
		return Prob{}, fmt.Errorf("fractional odds %s: %w", odds.RatString(), ErrNegativeOdds)
	}
	den := new(big.Int).Add(odds.Num(), odds.Denom())
	return newProb(new(big.Rat).SetFrac(odds.Denom(), den))
}

// fromFractionalOddsOn decodes fractional odds on n/d into the probability
// n/(n+d).
func fromFractionalOddsOn(odds *big.Rat) (Prob, error) {
	if odds.Sign() < 0 {
		return Prob{}, fmt.Errorf("fractional odds %s: %w", odds.RatString(), ErrNegativeOdds)
	}
	den := new(big.Int).Add(odds.Num(), odds.Denom())
	return newProb(new(big.Rat).SetFrac(odds.Num(), den))
}

// fromDecimalOddsAgainst decodes decimal odds against n/d into the
// probability d/n.
func fromDecimalOddsAgainst(odds *big.Rat) (Prob, error) {
	if odds.Sign() <= 0 {
		return Prob{}, fmt.Errorf("decimal odds %s: %w", odds.RatString(), ErrNonPositiveOdds)
	}
	return newProb(new(big.Rat).SetFrac(odds.Denom(), odds.Num()))
}

// fromDecimalOddsOn decodes decimal odds on n/d into the probability n/d.
func fromDecimalOddsOn(odds *big.Rat) (Prob, error) {
	if odds.Sign() <= 0 {
		return Prob{}, fmt.Errorf("decimal odds %s: %w", odds.RatString(), ErrNonPositiveOdds)
	}
	return newProb(new(big.Rat).Set(odds))
}

// moneylineRatio converts a moneyline quote to the equivalent fractional
// odds ratio: v/100 for positive quotes and 100/|v| for negative quotes.
func moneylineRatio(v *big.Rat) (*big.Rat, error) {
	switch {
	case v.Sign() > 0:
		return new(big.Rat).Quo(v, ratHundred), nil
	case v.Sign() < 0:
		r := new(big.Rat).Quo(ratHundred, v)
		return r.Neg(r), nil
	default:
		return nil, ErrZeroMoneyline
	}
}

// fromMoneylineOddsAgainst decodes a moneyline quote against into a
// probability via the equivalent fractional odds against.
func fromMoneylineOddsAgainst(odds *big.Rat) (Prob, error) {
	ratio, err := moneylineRatio(odds)
	if err != nil {
		return Prob{}, err
	}
	return fromFractionalOddsAgainst(ratio)
}

// fromMoneylineOddsOn decodes a moneyline quote on into a probability via
// the equivalent fractional odds on.
func fromMoneylineOddsOn(odds *big.Rat) (Prob, error) {
	ratio, err := moneylineRatio(odds)
	if err != nil {
		return Prob{}, err
	}
	return fromFractionalOddsOn(ratio)
}

// ratFrom builds the exact quotient n/d for the odds constructors.
func ratFrom(n, d int64) (*big.Rat, error) {
	if d == 0 {
		return nil, fmt.Errorf("odds %v/%v: %w", n, d, ErrDivisionByZero)
	}
	return big.NewRat(n, d), nil
}

// NewFromFractionalOddsAgainst creates a probability from fractional odds
// against equal to n/d, such as 5/2 for a "5:2 against" quote.
// The resulting probability is d/(n+d).
//
// It returns an error if the odds are negative.
func NewFromFractionalOddsAgainst(n, d int64) (Prob, error) {
	r, err := ratFrom(n, d)
	if err != nil {
		return Prob{}, err
	}
	return fromFractionalOddsAgainst(r)
}

// NewFromFractionalOddsOn creates a probability from fractional odds on
// equal to n/d. The resulting probability is n/(n+d).
//
// It returns an error if the odds are negative.
func NewFromFractionalOddsOn(n, d int64) (Prob, error) {
	r, err := ratFrom(n, d)
	if err != nil {
		return Prob{}, err
	}
	return fromFractionalOddsOn(r)
}

// NewFromDecimalOddsAgainst creates a probability from decimal odds against
// equal to n/d, such as 5/2 for a quote of 2.5. The resulting probability
// is d/n.
//
// It returns an error unless the odds are positive.
func NewFromDecimalOddsAgainst(n, d int64) (Prob, error) {
	r, err := ratFrom(n, d)
	if err != nil {
		return Prob{}, err
	}
	return fromDecimalOddsAgainst(r)
}

// NewFromDecimalOddsOn creates a probability from decimal odds on equal to
// n/d. The resulting probability is n/d itself.
//
// It returns an error unless the odds are positive.
func NewFromDecimalOddsOn(n, d int64) (Prob, error) {
	r, err := ratFrom(n, d)
	if err != nil {
		return Prob{}, err
	}
	return fromDecimalOddsOn(r)
}

// NewFromMoneylineOddsAgainst creates a probability from a moneyline quote
// against equal to n/d, such as +150 or -110 (with d = 1).
//
// It returns an error if the quote is zero.
func NewFromMoneylineOddsAgainst(n, d int64) (Prob, error) {
	r, err := ratFrom(n, d)
	if err != nil {
		return Prob{}, err
	}
	return fromMoneylineOddsAgainst(r)
}

// NewFromMoneylineOddsOn creates a probability from a moneyline quote on
// equal to n/d.
//
// It returns an error if the quote is zero.
func NewFromMoneylineOddsOn(n, d int64) (Prob, error) {
	r, err := ratFrom(n, d)
	if err != nil {
		return Prob{}, err
	}
	return fromMoneylineOddsOn(r)
}

// ParseFractionalOddsAgainst is like [NewFromFractionalOddsAgainst] but
// accepts a ratio, integer, or decimal string, such as "5:2" or "2.5".
func ParseFractionalOddsAgainst(s string) (Prob, error) {
	r, err := parseRat(s)
	if err != nil {
		return Prob{}, err
	}
	return fromFractionalOddsAgainst(r)
}

// ParseFractionalOddsOn is like [NewFromFractionalOddsOn] but accepts a
// ratio, integer, or decimal string.
func ParseFractionalOddsOn(s string) (Prob, error) {
	r, err := parseRat(s)
	if err != nil {
		return Prob{}, err
	}
	return fromFractionalOddsOn(r)
}

// ParseDecimalOddsAgainst is like [NewFromDecimalOddsAgainst] but accepts a
// ratio, integer, or decimal string, such as "2.5".
func ParseDecimalOddsAgainst(s string) (Prob, error) {
	r, err := parseRat(s)
	if err != nil {
		return Prob{}, err
	}
	return fromDecimalOddsAgainst(r)
}

// ParseDecimalOddsOn is like [NewFromDecimalOddsOn] but accepts a ratio,
// integer, or decimal string.
func ParseDecimalOddsOn(s string) (Prob, error) {
	r, err := parseRat(s)
	if err != nil {
		return Prob{}, err
	}
	return fromDecimalOddsOn(r)
}

// ParseMoneylineOddsAgainst is like [NewFromMoneylineOddsAgainst] but
// accepts a quote string, such as "-110" or "+150".
func ParseMoneylineOddsAgainst(s string) (Prob, error) {
	r, err := parseMoneyline(s)
	if err != nil {
		return Prob{}, err
	}
	return fromMoneylineOddsAgainst(r)
}

// ParseMoneylineOddsOn is like [NewFromMoneylineOddsOn] but accepts a quote
// string.
func ParseMoneylineOddsOn(s string) (Prob, error) {
	r, err := parseMoneyline(s)
	if err != nil {
		return Prob{}, err
	}
	return fromMoneylineOddsOn(r)
}

// parseMoneyline parses a moneyline quote, tolerating the conventional
// explicit "+" on underdog quotes.
func parseMoneyline(s string) (*big.Rat, error) {
	return parseRat(strings.TrimPrefix(strings.TrimSpace(s), "+"))
}
