/*
Package prob implements exact-precision probabilities, odds conversions, and
discrete finite probability distributions.
It is designed for betting markets, game simulations, and statistical models
where probability values must remain exact rational numbers rather than
floating-point approximations, and where outcomes form a small, enumerable
space.

# Probabilities

[Prob] is an immutable exact rational number constrained to the closed
interval [0, 1], always held in lowest terms with arbitrary precision.
The bound is enforced at construction and never silently clamped:

  - from a ratio: [New], [NewFromRat].
  - from a string: [Parse] accepts "2/3", "2:3", "1", and exact decimals
    such as "0.375" (which is precisely 3/8).
  - from a float: [NewFromFloat64] converts through the shortest decimal
    representation, so 0.1 becomes exactly 1/10.

Arithmetic ([Prob.Add], [Prob.Sub], [Prob.Mul], [Prob.Div],
[Prob.Complement]) is exact; operations whose result would leave [0, 1]
return an error.

# Odds

A probability converts to and from three odds encodings, each with an
"against" and an "on" form:

  - fractional odds: (1-p)/p against, p/(1-p) on.
  - decimal odds: 1/p against, p on.
  - moneyline (American) odds: a piecewise quote in which a probability of
    exactly 1/2 is +100.

Conversions return an [Odds] value, which is either a finite rational or
positive or negative infinity (the boundary probabilities 0 and 1 make
several forms unbounded). The inverse constructors
([NewFromFractionalOddsAgainst], [ParseMoneylineOddsOn], and friends)
decode a quote back into a normalized probability and reject out-of-domain
input: negative fractional odds, non-positive decimal odds, and zero
moneylines.

# Distributions

[Dist] is an immutable mapping from outcome to [Prob] whose values sum to
exactly 1. It is built from a multiset of occurrences ([FromOutcomes]),
occurrence counts ([FromCounts]), or exact weights ([FromWeights]);
construction normalizes by the total weight, and a zero-total input is an
error. Every transformation produces a new distribution:

  - conditioning: [Dist.SuchThat] renormalizes over the outcomes matching a
    [Predicate]; [Dist.Remove] conditions on the complement.
  - combination: [Dist.Joint] forms the independent product distribution,
    [Dist.Repeated] composes independent identical trials, and
    [Dist.GroupBy] coarsens outcomes through a key function.
  - queries: [Dist.Prob], [Dist.ProbOf], [Dist.Subset], [Dist.MostLikely].

Joint keys follow a deterministic policy: an explicit separator joins the
printed outcomes, directly combinable outcomes are combined (strings
concatenate, like-typed integers sum, tuples concatenate), and any other
pairing degrades to the pair [2]any. See [KeyPolicy].

# Sampling

Distributions support drawing with and without replacement. A uniformity
flag computed once at construction selects unweighted fast paths; weighted
draws use inverse-CDF bisection over cumulative probabilities. All
randomness flows through a caller-provided rand source, so equal seeds
produce equal draws:

	rng := rand.New(rand.NewSource(1))
	hands, err := deal.DrawWithoutReplacement(rng, 5)

# Errors

All failures are distinct sentinel errors surfaced synchronously to the
caller: [ErrProbRange], [ErrNegativeOdds], [ErrNonPositiveOdds],
[ErrZeroMoneyline], [ErrZeroTotal], [ErrDrawSize], and friends. Wrapped
context is added with fmt.Errorf, so callers discriminate with errors.Is.
*/
package prob
