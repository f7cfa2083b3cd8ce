package prob_test

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/practicallypredictable/prob"
)

func ExampleNew() {
	p, err := prob.New(2, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 2/3
}

func ExampleParse() {
	fmt.Println(prob.MustParse("3:4"))
	fmt.Println(prob.MustParse("0.375"))
	// Output:
	// 3/4
	// 3/8
}

func ExampleNewFromFloat64() {
	p, err := prob.NewFromFloat64(0.1)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 1/10
}

func ExampleProb_Complement() {
	win := prob.MustNew(3, 5)
	fmt.Println(win.Complement())
	// Output: 2/5
}

func ExampleProb_MoneylineOddsAgainst() {
	tossup := prob.MustNew(1, 2)
	favorite := prob.MustNew(3, 5)
	longshot := prob.MustNew(1, 5)
	fmt.Println(tossup.MoneylineOddsAgainst())
	fmt.Println(favorite.MoneylineOddsAgainst())
	fmt.Println(longshot.MoneylineOddsAgainst())
	// Output:
	// 100
	// -150
	// 400
}

func ExampleProb_FractionalOddsAgainst() {
	p := prob.MustNew(2, 7)
	fmt.Println(p.FractionalOddsAgainst())
	// Output: 5/2
}

func ExampleNewFromMoneylineOddsAgainst() {
	p, err := prob.NewFromMoneylineOddsAgainst(-150, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 3/5
}

func ExampleOdds_Decimal() {
	quote, err := prob.MustNew(2, 5).DecimalOddsAgainst().Decimal(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(quote)
	// Output: 2.50
}

func ExampleFromOutcomes() {
	coin, err := prob.FromOutcomes("H", "H", "T")
	if err != nil {
		panic(err)
	}
	fmt.Println(coin)
	fmt.Println(coin.IsUniform())
	// Output:
	// {H: 2/3, T: 1/3}
	// false
}

func ExampleDist_Prob() {
	die := prob.MustFromOutcomes(1, 2, 3, 4, 5, 6)
	low := die.Prob(prob.Among(1, 2))
	fmt.Println(low)
	// Output: 1/3
}

func ExampleDist_SuchThat() {
	die := prob.MustFromOutcomes(1, 2, 3, 4, 5, 6)
	even, err := die.SuchThat(prob.Where(func(x prob.Outcome) bool {
		return x.(int)%2 == 0
	}))
	if err != nil {
		panic(err)
	}
	fmt.Println(even)
	// Output: {2: 1/3, 4: 1/3, 6: 1/3}
}

func ExampleDist_Joint() {
	coin := prob.MustFromOutcomes("H", "T")
	fmt.Println(coin.Joint(coin, prob.KeyPolicy{}))
	// Output: {HH: 1/4, HT: 1/4, TH: 1/4, TT: 1/4}
}

func ExampleDist_Repeated() {
	die := prob.MustFromOutcomes(1, 2, 3, 4, 5, 6)
	sums, err := die.Repeated(2, prob.KeyPolicy{})
	if err != nil {
		panic(err)
	}
	fmt.Println(sums.ProbOf(7))
	fmt.Println(sums.ProbOf(12))
	// Output:
	// 1/6
	// 1/36
}

func ExampleDist_GroupBy() {
	die := prob.MustFromOutcomes(1, 2, 3, 4, 5, 6)
	parity := die.Add(die).GroupBy(func(x prob.Outcome) prob.Outcome {
		return x.(int)%2 == 0
	})
	fmt.Println(parity)
	// Output: {false: 1/2, true: 1/2}
}

func ExampleDist_MostLikely() {
	coin := prob.MustFromCounts(map[prob.Outcome]int64{"H": 3, "T": 2})
	fmt.Println(coin.MostLikely(1))
	// Output: [H]
}

func ExampleDist_DrawWithoutReplacement() {
	deal := prob.MustFromCounts(map[prob.Outcome]int64{
		"ace": 4, "king": 3, "queen": 2,
	})
	rng := rand.New(rand.NewSource(1))
	cards, err := deal.DrawWithoutReplacement(rng, 3)
	if err != nil {
		panic(err)
	}
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.(string)
	}
	sort.Strings(names)
	fmt.Println(names)
	// Output: [ace king queen]
}

func ExampleDist_DrawWithReplacement() {
	die := prob.MustFromOutcomes(1, 2, 3, 4, 5, 6)
	rng := rand.New(rand.NewSource(1))
	rolls, err := die.DrawWithReplacement(rng, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(rolls))
	// Output: 10
}
