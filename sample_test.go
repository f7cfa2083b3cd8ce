package prob

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDist_MostLikely(t *testing.T) {
	d := MustFromCounts(map[Outcome]int64{"H": 3, "T": 2})
	assert.Equal(t, []Outcome{"H"}, d.MostLikely(1))
	assert.Equal(t, []Outcome{"H", "T"}, d.MostLikely(2))

	t.Run("n beyond the space returns everything", func(t *testing.T) {
		assert.Equal(t, []Outcome{"H", "T"}, d.MostLikely(10))
	})

	t.Run("ties keep sorted-value order", func(t *testing.T) {
		d := MustFromCounts(map[Outcome]int64{"c": 1, "a": 2, "b": 2})
		assert.Equal(t, []Outcome{"a", "b", "c"}, d.MostLikely(3))
	})

	t.Run("descending ranking", func(t *testing.T) {
		d := MustFromCounts(map[Outcome]int64{1: 1, 2: 4, 3: 2, 4: 3})
		assert.Equal(t, []Outcome{2, 4, 3, 1}, d.MostLikely(4))
	})

	assert.Empty(t, d.MostLikely(0))
	assert.Empty(t, d.MostLikely(-1))
}

func TestDist_DrawWithReplacement(t *testing.T) {
	t.Run("deterministic under equal seeds", func(t *testing.T) {
		d := MustFromCounts(map[Outcome]int64{"a": 5, "b": 3, "c": 2})
		first, err := d.DrawWithReplacement(rand.New(rand.NewSource(42)), 25)
		require.NoError(t, err)
		second, err := d.DrawWithReplacement(rand.New(rand.NewSource(42)), 25)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("draws stay in the sample space", func(t *testing.T) {
		d := MustFromCounts(map[Outcome]int64{"a": 5, "b": 3, "c": 2})
		rng := rand.New(rand.NewSource(7))
		draws, err := d.DrawWithReplacement(rng, 100)
		require.NoError(t, err)
		require.Len(t, draws, 100)
		for _, x := range draws {
			assert.True(t, d.Contains(x))
		}
	})

	t.Run("weighted draws favor heavy outcomes", func(t *testing.T) {
		d := MustFromCounts(map[Outcome]int64{"H": 99, "T": 1})
		rng := rand.New(rand.NewSource(1))
		draws, err := d.DrawWithReplacement(rng, 200)
		require.NoError(t, err)
		heads := 0
		for _, x := range draws {
			if x == "H" {
				heads++
			}
		}
		assert.Greater(t, heads, 150)
	})

	t.Run("uniform path", func(t *testing.T) {
		d := MustFromOutcomes("H", "T")
		rng := rand.New(rand.NewSource(3))
		draws, err := d.DrawWithReplacement(rng, 50)
		require.NoError(t, err)
		require.Len(t, draws, 50)
	})

	t.Run("zero draws", func(t *testing.T) {
		d := MustFromOutcomes("H", "T")
		draws, err := d.DrawWithReplacement(rand.New(rand.NewSource(1)), 0)
		require.NoError(t, err)
		assert.Empty(t, draws)
	})

	t.Run("negative draw size", func(t *testing.T) {
		d := MustFromOutcomes("H", "T")
		_, err := d.DrawWithReplacement(rand.New(rand.NewSource(1)), -1)
		assert.ErrorIs(t, err, ErrDrawSize)
	})
}

func TestDist_Draw(t *testing.T) {
	d := MustFromOutcomes("H", "T")
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		assert.True(t, d.Contains(d.Draw(rng)))
	}
}

func TestDist_DrawWithoutReplacement(t *testing.T) {
	newDeck := func() *Dist {
		return MustFromCounts(map[Outcome]int64{"a": 1, "b": 2, "c": 3, "d": 4, "e": 5})
	}

	t.Run("no duplicates", func(t *testing.T) {
		d := newDeck()
		rng := rand.New(rand.NewSource(5))
		for trial := 0; trial < 20; trial++ {
			draws, err := d.DrawWithoutReplacement(rng, 5)
			require.NoError(t, err)
			seen := make(map[Outcome]struct{}, len(draws))
			for _, x := range draws {
				_, dup := seen[x]
				require.False(t, dup, "duplicate outcome %v", x)
				seen[x] = struct{}{}
			}
		}
	})

	t.Run("uniform path has no duplicates", func(t *testing.T) {
		d := MustFromOutcomes(1, 2, 3, 4, 5, 6)
		draws, err := d.DrawWithoutReplacement(rand.New(rand.NewSource(9)), 6)
		require.NoError(t, err)
		seen := make(map[Outcome]struct{})
		for _, x := range draws {
			seen[x] = struct{}{}
		}
		assert.Len(t, seen, 6)
	})

	t.Run("deterministic under equal seeds", func(t *testing.T) {
		first, err := newDeck().DrawWithoutReplacement(rand.New(rand.NewSource(17)), 3)
		require.NoError(t, err)
		second, err := newDeck().DrawWithoutReplacement(rand.New(rand.NewSource(17)), 3)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("oversized draw", func(t *testing.T) {
		d := newDeck()
		_, err := d.DrawWithoutReplacement(rand.New(rand.NewSource(1)), 6)
		assert.ErrorIs(t, err, ErrDrawSize)
	})

	t.Run("negative draw size", func(t *testing.T) {
		d := newDeck()
		_, err := d.DrawWithoutReplacement(rand.New(rand.NewSource(1)), -1)
		assert.ErrorIs(t, err, ErrDrawSize)
	})
}

func TestDist_ConcurrentSampling(t *testing.T) {
	// The sampling cache and the hash are built at most once, so a shared
	// distribution must tolerate concurrent first use.
	d := MustFromCounts(map[Outcome]int64{"a": 1, "b": 2, "c": 3})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			if _, err := d.DrawWithReplacement(rng, 10); err != nil {
				t.Error(err)
			}
			if _, err := d.DrawWithoutReplacement(rng, 2); err != nil {
				t.Error(err)
			}
			_ = d.MostLikely(2)
			_ = d.Hash()
		}(int64(i))
	}
	wg.Wait()
}
