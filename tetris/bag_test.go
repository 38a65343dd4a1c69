package tetris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/dotris/tetris"
)

func TestRandomizerBagCycle(t *testing.T) {
	rnd := tetris.NewRandomizer(42)
	bag := rnd.NewBag()

	for cycle := 0; cycle < 5; cycle++ {
		seen := make(map[tetris.Kind]int)
		for i := 0; i < tetris.KindCount; i++ {
			seen[rnd.NextKind(bag)]++
		}

		require.Len(t, seen, tetris.KindCount, "cycle %d", cycle)
		for kind, n := range seen {
			assert.Equal(t, 1, n, "kind %s drawn %d times in cycle %d", kind, n, cycle)
		}
	}
}

func TestRandomizerBagsAreIndependent(t *testing.T) {
	rnd := tetris.NewRandomizer(7)
	a := rnd.NewBag()
	b := rnd.NewBag()

	seenA := make(map[tetris.Kind]bool)
	seenB := make(map[tetris.Kind]bool)
	for i := 0; i < tetris.KindCount; i++ {
		seenA[rnd.NextKind(a)] = true
		seenB[rnd.NextKind(b)] = true
	}

	assert.Len(t, seenA, tetris.KindCount)
	assert.Len(t, seenB, tetris.KindCount)
}

func TestRandomizerReleaseBag(t *testing.T) {
	rnd := tetris.NewRandomizer(1)
	a := rnd.NewBag()
	rnd.NewBag()
	require.Equal(t, 2, rnd.Bags())

	rnd.ReleaseBag(a)
	assert.Equal(t, 1, rnd.Bags())
}

func TestRandomizerRotationRange(t *testing.T) {
	rnd := tetris.NewRandomizer(3)
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		r := rnd.NextRotation()
		require.GreaterOrEqual(t, r, 0)
		require.Less(t, r, tetris.RotationCount)
		seen[r] = true
	}
	assert.Len(t, seen, tetris.RotationCount)
}

func TestRandomizerSeedIsReproducible(t *testing.T) {
	a := tetris.NewRandomizer(99)
	b := tetris.NewRandomizer(99)
	bagA, bagB := a.NewBag(), b.NewBag()

	for i := 0; i < 21; i++ {
		assert.Equal(t, a.NextKind(bagA), b.NextKind(bagB))
	}
}
