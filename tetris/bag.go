package tetris

import (
	"math/rand/v2"

	"github.com/kamstrup/intmap"
)

// Randomizer hands out piece kinds from independent 7-bags, one per game.
// Every kind appears exactly once in each run of seven draws from a bag.
//
// A Randomizer is not safe for concurrent use; it lives on the tick goroutine
// together with the games drawing from it.
type Randomizer struct {
	rng    *rand.Rand
	bags   *intmap.Map[int, []Kind]
	nextID int
}

// NewRandomizer creates a randomizer seeded with seed.
func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		bags: intmap.New[int, []Kind](4),
	}
}

// NewBag allocates an empty bag and returns its id.
func (r *Randomizer) NewBag() int {
	id := r.nextID
	r.nextID++
	r.bags.Put(id, nil)
	return id
}

// ReleaseBag forgets the bag with the given id.
func (r *Randomizer) ReleaseBag(id int) {
	r.bags.Del(id)
}

// Bags returns the number of live bags.
func (r *Randomizer) Bags() int {
	return r.bags.Len()
}

// NextKind pops the next kind from the bag, refilling it with a fresh shuffle of all
// seven kinds when it runs empty. Unknown ids get a bag on first use.
func (r *Randomizer) NextKind(bagID int) Kind {
	bag, _ := r.bags.Get(bagID)
	if len(bag) == 0 {
		bag = make([]Kind, KindCount)
		for i := range bag {
			bag[i] = Kind(i)
		}
		r.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
	}

	kind := bag[0]
	r.bags.Put(bagID, bag[1:])
	return kind
}

// NextRotation draws a spawn rotation uniformly from 0..3.
func (r *Randomizer) NextRotation() int {
	return r.rng.IntN(RotationCount)
}
