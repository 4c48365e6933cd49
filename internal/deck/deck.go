// Package deck produces the ten digit tiles shown on the number pad and
// reshuffles them on request.
package deck

import (
	"math/rand/v2"
	"time"
)

const (
	// Size is the number of tiles in a deck, one per decimal digit.
	Size = 10

	// MaxRotation bounds the cosmetic tilt of a tile in degrees, both ways.
	MaxRotation = 12
)

// Tile is a single digit on the pad together with its cosmetic tilt.
type Tile struct {
	Value    int
	Rotation int
}

// Deck is an ordered set of tiles holding each digit exactly once.
type Deck [Size]Tile

// Values returns the digits in display order.
func (d Deck) Values() []int {
	values := make([]int, 0, Size)
	for _, tile := range d {
		values = append(values, tile.Value)
	}
	return values
}

// Valid reports whether the deck is a permutation of 0..9 with every
// rotation inside [-MaxRotation, MaxRotation].
func (d Deck) Valid() bool {
	var seen [Size]bool
	for _, tile := range d {
		if tile.Value < 0 || tile.Value >= Size || seen[tile.Value] {
			return false
		}
		if tile.Rotation < -MaxRotation || tile.Rotation > MaxRotation {
			return false
		}
		seen[tile.Value] = true
	}
	return true
}

// Shuffler draws decks from a pseudo-random source. It is not safe for
// concurrent use.
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler returns a Shuffler backed by src. A nil src seeds a PCG
// generator from the current time.
func NewShuffler(src rand.Source) *Shuffler {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>17|1)
	}
	return &Shuffler{rng: rand.New(src)}
}

// NewSeededShuffler returns a deterministic Shuffler.
func NewSeededShuffler(seed uint64) *Shuffler {
	return NewShuffler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Initial returns the digits in ascending order with fresh rotations.
func (s *Shuffler) Initial() Deck {
	var d Deck
	for i := range d {
		d[i] = Tile{Value: i, Rotation: s.rotation()}
	}
	return d
}

// Shuffle re-rotates every tile and then applies a Fisher-Yates permutation.
// The result may equal the previous deck.
func (s *Shuffler) Shuffle() Deck {
	d := s.Initial()
	for i := len(d) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

func (s *Shuffler) rotation() int {
	return s.rng.IntN(2*MaxRotation+1) - MaxRotation
}
