package services

import "math/rand/v2"

// Randomizer isola a fonte de aleatoriedade; *rand.Rand satisfaz a interface
type Randomizer interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int                     { return rand.IntN(n) }
func (globalRandomizer) Float64() float64                   { return rand.Float64() }
func (globalRandomizer) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultRandomizer usa o gerador global de math/rand/v2
func DefaultRandomizer() Randomizer {
	return globalRandomizer{}
}
