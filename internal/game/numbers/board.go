// Package numbers implements the "find the numbers in order" (数字寻宝) game.
// Requirements: 1.1, 1.2 - Random board generation
package numbers

import (
	"errors"
	"math/rand"
)

const (
	// BoardSize is the number of values (and slots) on the board.
	BoardSize = 9

	// GridWidth is the number of buttons per keyboard row.
	GridWidth = 3
)

// ErrNotPermutation is returned when a slot sequence is not a permutation of 0..8.
var ErrNotPermutation = errors.New("slots are not a permutation of 0..8")

// Board is the fixed assignment of game values 1..9 to button slots for
// one session. Board[i] is the slot that displays value i+1. It never
// changes after creation.
type Board [BoardSize]int

// NewBoard produces a uniformly random board.
// Requirements: 1.1
func NewBoard() Board {
	var b Board
	copy(b[:], rand.Perm(BoardSize))
	return b
}

// BoardFromSlots builds a board from an explicit slot sequence.
// Returns ErrNotPermutation if the sequence is not a bijection over 0..8.
func BoardFromSlots(slots [BoardSize]int) (Board, error) {
	var seen [BoardSize]bool
	for _, s := range slots {
		if s < 0 || s >= BoardSize || seen[s] {
			return Board{}, ErrNotPermutation
		}
		seen[s] = true
	}
	return Board(slots), nil
}

// Slot returns the slot that displays the given value (1..9).
func (b Board) Slot(value int) int {
	return b[value-1]
}

// Value returns the game value (1..9) displayed at the given slot,
// or 0 if the slot is out of range.
func (b Board) Value(slot int) int {
	for i, s := range b {
		if s == slot {
			return i + 1
		}
	}
	return 0
}
