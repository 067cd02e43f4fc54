package components

import (
	"errors"
	"fmt"
)

// ErrNoFreeCell is returned when every interior cell is occupied
var ErrNoFreeCell = errors.New("no free interior cell for food")

// Rand is the random source used for food placement
type Rand interface {
	Intn(n int) int
}

// Food is the single active food cell
type Food struct {
	bounds   Bounds
	rng      Rand
	position Position
}

// NewFood places the first food cell anywhere in the interior outside forbidden
func NewFood(bounds Bounds, rng Rand, forbidden PositionSet) (*Food, error) {
	f := &Food{bounds: bounds, rng: rng}
	if err := f.Respawn(forbidden); err != nil {
		return nil, err
	}
	return f, nil
}

// Position returns the current food cell
func (f *Food) Position() Position {
	return f.position
}

// Respawn samples interior cells uniformly until one is outside forbidden.
// The position is left untouched when no such cell exists.
func (f *Food) Respawn(forbidden PositionSet) error {
	if f.freeInteriorCells(forbidden) == 0 {
		return fmt.Errorf("%w: %dx%d interior, %d cells forbidden",
			ErrNoFreeCell, f.bounds.InteriorRows(), f.bounds.InteriorCols(), forbidden.Len())
	}

	for {
		p := Position{
			Row: f.bounds.MinRow + 1 + f.rng.Intn(f.bounds.InteriorRows()),
			Col: f.bounds.MinCol + 1 + f.rng.Intn(f.bounds.InteriorCols()),
		}
		if !forbidden.Has(p) {
			f.position = p
			return nil
		}
	}
}

func (f *Food) freeInteriorCells(forbidden PositionSet) int {
	free := f.bounds.InteriorCells()
	for p := range forbidden {
		if f.bounds.Contains(p) && !f.bounds.IsBorder(p) {
			free--
		}
	}
	return free
}
