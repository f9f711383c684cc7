// Package tick converts between prices, tick indexes, and the sqrtPriceX96
// fixed-point encoding used by concentrated-liquidity pools.
//
// A tick discretizes price space as 1.0001^tick, scaled by the signed
// decimal difference of the pair. The X96 codec is a separate concept: it
// persists sqrt(price) scaled by 2^96 as a wide integer and uses the
// absolute decimal difference. The two are deliberately not unified.
package tick

import (
	"errors"
	"fmt"
	"math"

	"liquidityMath/token"
)

// tickBase is the per-tick price ratio.
const tickBase = 1.0001

var (
	// ErrInvalidPrice is returned when a price input is zero or negative.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrInvalidTickSpacing is returned when a tick spacing is not positive.
	ErrInvalidTickSpacing = errors.New("tick spacing must be positive")
)

// FromPrice returns the usable tick closest to price, snapped to a multiple
// of spacing. The decimal adjustment is signed: token ordering flips the
// tick direction.
func FromPrice(price float64, spacing int, dec token.Decimals) (int, error) {
	if err := dec.Validate(); err != nil {
		return 0, err
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}
	if spacing <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTickSpacing, spacing)
	}

	adjusted := price / math.Pow(10, float64(dec.DiffSigned()))
	raw := int(math.Round(math.Log(adjusted) / math.Log(tickBase)))
	return Nearest(raw, spacing), nil
}

// ToPrice returns the price at a tick index: 1.0001^tick scaled by the
// signed decimal difference.
func ToPrice(tickIndex int, dec token.Decimals) (float64, error) {
	if err := dec.Validate(); err != nil {
		return 0, err
	}
	return math.Pow(tickBase, float64(tickIndex)) * math.Pow(10, float64(dec.DiffSigned())), nil
}

// Nearest snaps a tick to the closest multiple of spacing, rounding ties
// away from zero (45 with spacing 10 snaps to 50, -45 to -50).
// spacing must be positive.
func Nearest(tickIndex, spacing int) int {
	return spacing * int(math.Round(float64(tickIndex)/float64(spacing)))
}
