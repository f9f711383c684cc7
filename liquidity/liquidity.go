// Package liquidity converts between concentrated-liquidity position sizes
// and the token amounts they represent over a price range.
//
// All arithmetic is plain float64, matching the reference behavior of
// off-chain position tooling; liquidity results are truncated into a
// *big.Int at the boundary so decimal scaling cannot overflow a fixed-width
// integer. The package performs no I/O and holds no state, so every
// function is safe for concurrent use.
package liquidity

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"liquidityMath/token"
)

var (
	// ErrInvalidPrice is returned when a price input is zero or negative.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrDegenerateRange is returned when the two range prices collapse to
	// the same square root, which would divide by zero in every formula.
	ErrDegenerateRange = errors.New("degenerate price range")
	// ErrNegativeAmount is returned when a token amount or liquidity input
	// is negative.
	ErrNegativeAmount = errors.New("amount must be non-negative")
)

// sortPrices normalizes an unordered price pair into (lower, upper).
// Caller argument order never affects results.
func sortPrices(priceA, priceB float64) (float64, float64) {
	if priceA < priceB {
		return priceA, priceB
	}
	return priceB, priceA
}

// sqrtRange validates a price pair and returns the square roots of its
// sorted bounds.
func sqrtRange(priceA, priceB float64) (lower, upper float64, err error) {
	if priceA <= 0 || priceB <= 0 {
		return 0, 0, fmt.Errorf("%w: range (%v, %v)", ErrInvalidPrice, priceA, priceB)
	}
	lo, hi := sortPrices(priceA, priceB)
	lower = math.Sqrt(lo)
	upper = math.Sqrt(hi)
	if lower == upper {
		return 0, 0, fmt.Errorf("%w: (%v, %v)", ErrDegenerateRange, priceA, priceB)
	}
	return lower, upper, nil
}

// rawForAmount0 is the unscaled single-sided formula
// L = amount0 * sl * su / (su - sl).
func rawForAmount0(amount0, sl, su float64) float64 {
	return amount0 * sl * su / (su - sl)
}

// rawForAmount1 is the unscaled single-sided formula L = amount1 / (su - sl).
func rawForAmount1(amount1, sl, su float64) float64 {
	return amount1 / (su - sl)
}

// scaleLiquidity applies the decimal correction and truncates toward zero
// into a big integer.
func scaleLiquidity(raw float64, dec token.Decimals) *big.Int {
	scaled := raw * math.Pow(10, float64(dec.DiffAbs()))
	out, _ := big.NewFloat(scaled).Int(nil)
	return out
}

// ForAmount0 returns the liquidity a deposit of amount0 token0 yields over
// the price range (priceA, priceB). The range is order-independent.
func ForAmount0(amount0, priceA, priceB float64, dec token.Decimals) (*big.Int, error) {
	if err := dec.Validate(); err != nil {
		return nil, err
	}
	if amount0 < 0 {
		return nil, fmt.Errorf("%w: amount0 %v", ErrNegativeAmount, amount0)
	}
	sl, su, err := sqrtRange(priceA, priceB)
	if err != nil {
		return nil, err
	}
	return scaleLiquidity(rawForAmount0(amount0, sl, su), dec), nil
}

// ForAmount1 returns the liquidity a deposit of amount1 token1 yields over
// the price range (priceA, priceB).
func ForAmount1(amount1, priceA, priceB float64, dec token.Decimals) (*big.Int, error) {
	if err := dec.Validate(); err != nil {
		return nil, err
	}
	if amount1 < 0 {
		return nil, fmt.Errorf("%w: amount1 %v", ErrNegativeAmount, amount1)
	}
	sl, su, err := sqrtRange(priceA, priceB)
	if err != nil {
		return nil, err
	}
	return scaleLiquidity(rawForAmount1(amount1, sl, su), dec), nil
}

// ForAmounts returns the liquidity a two-sided deposit yields given the
// current price. When the current price sits below the range only token0
// counts; above the range only token1 counts; inside the range the binding
// constraint is whichever token runs out first.
func ForAmounts(amount0, amount1, current, priceA, priceB float64, dec token.Decimals) (*big.Int, error) {
	if err := dec.Validate(); err != nil {
		return nil, err
	}
	if amount0 < 0 || amount1 < 0 {
		return nil, fmt.Errorf("%w: amounts (%v, %v)", ErrNegativeAmount, amount0, amount1)
	}
	if current <= 0 {
		return nil, fmt.Errorf("%w: current price %v", ErrInvalidPrice, current)
	}
	sl, su, err := sqrtRange(priceA, priceB)
	if err != nil {
		return nil, err
	}
	sc := math.Sqrt(current)

	var raw float64
	switch {
	case sc <= sl:
		raw = rawForAmount0(amount0, sl, su)
	case sc < su:
		l0 := rawForAmount0(amount0, sc, su)
		l1 := rawForAmount1(amount1, sl, sc)
		raw = math.Min(l0, l1)
	default:
		raw = rawForAmount1(amount1, sl, su)
	}

	return scaleLiquidity(raw, dec), nil
}

// rawAmount0 is the unscaled inverse formula a0 = L * (su - sl) / (sl * su).
func rawAmount0(liq, sl, su float64) float64 {
	return liq * (su - sl) / (sl * su)
}

// rawAmount1 is the unscaled inverse formula a1 = L * (su - sl).
func rawAmount1(liq, sl, su float64) float64 {
	return liq * (su - sl)
}

// scaleAmount divides out the decimal correction, mirroring scaleLiquidity.
func scaleAmount(raw float64, dec token.Decimals) float64 {
	return raw / math.Pow(10, float64(dec.DiffAbs()))
}

// Amount0 returns how much token0 a liquidity position holds when the
// current price is at or below the lower bound of (priceA, priceB).
func Amount0(liq, priceA, priceB float64, dec token.Decimals) (float64, error) {
	if err := dec.Validate(); err != nil {
		return 0, err
	}
	if liq < 0 {
		return 0, fmt.Errorf("%w: liquidity %v", ErrNegativeAmount, liq)
	}
	sl, su, err := sqrtRange(priceA, priceB)
	if err != nil {
		return 0, err
	}
	return scaleAmount(rawAmount0(liq, sl, su), dec), nil
}

// Amount1 returns how much token1 a liquidity position holds when the
// current price is at or above the upper bound of (priceA, priceB).
func Amount1(liq, priceA, priceB float64, dec token.Decimals) (float64, error) {
	if err := dec.Validate(); err != nil {
		return 0, err
	}
	if liq < 0 {
		return 0, fmt.Errorf("%w: liquidity %v", ErrNegativeAmount, liq)
	}
	sl, su, err := sqrtRange(priceA, priceB)
	if err != nil {
		return 0, err
	}
	return scaleAmount(rawAmount1(liq, sl, su), dec), nil
}

// Amounts returns the token0 and token1 holdings of a liquidity position
// given the current price. A position fully outside its range legitimately
// holds zero of one token; that is a success, not an error.
func Amounts(liq, current, priceA, priceB float64, dec token.Decimals) (amount0, amount1 float64, err error) {
	if err := dec.Validate(); err != nil {
		return 0, 0, err
	}
	if liq < 0 {
		return 0, 0, fmt.Errorf("%w: liquidity %v", ErrNegativeAmount, liq)
	}
	if current <= 0 {
		return 0, 0, fmt.Errorf("%w: current price %v", ErrInvalidPrice, current)
	}
	sl, su, err := sqrtRange(priceA, priceB)
	if err != nil {
		return 0, 0, err
	}
	sc := math.Sqrt(current)

	switch {
	case sc <= sl:
		amount0 = rawAmount0(liq, sl, su)
	case sc < su:
		amount0 = rawAmount0(liq, sc, su)
		amount1 = rawAmount1(liq, sl, sc)
	default:
		amount1 = rawAmount1(liq, sl, su)
	}

	return scaleAmount(amount0, dec), scaleAmount(amount1, dec), nil
}
