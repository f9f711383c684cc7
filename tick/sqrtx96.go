package tick

import (
	"fmt"
	"math"
	"math/big"

	"liquidityMath/token"
)

// q96 is 2^96, the scale factor of the sqrtPriceX96 encoding.
var q96 = new(big.Float).SetInt(new(big.Int).Lsh(big.NewInt(1), 96))

// PriceToSqrtX96 encodes a price as floor(sqrt(price * 10^|d0-d1|) * 2^96).
// The result is a wide integer: large prices overflow any fixed-width type.
// Unlike the tick conversion, the decimal adjustment here is absolute and
// multiplicative.
func PriceToSqrtX96(price float64, dec token.Decimals) (*big.Int, error) {
	if err := dec.Validate(); err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrice, price)
	}

	adjusted := price * math.Pow(10, float64(dec.DiffAbs()))
	scaled := big.NewFloat(math.Sqrt(adjusted))
	scaled.Mul(scaled, q96)

	// Int truncates toward zero, which is floor for a non-negative value.
	out, _ := scaled.Int(nil)
	return out, nil
}

// SqrtX96ToPrice decodes a sqrtPriceX96 value back to a price:
// (x96 / 2^96)^2 / 10^|d0-d1|. x96 must be positive.
func SqrtX96ToPrice(x96 *big.Int, dec token.Decimals) (float64, error) {
	if err := dec.Validate(); err != nil {
		return 0, err
	}
	if x96 == nil || x96.Sign() <= 0 {
		return 0, fmt.Errorf("%w: x96 %v", ErrInvalidPrice, x96)
	}

	ratio := new(big.Float).SetInt(x96)
	ratio.Quo(ratio, q96)
	sqrtPrice, _ := ratio.Float64()
	return sqrtPrice * sqrtPrice / math.Pow(10, float64(dec.DiffAbs())), nil
}
