package token

import "errors"

// ErrInvalidDecimals is returned when a token decimal count is negative.
var ErrInvalidDecimals = errors.New("decimals must be non-negative")

// Decimals holds the decimal precision of both tokens in a pair.
// Most ERC-20 tokens use 18; stablecoins commonly use 6.
type Decimals struct {
	Token0 int
	Token1 int
}

// Default returns the conventional 18/18 decimal pair.
func Default() Decimals {
	return Decimals{Token0: 18, Token1: 18}
}

// Validate rejects negative decimal counts.
func (d Decimals) Validate() error {
	if d.Token0 < 0 || d.Token1 < 0 {
		return ErrInvalidDecimals
	}
	return nil
}

// DiffAbs returns |Token0 - Token1|. The liquidity conversions scale by
// this magnitude regardless of token ordering.
func (d Decimals) DiffAbs() int {
	diff := d.Token0 - d.Token1
	if diff < 0 {
		return -diff
	}
	return diff
}

// DiffSigned returns Token0 - Token1. Tick direction depends on token
// ordering, so the tick conversions use the signed difference.
func (d Decimals) DiffSigned() int {
	return d.Token0 - d.Token1
}
