package model

import (
	"github.com/shopspring/decimal"
)

// ValuationRecord is the computed worth of one position. Amounts are
// decimal strings so downstream consumers never reparse float formatting.
type ValuationRecord struct {
	PositionID   string `json:"position_id"`
	Amount0      string `json:"amount0"`
	Amount1      string `json:"amount1"`
	CurrentTick  int    `json:"current_tick"`
	TickLower    int    `json:"tick_lower"`
	TickUpper    int    `json:"tick_upper"`
	SqrtPriceX96 string `json:"sqrt_price_x96"`
	InRange      bool   `json:"in_range"`
	Decimals0    int    `json:"decimals0"`
	Decimals1    int    `json:"decimals1"`
	ComputedAt   string `json:"computed_at"`
}

// FormatAmount renders a token amount without float formatting artifacts.
func FormatAmount(value float64) string {
	return decimal.NewFromFloat(value).String()
}
